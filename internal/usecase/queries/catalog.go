package queries

import (
	"context"

	"tripdesk/internal/infra/upstream"
)

// Card-list screens on the incremental strategy, each with its own server
// sort and page size.
const (
	offerPageSize   = 10
	bookingPageSize = 10
	agencyPageSize  = 10
)

type CatalogReadStore interface {
	ListOffers(ctx context.Context, q upstream.ListQuery) ([]upstream.Offer, int, error)
	ListBookings(ctx context.Context, q upstream.ListQuery) ([]upstream.Booking, int, error)
	ListAgencies(ctx context.Context, q upstream.ListQuery) ([]upstream.Agency, int, error)
}

type OfferList struct {
	Items   []OfferCard `json:"items"`
	HasMore bool        `json:"has_more"`
}

type BookingList struct {
	Items   []BookingCard `json:"items"`
	HasMore bool          `json:"has_more"`
}

type AgencyList struct {
	Items   []AgencyCard `json:"items"`
	HasMore bool         `json:"has_more"`
}

type CatalogQueries interface {
	ListOffers(ctx context.Context, pages int) (*OfferList, error)
	ListBookings(ctx context.Context, pages int) (*BookingList, error)
	ListAgencies(ctx context.Context, pages int) (*AgencyList, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListOffers(ctx context.Context, pages int) (*OfferList, error) {
	merged, err := FetchIncremental(ctx, offerPageSize, pages,
		func(ctx context.Context, page int) ([]upstream.Offer, error) {
			batch, _, err := q.store.ListOffers(ctx, upstream.ListQuery{
				Sort:    "max_discount",
				SortDir: "desc",
				Limit:   offerPageSize,
				Page:    page,
			})
			return batch, err
		},
		func(o upstream.Offer) int { return o.ID },
	)
	if err != nil {
		return nil, err
	}

	cards := make([]OfferCard, len(merged.Items))
	for i, o := range merged.Items {
		cards[i] = NewOfferCard(o)
	}
	return &OfferList{Items: cards, HasMore: merged.HasMore}, nil
}

func (q *catalogQueriesImpl) ListBookings(ctx context.Context, pages int) (*BookingList, error) {
	merged, err := FetchIncremental(ctx, bookingPageSize, pages,
		func(ctx context.Context, page int) ([]upstream.Booking, error) {
			batch, _, err := q.store.ListBookings(ctx, upstream.ListQuery{
				Limit: bookingPageSize,
				Page:  page,
			})
			return batch, err
		},
		func(b upstream.Booking) int { return b.ID },
	)
	if err != nil {
		return nil, err
	}

	cards := make([]BookingCard, len(merged.Items))
	for i, b := range merged.Items {
		cards[i] = NewBookingCard(b)
	}
	return &BookingList{Items: cards, HasMore: merged.HasMore}, nil
}

func (q *catalogQueriesImpl) ListAgencies(ctx context.Context, pages int) (*AgencyList, error) {
	merged, err := FetchIncremental(ctx, agencyPageSize, pages,
		func(ctx context.Context, page int) ([]upstream.Agency, error) {
			batch, _, err := q.store.ListAgencies(ctx, upstream.ListQuery{
				Sort:    "rating",
				SortDir: "desc",
				Limit:   agencyPageSize,
				Page:    page,
			})
			return batch, err
		},
		func(a upstream.Agency) int { return a.ID },
	)
	if err != nil {
		return nil, err
	}

	cards := make([]AgencyCard, len(merged.Items))
	for i, a := range merged.Items {
		cards[i] = NewAgencyCard(a)
	}
	return &AgencyList{Items: cards, HasMore: merged.HasMore}, nil
}
