package upstream

import (
	"context"
)

// CatalogGateway covers the remaining card-list resources: offers, bookings
// and agencies. They are read-only from the console's point of view.
type CatalogGateway struct {
	c *Client
}

func NewCatalogGateway(c *Client) *CatalogGateway {
	return &CatalogGateway{c: c}
}

func (g *CatalogGateway) ListOffers(ctx context.Context, q ListQuery) ([]Offer, int, error) {
	var offers []Offer
	total, err := g.c.get(ctx, "/admin/offer/get-offer-list", q.values(), &offers)
	if err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

func (g *CatalogGateway) ListBookings(ctx context.Context, q ListQuery) ([]Booking, int, error) {
	var bookings []Booking
	total, err := g.c.get(ctx, "/admin/booking/get-bookings-list", q.values(), &bookings)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (g *CatalogGateway) ListAgencies(ctx context.Context, q ListQuery) ([]Agency, int, error) {
	var agencies []Agency
	total, err := g.c.get(ctx, "/admin/agency/get-agency-list", q.values(), &agencies)
	if err != nil {
		return nil, 0, err
	}
	return agencies, total, nil
}
