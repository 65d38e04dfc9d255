package queries

import (
	"context"
	"strings"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

var ErrPackageNotFound = errs.New("package not found")

// Packages screen: incremental strategy, large sorted page.
const (
	packagePageSize = 100
	packageSort     = "min_rooms"
	packageSortDir  = "asc"
)

type PackageReadStore interface {
	List(ctx context.Context, q upstream.ListQuery) ([]upstream.Package, int, error)
	Get(ctx context.Context, id int) (*upstream.Package, error)
}

type PackageList struct {
	Items   []PackageCard `json:"items"`
	HasMore bool          `json:"has_more"`
	Pages   int           `json:"pages"`
}

type PackageQueries interface {
	List(ctx context.Context, pages int) (*PackageList, error)
	GetDetail(ctx context.Context, id int) (*PackageDetail, error)
}

type packageQueriesImpl struct {
	store PackageReadStore
}

func NewPackageQueries(store PackageReadStore) PackageQueries {
	return &packageQueriesImpl{store: store}
}

func (q *packageQueriesImpl) List(ctx context.Context, pages int) (*PackageList, error) {
	merged, err := FetchIncremental(ctx, packagePageSize, pages,
		func(ctx context.Context, page int) ([]upstream.Package, error) {
			batch, _, err := q.store.List(ctx, upstream.ListQuery{
				Sort:    packageSort,
				SortDir: packageSortDir,
				Limit:   packagePageSize,
				Page:    page,
			})
			return batch, err
		},
		func(p upstream.Package) int { return p.ID },
	)
	if err != nil {
		return nil, err
	}

	cards := make([]PackageCard, len(merged.Items))
	for i, p := range merged.Items {
		cards[i] = NewPackageCard(p)
	}
	return &PackageList{Items: cards, HasMore: merged.HasMore, Pages: merged.Pages}, nil
}

// ---------------------------------------------------------------------------
// Detail view
// ---------------------------------------------------------------------------

type FlightView struct {
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
}

type AccommodationView struct {
	HotelName string `json:"hotel_name"`
	Nights    int    `json:"nights"`
}

type ItineraryDayView struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Inclusions []string `json:"inclusions"`
}

type AgencyInfo struct {
	Name        string  `json:"name"`
	RatingStars float64 `json:"rating_stars"`
	RatingCount int     `json:"rating_count"`
}

type PackageDetail struct {
	ID               int                 `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"` // upstream ships HTML here
	CoverURL         string              `json:"cover_url"`
	HasCover         bool                `json:"has_cover"`
	City             string              `json:"city"`
	Country          string              `json:"country"`
	Status           string              `json:"status"`
	PricingType      string              `json:"pricing_type"`
	ValidTill        string              `json:"valid_till"`
	CreatedBy        string              `json:"created_by"`
	Keywords         string              `json:"keywords"`
	Agency           AgencyInfo          `json:"agency"`
	AvailableFrom    string              `json:"available_from"`
	AvailableUntil   string              `json:"available_until"`
	Categories       string              `json:"categories"`
	Groups           string              `json:"groups"`
	Meals            string              `json:"meals"`
	Transportation   string              `json:"transportation"`
	TermsHTML        string              `json:"terms_html"`
	CancellationHTML string              `json:"cancellation_html"`
	Flights          []FlightView        `json:"flights"`
	Accommodations   []AccommodationView `json:"accommodations"`
	ItineraryDays    []ItineraryDayView  `json:"itinerary_days"`
	NumberOfDays     int                 `json:"number_of_days"`
	NumberOfNights   int                 `json:"number_of_nights"`
	SellingPrice     *float64            `json:"selling_price"`
	MinPeople        int                 `json:"min_people"`
	MaxPeople        int                 `json:"max_people"`
	MinRooms         int                 `json:"min_rooms"`
	MaxRooms         int                 `json:"max_rooms"`
	ChildrenAllowed  bool                `json:"children_allowed"`
	Latitude         float64             `json:"latitude"`
	Longitude        float64             `json:"longitude"`
}

func (q *packageQueriesImpl) GetDetail(ctx context.Context, id int) (*PackageDetail, error) {
	pkg, err := q.store.Get(ctx, id)
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, errs.Mark(err, ErrPackageNotFound)
		}
		return nil, err
	}
	return NewPackageDetail(pkg), nil
}

// NewPackageDetail is the single normalization step between the upstream's
// deeply optional payload and a flat render-ready view.
func NewPackageDetail(pkg *upstream.Package) *PackageDetail {
	detail := &PackageDetail{}
	// Same-named scalar fields come across mechanically; everything nested
	// and locale-tagged is resolved by hand below.
	_ = copier.Copy(detail, pkg)
	// Flights and Accommodations share names with the upstream record, so the
	// copy above seeds them with zero-valued entries. The loops below own
	// those slices; start them empty.
	detail.Flights = nil
	detail.Accommodations = nil

	detail.Title = titleOr(pkg.Translations, NoTitle)
	detail.Description = descriptionOr(pkg.Translations, "<p>No description</p>")
	detail.CoverURL = coverPath(pkg.Cover)
	detail.HasCover = detail.CoverURL != ""
	detail.City = namedOr(pkg.City, "No City")
	detail.Country = namedOr(pkg.Country, "No Country")
	if detail.CreatedBy == "" {
		detail.CreatedBy = "N/A"
	}
	if detail.Keywords == "" {
		detail.Keywords = "None"
	}

	detail.Agency = AgencyInfo{Name: "N/A"}
	if a := pkg.TravelAgency; a != nil {
		detail.Agency.Name = nameOr(a.Translations, "N/A")
		detail.Agency.RatingCount = a.RatingCount
		if a.Rating != nil {
			detail.Agency.RatingStars = a.Rating.Stars
		}
	}

	detail.AvailableFrom, detail.AvailableUntil = "N/A", "N/A"
	if d := pkg.AvailableDates; d != nil {
		if d.StartingDate != "" {
			detail.AvailableFrom = d.StartingDate
		}
		if d.EndingDate != "" {
			detail.AvailableUntil = d.EndingDate
		}
	}

	detail.Categories = joinOr(categoryNames(pkg.Categories), "None")
	detail.Groups = joinOr(groupTitles(pkg.Groups), "None")
	detail.Meals = localizedMealsOr(pkg.Meals, NotProvided)
	detail.Transportation = localizedTransportOr(pkg.Transportation, NotProvided)
	detail.TermsHTML = termsOr(pkg.Terms, "<p>Not provided</p>")
	detail.CancellationHTML = termsOr(pkg.CancellationTerms, "<p>Not provided</p>")

	for _, f := range pkg.Flights {
		view := FlightView{FromCity: "N/A", ToCity: "N/A"}
		for _, leg := range f.Translations {
			if leg.Locale == LocaleEN {
				if leg.FromCity != "" {
					view.FromCity = leg.FromCity
				}
				if leg.ToCity != "" {
					view.ToCity = leg.ToCity
				}
				break
			}
		}
		detail.Flights = append(detail.Flights, view)
	}

	for _, a := range pkg.Accommodations {
		view := AccommodationView{HotelName: "N/A", Nights: a.NoOfDays}
		for _, stay := range a.Translations {
			if stay.Locale == LocaleEN && stay.HotelName != "" {
				view.HotelName = stay.HotelName
				break
			}
		}
		detail.Accommodations = append(detail.Accommodations, view)
	}

	for _, day := range pkg.Itineraries {
		view := ItineraryDayView{Day: day.Day}
		view.Title = titleOr(day.Translations, "")
		for _, incl := range day.Inclusions {
			if desc := descriptionOr(incl.Translations, ""); desc != "" {
				view.Inclusions = append(view.Inclusions, desc)
			}
		}
		detail.ItineraryDays = append(detail.ItineraryDays, view)
	}

	return detail
}

func namedOr(ref *upstream.NamedRef, fallback string) string {
	if ref == nil || ref.Name == "" {
		return fallback
	}
	return ref.Name
}

func joinOr(parts []string, fallback string) string {
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

func categoryNames(categories []upstream.PackageCategory) []string {
	var names []string
	for _, c := range categories {
		if c.Category != nil && c.Category.Name != "" {
			names = append(names, c.Category.Name)
		}
	}
	return names
}

func groupTitles(groups []upstream.PackageGroupRef) []string {
	var titles []string
	for _, g := range groups {
		if g.PackageGroup == nil {
			continue
		}
		if title := titleOr(g.PackageGroup.Translations, ""); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

func localizedMealsOr(meals []upstream.LocalizedMeals, fallback string) string {
	for _, m := range meals {
		if m.Locale == LocaleEN && m.Meals != "" {
			return m.Meals
		}
	}
	return fallback
}

func localizedTransportOr(transport []upstream.LocalizedTransport, fallback string) string {
	for _, t := range transport {
		if t.Locale == LocaleEN && t.Transportation != "" {
			return t.Transportation
		}
	}
	return fallback
}

func termsOr(blocks []upstream.TermsBlock, fallback string) string {
	if len(blocks) == 0 {
		return fallback
	}
	if desc := descriptionOr(blocks[0].Translations, ""); desc != "" {
		return desc
	}
	return fallback
}
