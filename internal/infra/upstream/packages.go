package upstream

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
)

type PackageGateway struct {
	c *Client
}

func NewPackageGateway(c *Client) *PackageGateway {
	return &PackageGateway{c: c}
}

func (g *PackageGateway) List(ctx context.Context, q ListQuery) ([]Package, int, error) {
	var pkgs []Package
	total, err := g.c.get(ctx, "/admin/package/get-packages-list", q.values(), &pkgs)
	if err != nil {
		return nil, 0, err
	}
	return pkgs, total, nil
}

func (g *PackageGateway) Get(ctx context.Context, id int) (*Package, error) {
	var pkg Package
	if _, err := g.c.get(ctx, "/admin/package/get-package/"+strconv.Itoa(id), nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (g *PackageGateway) Delete(ctx context.Context, id int) error {
	return g.c.delete(ctx, "/admin/package/delete-package/"+strconv.Itoa(id))
}

// FlightDraft and AccommodationDraft are the repeatable create-form
// sub-sections. Each entry is serialized with its explicit index in the
// upstream field path (flights[i][translations][0][from_city] and so on).
type FlightDraft struct {
	FromCity string
	ToCity   string
}

type AccommodationDraft struct {
	HotelName string
	NoOfDays  int
}

type PackageDraft struct {
	Locale          string
	Title           string
	Description     string
	SellingPrice    string
	OriginalPrice   string
	PricingType     string
	Status          string
	NumberOfDays    string
	NumberOfNights  string
	Latitude        float64
	Longitude       float64
	CountryID       int
	CityID          int
	TravelAgencyID  int
	ValidTill       string
	ExpiredAt       string
	CategoryIDs     []int
	Flights         []FlightDraft
	Accommodations  []AccommodationDraft
	Transportation  string
	Meals           string
	MinPeople       string
	MaxPeople       string
	RoomsAllowed    bool
	ChildrenAllowed bool
	MinRooms        string
	MaxRooms        string
	ItineraryDay    string
	ItineraryTitle  string
	CoverID         int // 0 when no cover image was uploaded
}

// Create submits the full multi-section form as one multipart call. The cover
// image, when present, must already have been uploaded (CoverID set); this
// method never uploads media itself.
func (g *PackageGateway) Create(ctx context.Context, draft PackageDraft) (*Package, error) {
	var pkg Package
	err := g.c.postForm(ctx, "/admin/package/create-package-translation", func(w *multipart.Writer) error {
		if err := writeTranslationFields(w, draft.Locale, draft.Title, draft.Description); err != nil {
			return err
		}
		fields := map[string]string{
			"selling_price":    draft.SellingPrice,
			"original_price":   draft.OriginalPrice,
			"number_of_days":   draft.NumberOfDays,
			"number_of_nights": draft.NumberOfNights,
			"latitude":         strconv.FormatFloat(draft.Latitude, 'f', -1, 64),
			"longitude":        strconv.FormatFloat(draft.Longitude, 'f', -1, 64),
			"city_id":          strconv.Itoa(draft.CityID),
			"country_id":       strconv.Itoa(draft.CountryID),
			"status":           draft.Status,
			"pricing_type":     draft.PricingType,
			"valid_till":       draft.ValidTill,
			"expired_at":       draft.ExpiredAt,
			"travel_agency_id": strconv.Itoa(draft.TravelAgencyID),
			"min_people":       draft.MinPeople,
			"max_people":       draft.MaxPeople,

			"package_translation[0][transportation]": draft.Transportation,
			"package_translation[0][meals]":          draft.Meals,

			"itineraries[0][day]":                    draft.ItineraryDay,
			"itineraries[0][translations][0][title]": draft.ItineraryTitle,
		}
		for name, value := range fields {
			if err := w.WriteField(name, value); err != nil {
				return err
			}
		}

		for i, id := range draft.CategoryIDs {
			if err := w.WriteField(fmt.Sprintf("categories[%d]", i), strconv.Itoa(id)); err != nil {
				return err
			}
		}
		for i, f := range draft.Flights {
			prefix := fmt.Sprintf("flights[%d][translations][0]", i)
			if err := writeFields(w, map[string]string{
				prefix + "[locale]":    draft.Locale,
				prefix + "[from_city]": f.FromCity,
				prefix + "[to_city]":   f.ToCity,
			}); err != nil {
				return err
			}
		}
		for i, a := range draft.Accommodations {
			if err := writeFields(w, map[string]string{
				fmt.Sprintf("accommodations[%d][translations][0][locale]", i):     draft.Locale,
				fmt.Sprintf("accommodations[%d][translations][0][hotel_name]", i): a.HotelName,
				fmt.Sprintf("accommodations[%d][no_of_days]", i):                  strconv.Itoa(a.NoOfDays),
			}); err != nil {
				return err
			}
		}

		if err := w.WriteField("rooms_allowed", boolField(draft.RoomsAllowed)); err != nil {
			return err
		}
		if err := w.WriteField("children_allowed", boolField(draft.ChildrenAllowed)); err != nil {
			return err
		}
		// The rooms range only travels when the gate is on.
		if draft.RoomsAllowed {
			if err := writeFields(w, map[string]string{
				"min_rooms": draft.MinRooms,
				"max_rooms": draft.MaxRooms,
			}); err != nil {
				return err
			}
		}

		if draft.CoverID != 0 {
			if err := w.WriteField("cover_id", strconv.Itoa(draft.CoverID)); err != nil {
				return err
			}
		}
		return nil
	}, &pkg)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// UpdateTranslation posts the editable field subset (title, description,
// price) against an existing package, same endpoint the create flow uses.
func (g *PackageGateway) UpdateTranslation(ctx context.Context, id int, locale, title, description, sellingPrice string) error {
	return g.c.postForm(ctx, "/admin/package/create-package-translation", func(w *multipart.Writer) error {
		if err := writeTranslationFields(w, locale, title, description); err != nil {
			return err
		}
		return writeFields(w, map[string]string{
			"selling_price": sellingPrice,
			"package_id":    strconv.Itoa(id),
		})
	}, nil)
}

func writeTranslationFields(w *multipart.Writer, locale, title, description string) error {
	return writeFields(w, map[string]string{
		"package_translation[0][locale]":      locale,
		"package_translation[0][title]":       title,
		"package_translation[0][description]": description,
	})
}

func writeFields(w *multipart.Writer, fields map[string]string) error {
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return err
		}
	}
	return nil
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
