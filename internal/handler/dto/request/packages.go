package request

import (
	"strings"

	"tripdesk/internal/infra/upstream"
)

type FlightSection struct {
	FromCity string `json:"from_city" binding:"required"`
	ToCity   string `json:"to_city" binding:"required"`
}

type AccommodationSection struct {
	HotelName string `json:"hotel_name" binding:"required"`
	NoOfDays  int    `json:"no_of_days" binding:"required,min=1"`
}

// CreatePackageRequest is the `data` JSON part of the multipart create call.
// The optional cover image travels as a sibling `cover` file part and is
// uploaded separately before the package itself is submitted.
type CreatePackageRequest struct {
	Title           string                 `json:"title" binding:"required"`
	Description     string                 `json:"description" binding:"required"`
	SellingPrice    string                 `json:"selling_price" binding:"required"`
	OriginalPrice   string                 `json:"original_price"`
	PricingType     string                 `json:"pricing_type" binding:"required,oneof=per_person per_couple per_room"`
	NumberOfDays    string                 `json:"number_of_days" binding:"required"`
	NumberOfNights  string                 `json:"number_of_nights" binding:"required"`
	Latitude        float64                `json:"latitude"`
	Longitude       float64                `json:"longitude"`
	CountryID       int                    `json:"country_id" binding:"required"`
	CityID          int                    `json:"city_id" binding:"required"`
	TravelAgencyID  int                    `json:"travel_agency_id" binding:"required"`
	ValidTill       string                 `json:"valid_till" binding:"required"`
	ExpiredAt       string                 `json:"expired_at"`
	CategoryIDs     []int                  `json:"category_ids" binding:"required,min=1"`
	Flights         []FlightSection        `json:"flights"`
	Accommodations  []AccommodationSection `json:"accommodations"`
	Transportation  string                 `json:"transportation"`
	Meals           string                 `json:"meals"`
	MinPeople       string                 `json:"min_people"`
	MaxPeople       string                 `json:"max_people"`
	RoomsAllowed    bool                   `json:"rooms_allowed"`
	ChildrenAllowed bool                   `json:"children_allowed"`
	MinRooms        string                 `json:"min_rooms"`
	MaxRooms        string                 `json:"max_rooms"`
	ItineraryDay    string                 `json:"itinerary_day"`
	ItineraryTitle  string                 `json:"itinerary_title"`
}

// ToDraft builds the upstream form payload. coverID is zero when no cover
// image was uploaded.
func (r CreatePackageRequest) ToDraft(coverID int) upstream.PackageDraft {
	draft := upstream.PackageDraft{
		Locale:          "en",
		Title:           strings.TrimSpace(r.Title),
		Description:     strings.TrimSpace(r.Description),
		SellingPrice:    r.SellingPrice,
		OriginalPrice:   r.OriginalPrice,
		PricingType:     r.PricingType,
		Status:          "active",
		NumberOfDays:    r.NumberOfDays,
		NumberOfNights:  r.NumberOfNights,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		CountryID:       r.CountryID,
		CityID:          r.CityID,
		TravelAgencyID:  r.TravelAgencyID,
		ValidTill:       r.ValidTill,
		ExpiredAt:       r.ExpiredAt,
		CategoryIDs:     r.CategoryIDs,
		Transportation:  r.Transportation,
		Meals:           r.Meals,
		MinPeople:       r.MinPeople,
		MaxPeople:       r.MaxPeople,
		RoomsAllowed:    r.RoomsAllowed,
		ChildrenAllowed: r.ChildrenAllowed,
		MinRooms:        r.MinRooms,
		MaxRooms:        r.MaxRooms,
		ItineraryDay:    r.ItineraryDay,
		ItineraryTitle:  r.ItineraryTitle,
		CoverID:         coverID,
	}
	for _, f := range r.Flights {
		draft.Flights = append(draft.Flights, upstream.FlightDraft(f))
	}
	for _, a := range r.Accommodations {
		draft.Accommodations = append(draft.Accommodations, upstream.AccommodationDraft(a))
	}
	return draft
}

// UpdatePackageRequest edits the localized title, description and selling
// price of an existing package.
type UpdatePackageRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	SellingPrice string `json:"selling_price" binding:"required"`
}
