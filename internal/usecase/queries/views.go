package queries

import (
	"strconv"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/ptr"
)

// Display locale. The upstream tags every translation sub-record; the console
// only ever renders English and must tolerate its absence at any depth.
const LocaleEN = "en"

// Literal placeholders shown when a translation is missing entirely.
const (
	NoTitle       = "No Title"
	NoDescription = "No Description"
	NotProvided   = "Not provided"
	UnnamedAgency = "Unnamed Agency"
)

func translationFor(trs []upstream.Translation, locale string) (upstream.Translation, bool) {
	for _, tr := range trs {
		if tr.Locale == locale {
			return tr, true
		}
	}
	return upstream.Translation{}, false
}

func titleOr(trs []upstream.Translation, fallback string) string {
	if tr, ok := translationFor(trs, LocaleEN); ok && tr.Title != "" {
		return tr.Title
	}
	return fallback
}

func descriptionOr(trs []upstream.Translation, fallback string) string {
	if tr, ok := translationFor(trs, LocaleEN); ok && tr.Description != "" {
		return tr.Description
	}
	return fallback
}

func nameOr(trs []upstream.Translation, fallback string) string {
	if tr, ok := translationFor(trs, LocaleEN); ok && tr.Name != "" {
		return tr.Name
	}
	return fallback
}

func coverPath(cover *upstream.Picture) string {
	if cover == nil {
		return ""
	}
	return cover.VirtualPath
}

// ---------------------------------------------------------------------------
// Flat, fully-defaulted view models. All optional-field handling happens in
// the constructors below; render code never touches a nil again.
// ---------------------------------------------------------------------------

type UserRow struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

func NewUserRow(u upstream.User) UserRow {
	row := UserRow{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, IsActive: u.IsActive}
	if row.Name == "" {
		row.Name = "—"
	}
	if row.Email == "" {
		row.Email = "—"
	}
	if row.Phone == "" {
		row.Phone = "N/A"
	}
	return row
}

type PackageCard struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CoverURL     string   `json:"cover_url"`
	HasCover     bool     `json:"has_cover"`
	SellingPrice *float64 `json:"selling_price"`
	PriceLabel   string   `json:"price_label"`
}

func NewPackageCard(p upstream.Package) PackageCard {
	return PackageCard{
		ID:           p.ID,
		Title:        titleOr(p.Translations, NoTitle),
		Description:  descriptionOr(p.Translations, NoDescription),
		CoverURL:     coverPath(p.Cover),
		HasCover:     p.Cover != nil && p.Cover.VirtualPath != "",
		SellingPrice: p.SellingPrice,
		PriceLabel:   priceLabel(p.SellingPrice),
	}
}

func priceLabel(price *float64) string {
	if price == nil {
		return "No Price"
	}
	value := strconv.FormatFloat(ptr.Deref(price, 0), 'f', -1, 64)
	return "Dhs " + value + " per person"
}

type OfferCard struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	HasCover    bool   `json:"has_cover"`
}

func NewOfferCard(o upstream.Offer) OfferCard {
	card := OfferCard{
		ID:          o.ID,
		Title:       titleOr(o.Translations, NoTitle),
		Description: descriptionOr(o.Translations, "No description available"),
	}
	// The card image comes from the first attached package's cover.
	if len(o.Packages) > 0 && o.Packages[0].Package != nil {
		card.CoverURL = coverPath(o.Packages[0].Package.Cover)
	}
	card.HasCover = card.CoverURL != ""
	return card
}

type BookingCard struct {
	ID           int    `json:"id"`
	TripName     string `json:"trip_name"`
	CustomerName string `json:"customer_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
	CoverURL     string `json:"cover_url"`
	HasCover     bool   `json:"has_cover"`
}

func NewBookingCard(b upstream.Booking) BookingCard {
	card := BookingCard{
		ID:           b.ID,
		TripName:     b.TripName,
		CustomerName: "Unknown",
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		Status:       bookingStatus(b.BookingStatus),
	}
	if b.Customer != nil && b.Customer.Name != "" {
		card.CustomerName = b.Customer.Name
	}
	if b.Package != nil {
		card.CoverURL = coverPath(b.Package.Cover)
	}
	card.HasCover = card.CoverURL != ""
	return card
}

// Anything the upstream has not explicitly confirmed or cancelled renders as
// pending.
func bookingStatus(raw string) string {
	switch raw {
	case "CONFIRMED":
		return "Confirmed"
	case "CANCELLED":
		return "Cancelled"
	default:
		return "Pending"
	}
}

type AgencyCard struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	AccountStatus string  `json:"account_status"`
	RatingStars   float64 `json:"rating_stars"`
	RatingPercent float64 `json:"rating_percent"`
	ContactNumber string  `json:"contact_number"`
	Email         string  `json:"email"`
	CoverURL      string  `json:"cover_url"`
	HasCover      bool    `json:"has_cover"`
}

func NewAgencyCard(a upstream.Agency) AgencyCard {
	card := AgencyCard{
		ID:            a.ID,
		Name:          nameOr(a.Translations, UnnamedAgency),
		Type:          a.Type,
		AccountStatus: a.AccountStatus,
		ContactNumber: a.ContactNumber,
		Email:         a.Email,
		CoverURL:      coverPath(a.Cover),
	}
	if a.Rating != nil {
		card.RatingStars = a.Rating.Stars
		card.RatingPercent = a.Rating.Percentage
	}
	if card.ContactNumber == "" {
		card.ContactNumber = "N/A"
	}
	if card.Email == "" {
		card.Email = "N/A"
	}
	card.HasCover = card.CoverURL != ""
	return card
}
