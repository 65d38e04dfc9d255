//go:build unit

package queries_test

import (
	"testing"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/ptr"
	"tripdesk/internal/usecase/queries"
	"tripdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRow(t *testing.T) {
	t.Run("complete record passes through", func(t *testing.T) {
		row := queries.NewUserRow(builder.NewUserBuilder().Build())
		assert.Equal(t, "Aisha Khan", row.Name)
		assert.Equal(t, "aisha@example.com", row.Email)
		assert.Equal(t, "+971500000001", row.Phone)
		assert.True(t, row.IsActive)
	})

	t.Run("blank contact fields fall back", func(t *testing.T) {
		row := queries.NewUserRow(builder.NewUserBuilder().WithName("").WithEmail("").WithPhone("").Build())
		assert.Equal(t, "—", row.Name)
		assert.Equal(t, "—", row.Email)
		assert.Equal(t, "N/A", row.Phone)
	})
}

func TestNewPackageCard(t *testing.T) {
	t.Run("en translation drives title and description", func(t *testing.T) {
		card := queries.NewPackageCard(builder.NewPackageBuilder().Build())
		assert.Equal(t, "Desert Escape", card.Title)
		assert.Equal(t, "Three nights in the dunes", card.Description)
		assert.True(t, card.HasCover)
		assert.Equal(t, "/media/covers/101.jpg", card.CoverURL)
		assert.Equal(t, "Dhs 1499 per person", card.PriceLabel)
	})

	t.Run("missing translations fall back to literals", func(t *testing.T) {
		card := queries.NewPackageCard(builder.NewPackageBuilder().WithoutTranslations().Build())
		assert.Equal(t, "No Title", card.Title)
		assert.Equal(t, "No Description", card.Description)
	})

	t.Run("ar-only translations do not leak into the en view", func(t *testing.T) {
		pkg := upstream.Package{
			ID:           5,
			Translations: []upstream.Translation{{Locale: "ar", Title: "عنوان", Description: "وصف"}},
		}
		card := queries.NewPackageCard(pkg)
		assert.Equal(t, "No Title", card.Title)
		assert.Equal(t, "No Description", card.Description)
	})

	t.Run("missing price renders No Price", func(t *testing.T) {
		card := queries.NewPackageCard(builder.NewPackageBuilder().WithoutPrice().Build())
		assert.Nil(t, card.SellingPrice)
		assert.Equal(t, "No Price", card.PriceLabel)
	})

	t.Run("missing cover leaves the flag down", func(t *testing.T) {
		card := queries.NewPackageCard(builder.NewPackageBuilder().WithoutCover().Build())
		assert.False(t, card.HasCover)
		assert.Empty(t, card.CoverURL)
	})

	t.Run("fractional price keeps its decimals", func(t *testing.T) {
		pkg := builder.NewPackageBuilder().Build()
		pkg.SellingPrice = ptr.To(999.5)
		card := queries.NewPackageCard(pkg)
		assert.Equal(t, "Dhs 999.5 per person", card.PriceLabel)
	})
}

func TestNewOfferCard(t *testing.T) {
	t.Run("image comes from the first attached package", func(t *testing.T) {
		offer := upstream.Offer{
			ID:           3,
			Translations: []upstream.Translation{{Locale: "en", Title: "Summer Deal"}},
			Packages: []upstream.OfferPackage{
				{Package: &upstream.PackageRef{Cover: &upstream.Picture{VirtualPath: "/media/offers/3.jpg"}}},
			},
		}
		card := queries.NewOfferCard(offer)
		assert.Equal(t, "Summer Deal", card.Title)
		assert.Equal(t, "No description available", card.Description)
		assert.Equal(t, "/media/offers/3.jpg", card.CoverURL)
		assert.True(t, card.HasCover)
	})

	t.Run("offer with no packages has no image", func(t *testing.T) {
		card := queries.NewOfferCard(upstream.Offer{ID: 4})
		assert.Equal(t, "No Title", card.Title)
		assert.False(t, card.HasCover)
	})
}

func TestNewBookingCard(t *testing.T) {
	t.Run("status outside the known pair renders pending", func(t *testing.T) {
		cases := map[string]string{
			"CONFIRMED":  "Confirmed",
			"CANCELLED":  "Cancelled",
			"PROCESSING": "Pending",
			"":           "Pending",
		}
		for raw, want := range cases {
			card := queries.NewBookingCard(upstream.Booking{BookingStatus: raw})
			assert.Equal(t, want, card.Status, "raw status %q", raw)
		}
	})

	t.Run("missing customer renders Unknown", func(t *testing.T) {
		card := queries.NewBookingCard(upstream.Booking{ID: 9, TripName: "Bali Trip"})
		assert.Equal(t, "Unknown", card.CustomerName)
		assert.Equal(t, "Bali Trip", card.TripName)
	})
}

func TestNewAgencyCard(t *testing.T) {
	t.Run("missing pieces all fall back", func(t *testing.T) {
		card := queries.NewAgencyCard(upstream.Agency{ID: 12})
		assert.Equal(t, "Unnamed Agency", card.Name)
		assert.Equal(t, "N/A", card.ContactNumber)
		assert.Equal(t, "N/A", card.Email)
		assert.Zero(t, card.RatingStars)
	})

	t.Run("rating carries through when present", func(t *testing.T) {
		agency := upstream.Agency{
			ID:           13,
			Translations: []upstream.Translation{{Locale: "en", Name: "Wanderlust LLC"}},
			Rating:       &upstream.AgencyRating{Stars: 4.5, Percentage: 90},
		}
		card := queries.NewAgencyCard(agency)
		assert.Equal(t, "Wanderlust LLC", card.Name)
		assert.Equal(t, 4.5, card.RatingStars)
		assert.Equal(t, 90.0, card.RatingPercent)
	})
}
