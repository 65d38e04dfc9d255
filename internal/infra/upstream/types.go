package upstream

// Raw payload shapes as the remote API serves them. Every nested group is
// optional: translations may be missing entirely, covers and ratings may be
// absent at any depth. Normalization into flat view models happens once, in
// the query layer, never here.

type Picture struct {
	ID          int    `json:"id"`
	VirtualPath string `json:"virtual_path"`
}

type Translation struct {
	Locale      string `json:"locale"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

type AgencyRating struct {
	Stars      float64 `json:"stars"`
	Percentage float64 `json:"percentage"`
}

type Agency struct {
	ID            int           `json:"id"`
	Type          string        `json:"type"`
	AccountStatus string        `json:"account_status"`
	ContactNumber string        `json:"contact_number"`
	Email         string        `json:"email"`
	Cover         *Picture      `json:"cover"`
	Rating        *AgencyRating `json:"agency_rating"`
	RatingCount   int           `json:"rating_count"`
	Translations  []Translation `json:"agency_translations"`
}

type FlightLeg struct {
	Locale   string `json:"locale"`
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
}

type Flight struct {
	Translations []FlightLeg `json:"translations"`
}

type AccommodationStay struct {
	Locale    string `json:"locale"`
	HotelName string `json:"hotel_name"`
}

type Accommodation struct {
	NoOfDays     int                 `json:"no_of_days"`
	Translations []AccommodationStay `json:"translations"`
}

type LocalizedMeals struct {
	Locale string `json:"locale"`
	Meals  string `json:"meals"`
}

type LocalizedTransport struct {
	Locale         string `json:"locale"`
	Transportation string `json:"transportation"`
}

type LocalizedItinerary struct {
	Locale    string `json:"locale"`
	Itinerary string `json:"itenary"` // upstream spells the key this way
}

type TermsBlock struct {
	Translations []Translation `json:"translations"`
}

type ItineraryInclusion struct {
	Translations []Translation `json:"translations"`
}

type ItineraryDay struct {
	Day          int                  `json:"day"`
	Translations []Translation        `json:"translations"`
	Inclusions   []ItineraryInclusion `json:"inclusions"`
}

type PackageCategory struct {
	Category *Category `json:"category"`
}

type PackageGroup struct {
	Translations []Translation `json:"translations"`
}

type PackageGroupRef struct {
	PackageGroup *PackageGroup `json:"package_group"`
}

type AvailableDates struct {
	StartingDate string `json:"starting_date"`
	EndingDate   string `json:"ending_date"`
}

type Package struct {
	ID                int                  `json:"id"`
	Status            string               `json:"status"`
	PricingType       string               `json:"pricing_type"`
	SellingPrice      *float64             `json:"selling_price"`
	OriginalPrice     *float64             `json:"original_price"`
	NumberOfDays      int                  `json:"number_of_days"`
	NumberOfNights    int                  `json:"number_of_nights"`
	MinPeople         int                  `json:"min_people"`
	MaxPeople         int                  `json:"max_people"`
	MinRooms          int                  `json:"min_rooms"`
	MaxRooms          int                  `json:"max_rooms"`
	ChildrenAllowed   bool                 `json:"children_allowed"`
	Latitude          float64              `json:"latitude"`
	Longitude         float64              `json:"longitude"`
	ValidTill         string               `json:"valid_till"`
	CreatedBy         string               `json:"created_by"`
	Keywords          string               `json:"keywords"`
	Cover             *Picture             `json:"cover"`
	Translations      []Translation        `json:"package_translations"`
	City              *NamedRef            `json:"city"`
	Country           *NamedRef            `json:"country"`
	TravelAgency      *Agency              `json:"travel_agency"`
	AvailableDates    *AvailableDates      `json:"available_dates"`
	Meals             []LocalizedMeals     `json:"meals"`
	Transportation    []LocalizedTransport `json:"transportation"`
	Itinerary         []LocalizedItinerary `json:"itenary"`
	Itineraries       []ItineraryDay       `json:"itineraries"`
	Flights           []Flight             `json:"flights"`
	Accommodations    []Accommodation      `json:"accommodations"`
	Terms             []TermsBlock         `json:"terms_and_conditions"`
	CancellationTerms []TermsBlock         `json:"cancellation_terms"`
	Categories        []PackageCategory    `json:"package_categories"`
	Groups            []PackageGroupRef    `json:"package_groups"`
}

type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CustomerRef and PackageRef are the shallow projections the list endpoints
// embed instead of the full records.
type CustomerRef struct {
	Name string `json:"name"`
}

type PackageRef struct {
	Cover *Picture `json:"cover"`
}

type Booking struct {
	ID            int          `json:"id"`
	TripName      string       `json:"trip_name"`
	StartDate     string       `json:"start_date"`
	EndDate       string       `json:"end_date"`
	BookingStatus string       `json:"booking_status"`
	Customer      *CustomerRef `json:"customer"`
	Package       *PackageRef  `json:"package"`
}

type OfferPackage struct {
	Package *PackageRef `json:"package"`
}

type Offer struct {
	ID           int            `json:"id"`
	Translations []Translation  `json:"offer_translations"`
	Packages     []OfferPackage `json:"offer_packages"`
}

type Continent struct {
	Translations []Translation `json:"translations"`
}

type Country struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Continent *Continent `json:"continent"`
}

type City struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CountryID int    `json:"country_id"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AnalyticsOverview struct {
	TotalRevenue     float64 `json:"total_revenue"`
	AgencyRevenue    float64 `json:"agency_revenue"`
	FreelanceRevenue float64 `json:"freelance_revenue"`
	TotalBookings    int     `json:"total_bookings"`
	TotalCustomers   int     `json:"total_customers"`
	ActivePackages   int     `json:"active_packages"`
	TotalSearches    int     `json:"total_searches"`
}

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}
