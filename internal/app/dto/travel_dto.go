package dto

import "time"

// DateLayout is the calendar date format used on all request and itinerary
// date fields.
const DateLayout = "2006-01-02"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
)

func ParseCurrency(s string) (Currency, bool) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD, CurrencyAUD:
		return Currency(s), true
	}
	return "", false
}

type FlightClass string

const (
	FlightClassEconomy        FlightClass = "economy"
	FlightClassPremiumEconomy FlightClass = "premium_economy"
	FlightClassBusiness       FlightClass = "business"
	FlightClassFirst          FlightClass = "first"
)

func ParseFlightClass(s string) (FlightClass, bool) {
	switch FlightClass(s) {
	case FlightClassEconomy, FlightClassPremiumEconomy, FlightClassBusiness, FlightClassFirst:
		return FlightClass(s), true
	}
	return "", false
}

type RatingCategory string

const (
	RatingBudget   RatingCategory = "budget"
	RatingStandard RatingCategory = "standard"
	RatingPremium  RatingCategory = "premium"
	RatingLuxury   RatingCategory = "luxury"
)

func ParseRatingCategory(s string) (RatingCategory, bool) {
	switch RatingCategory(s) {
	case RatingBudget, RatingStandard, RatingPremium, RatingLuxury:
		return RatingCategory(s), true
	}
	return "", false
}

type ActivityCategory string

const (
	ActivityCultural      ActivityCategory = "cultural"
	ActivityOutdoor       ActivityCategory = "outdoor"
	ActivityFood          ActivityCategory = "food"
	ActivityShopping      ActivityCategory = "shopping"
	ActivityEntertainment ActivityCategory = "entertainment"
	ActivityHistorical    ActivityCategory = "historical"
	ActivityNature        ActivityCategory = "nature"
)

func ParseActivityCategory(s string) (ActivityCategory, bool) {
	switch ActivityCategory(s) {
	case ActivityCultural, ActivityOutdoor, ActivityFood, ActivityShopping,
		ActivityEntertainment, ActivityHistorical, ActivityNature:
		return ActivityCategory(s), true
	}
	return "", false
}

type Flight struct {
	Airline          string      `json:"airline"`
	FlightNumber     string      `json:"flight_number"`
	DepartureAirport string      `json:"departure_airport"`
	ArrivalAirport   string      `json:"arrival_airport"`
	DepartureTime    time.Time   `json:"departure_time"`
	ArrivalTime      time.Time   `json:"arrival_time"`
	DurationMinutes  int         `json:"duration_minutes"`
	Price            float64     `json:"price"`
	Currency         Currency    `json:"currency"`
	FlightClass      FlightClass `json:"flight_class"`
	Stops            int         `json:"stops"`
	BookingLink      *string     `json:"booking_link,omitempty"`
}

type Hotel struct {
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	Country        string         `json:"country"`
	Rating         float64        `json:"rating"`
	RatingCategory RatingCategory `json:"rating_category"`
	PricePerNight  float64        `json:"price_per_night"`
	Currency       Currency       `json:"currency"`
	Amenities      []string       `json:"amenities"`
	BookingLink    *string        `json:"booking_link,omitempty"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
}

type PointOfInterest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      ActivityCategory `json:"category"`
	Address       *string          `json:"address,omitempty"`
	City          string           `json:"city"`
	Country       string           `json:"country"`
	Rating        *float64         `json:"rating,omitempty"`
	PriceRange    *string          `json:"price_range,omitempty"`
	DurationHours *float64         `json:"duration_hours,omitempty"`
	OpeningHours  *string          `json:"opening_hours,omitempty"`
	Website       *string          `json:"website,omitempty"`
	Latitude      *float64         `json:"latitude,omitempty"`
	Longitude     *float64         `json:"longitude,omitempty"`
}

// FreeTimeSlot is an informational placeholder; the labels are fixed strings,
// not derived from actual activity end times.
type FreeTimeSlot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

type DailySchedule struct {
	Date          string            `json:"date"`
	Activities    []PointOfInterest `json:"activities"`
	FreeTimeSlots []FreeTimeSlot    `json:"free_time_slots"`
	Notes         string            `json:"notes,omitempty"`
}

// Itinerary is the composed trip plan. It is built once per request and never
// mutated afterwards.
type Itinerary struct {
	TripName       string          `json:"trip_name"`
	Destination    string          `json:"destination"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	TotalDays      int             `json:"total_days"`
	OutboundFlight *Flight         `json:"outbound_flight,omitempty"`
	ReturnFlight   *Flight         `json:"return_flight,omitempty"`
	Hotels         []Hotel         `json:"hotels"`
	DailySchedules []DailySchedule `json:"daily_schedules"`
	TotalBudget    *float64        `json:"total_budget,omitempty"`
	Currency       Currency        `json:"currency"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Summary is a display-ready digest of an itinerary.
type Summary struct {
	TripName           string   `json:"trip_name"`
	Destination        string   `json:"destination"`
	Duration           string   `json:"duration"`
	TotalCost          string   `json:"total_cost"`
	OutboundAirline    string   `json:"outbound_airline"`
	ReturnAirline      string   `json:"return_airline"`
	Hotels             []string `json:"hotels"`
	TotalActivities    int      `json:"total_activities"`
	ActivityCategories []string `json:"activity_categories"`
}
