package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tripsmith/trip-planner-service/internal/pkg/exception"
)

// Preferences is the typed preference bag. Extra carries unrecognized keys for
// forward compatibility.
type Preferences struct {
	Interests         []string               `json:"interests,omitempty"`
	MinRating         *float64               `json:"min_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	RequiredAmenities []string               `json:"required_amenities,omitempty"`
	Extra             map[string]interface{} `json:"extra,omitempty"`
}

// TripRequest is the sole input to every downstream component.
type TripRequest struct {
	Destination string      `json:"destination" validate:"required"`
	StartDate   string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string      `json:"end_date" validate:"required,datetime=2006-01-02"`
	Budget      *float64    `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Currency    Currency    `json:"currency" validate:"omitempty,oneof=USD EUR GBP CAD AUD"`
	Travelers   int         `json:"travelers" validate:"required,min=1,max=10"`
	Preferences Preferences `json:"preferences"`
}

func (r *TripRequest) Bind(_ *http.Request) error {
	if r.Currency == "" {
		r.Currency = CurrencyUSD
	}

	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *TripRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if !r.End().After(r.Start()) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "end_date must be after start_date",
		}
	}

	return nil
}

// Start returns the parsed start date. Call only after Validate; the zero time
// is returned for malformed input.
func (r TripRequest) Start() time.Time {
	t, _ := time.Parse(DateLayout, r.StartDate)
	return t
}

func (r TripRequest) End() time.Time {
	t, _ := time.Parse(DateLayout, r.EndDate)
	return t
}

// TotalDays is the trip length in nights, end minus start. The same convention
// is applied everywhere: schedule count, hotel budget ceiling and cost model.
func (r TripRequest) TotalDays() int {
	return int(r.End().Sub(r.Start()).Hours() / 24)
}

type Metadata struct {
	ProvidersQueried   int  `json:"providers_queried"`
	ProvidersSucceeded int  `json:"providers_succeeded"`
	ProvidersFailed    int  `json:"providers_failed"`
	SearchTimeMs       int  `json:"search_time_ms"`
	CacheHit           bool `json:"cache_hit"`
}

// ValidationReport carries the advisory validation outcome. A failed
// validation never blocks the response.
type ValidationReport struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// PlanTripResponse is the uniform agent envelope returned by the planner.
type PlanTripResponse struct {
	Agent         string           `json:"agent_name"`
	Success       bool             `json:"success"`
	Data          *Itinerary       `json:"data,omitempty"`
	ErrorMessage  string           `json:"error_message,omitempty"`
	Reasoning     string           `json:"reasoning,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
	EstimatedCost float64          `json:"estimated_cost"`
	Validation    ValidationReport `json:"validation"`
	Summary       *Summary         `json:"summary,omitempty"`
	Metadata      Metadata         `json:"metadata"`
}
