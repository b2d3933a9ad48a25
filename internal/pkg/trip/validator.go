package trip

import (
	"errors"
	"fmt"

	"github.com/tripsmith/trip-planner-service/internal/app/dto"
)

// Per-activity cost estimates by price tier. Tiers outside the map (including
// "Free" and absent tiers) cost nothing.
var activityTierCost = map[string]float64{
	"$":   20.0,
	"$$":  50.0,
	"$$$": 100.0,
}

var (
	ErrNoHotels            = errors.New("no hotels selected")
	ErrFlightDateMismatch  = errors.New("outbound flight date does not match trip start date")
	ErrIncompleteSchedules = errors.New("incomplete daily schedules")
	ErrBudgetExceeded      = errors.New("estimated cost exceeds budget")
)

// EstimatedCost totals flights, lodging and activity tier estimates. Each
// selected hotel is charged for the full stay: hotels represent alternatives,
// and the estimate is deliberately conservative.
func EstimatedCost(it dto.Itinerary) float64 {
	total := 0.0

	if it.OutboundFlight != nil {
		total += it.OutboundFlight.Price
	}
	if it.ReturnFlight != nil {
		total += it.ReturnFlight.Price
	}

	for _, hotel := range it.Hotels {
		total += hotel.PricePerNight * float64(it.TotalDays)
	}

	for _, schedule := range it.DailySchedules {
		for _, activity := range schedule.Activities {
			if activity.PriceRange != nil {
				total += activityTierCost[*activity.PriceRange]
			}
		}
	}

	return total
}

// Validate checks a completed itinerary and returns the first failed rule.
// It is advisory: callers report the result but still return the itinerary.
func Validate(it dto.Itinerary) error {
	if len(it.Hotels) == 0 {
		return ErrNoHotels
	}

	if it.OutboundFlight != nil {
		departureDate := it.OutboundFlight.DepartureTime.Format(dto.DateLayout)
		if departureDate != it.StartDate {
			return fmt.Errorf("%w: flight departs %s, trip starts %s",
				ErrFlightDateMismatch, departureDate, it.StartDate)
		}
	}

	if len(it.DailySchedules) != it.TotalDays {
		return fmt.Errorf("%w: have %d schedules for %d days",
			ErrIncompleteSchedules, len(it.DailySchedules), it.TotalDays)
	}

	if it.TotalBudget != nil {
		cost := EstimatedCost(it)
		if cost > *it.TotalBudget {
			return fmt.Errorf("%w: estimated %.2f, budget %.2f",
				ErrBudgetExceeded, cost, *it.TotalBudget)
		}
	}

	return nil
}
