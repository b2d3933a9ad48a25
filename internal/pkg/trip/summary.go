package trip

import (
	"fmt"

	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/utils"
)

// Summarize produces the display digest of a finished itinerary.
func Summarize(it dto.Itinerary) dto.Summary {
	outbound := "None"
	if it.OutboundFlight != nil {
		outbound = it.OutboundFlight.Airline
	}

	returnAirline := "None"
	if it.ReturnFlight != nil {
		returnAirline = it.ReturnFlight.Airline
	}

	hotelNames := make([]string, len(it.Hotels))
	for i, hotel := range it.Hotels {
		hotelNames[i] = hotel.Name
	}

	totalActivities := 0
	seen := make(map[dto.ActivityCategory]bool)
	var categories []string

	for _, schedule := range it.DailySchedules {
		totalActivities += len(schedule.Activities)

		for _, activity := range schedule.Activities {
			if !seen[activity.Category] {
				seen[activity.Category] = true
				categories = append(categories, string(activity.Category))
			}
		}
	}

	return dto.Summary{
		TripName:           it.TripName,
		Destination:        it.Destination,
		Duration:           fmt.Sprintf("%d days", it.TotalDays),
		TotalCost:          utils.FormatMoney(EstimatedCost(it), string(it.Currency)),
		OutboundAirline:    outbound,
		ReturnAirline:      returnAirline,
		Hotels:             hotelNames,
		TotalActivities:    totalActivities,
		ActivityCategories: categories,
	}
}
