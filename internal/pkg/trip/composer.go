// Package trip holds the itinerary composition, validation and reporting
// logic, plus the candidate cache and the artifact store.
package trip

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tripsmith/trip-planner-service/internal/app/dto"
)

const (
	maxHotels           = 2
	maxActivitiesPerDay = 3

	// Share of the total budget allocated to lodging when a budget is set.
	hotelBudgetShare = 0.4

	// A day is considered full at eight activity hours; activities without a
	// duration count as two hours.
	fullDayHours         = 8.0
	defaultActivityHours = 2.0
)

// Compose assembles a complete itinerary from pre-normalized candidate lists.
// It never fails: empty inputs degrade to empty or unset fields, and the
// validator is the quality gate afterwards.
func Compose(req dto.TripRequest, flights []dto.Flight, hotels []dto.Hotel, pois []dto.PointOfInterest) dto.Itinerary {
	totalDays := req.TotalDays()

	outbound, returnFlight := selectFlights(flights)
	selectedHotels := selectHotels(hotels, req.Budget, totalDays)
	schedules := buildDailySchedules(req.Start(), pois, totalDays)

	now := time.Now()

	return dto.Itinerary{
		TripName:       fmt.Sprintf("Trip to %s", req.Destination),
		Destination:    req.Destination,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		TotalDays:      totalDays,
		OutboundFlight: outbound,
		ReturnFlight:   returnFlight,
		Hotels:         selectedHotels,
		DailySchedules: schedules,
		TotalBudget:    req.Budget,
		Currency:       req.Currency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// selectFlights picks the cheapest candidate as the outbound leg and the
// second-cheapest as the return leg, falling back to the outbound choice when
// only one exists. The return leg is a placeholder: no actual return-direction
// search happens here.
func selectFlights(flights []dto.Flight) (*dto.Flight, *dto.Flight) {
	if len(flights) == 0 {
		return nil, nil
	}

	// Providers pre-sort, re-sorted defensively.
	sorted := make([]dto.Flight, len(flights))
	copy(sorted, flights)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Price != sorted[j].Price {
			return sorted[i].Price < sorted[j].Price
		}
		return sorted[i].DurationMinutes < sorted[j].DurationMinutes
	})

	outbound := sorted[0]
	returnFlight := sorted[0]
	if len(sorted) > 1 {
		returnFlight = sorted[1]
	}

	return &outbound, &returnFlight
}

// selectHotels keeps at most two hotels, best rating first. When a budget is
// set, hotels above the per-night lodging ceiling are dropped first; an
// emptied list is returned as-is and left for validation to flag.
func selectHotels(hotels []dto.Hotel, budget *float64, totalDays int) []dto.Hotel {
	candidates := make([]dto.Hotel, 0, len(hotels))

	if budget != nil && totalDays > 0 {
		maxPerNight := *budget * hotelBudgetShare / float64(totalDays)
		for _, hotel := range hotels {
			if hotel.PricePerNight <= maxPerNight {
				candidates = append(candidates, hotel)
			}
		}
	} else {
		candidates = append(candidates, hotels...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rating != candidates[j].Rating {
			return candidates[i].Rating > candidates[j].Rating
		}
		return candidates[i].PricePerNight < candidates[j].PricePerNight
	})

	if len(candidates) > maxHotels {
		candidates = candidates[:maxHotels]
	}

	return candidates
}

func buildDailySchedules(start time.Time, pois []dto.PointOfInterest, totalDays int) []dto.DailySchedule {
	groups := groupByCategory(pois)

	schedules := make([]dto.DailySchedule, 0, totalDays)
	for day := 0; day < totalDays; day++ {
		date := start.AddDate(0, 0, day)
		activities := selectActivitiesForDay(groups, day, totalDays)

		schedules = append(schedules, dto.DailySchedule{
			Date:          date.Format(dto.DateLayout),
			Activities:    activities,
			FreeTimeSlots: freeTimeSlots(activities),
			Notes:         dayNotes(activities, day, totalDays),
		})
	}

	return schedules
}

// categoryGroups preserves first-seen category order so composition stays
// deterministic for fixed candidate inputs.
type categoryGroups struct {
	order  []dto.ActivityCategory
	byName map[dto.ActivityCategory][]dto.PointOfInterest
}

func groupByCategory(pois []dto.PointOfInterest) categoryGroups {
	groups := categoryGroups{byName: make(map[dto.ActivityCategory][]dto.PointOfInterest)}

	for _, poi := range pois {
		if _, seen := groups.byName[poi.Category]; !seen {
			groups.order = append(groups.order, poi.Category)
		}
		groups.byName[poi.Category] = append(groups.byName[poi.Category], poi)
	}

	return groups
}

// Arrival and departure days get a single light activity from a fixed category
// priority list; middle days take one activity from each of the first two
// groups. The per-day cap holds regardless of phase.
func selectActivitiesForDay(groups categoryGroups, day, totalDays int) []dto.PointOfInterest {
	var selected []dto.PointOfInterest

	switch {
	case day == 0:
		selected = pickFirstAvailable(groups,
			dto.ActivityFood, dto.ActivityEntertainment, dto.ActivityCultural)

	case day == totalDays-1:
		selected = pickFirstAvailable(groups,
			dto.ActivityShopping, dto.ActivityFood, dto.ActivityCultural)

	default:
		for i, category := range groups.order {
			if i >= 2 {
				break
			}
			selected = append(selected, groups.byName[category][0])
		}
	}

	if len(selected) > maxActivitiesPerDay {
		selected = selected[:maxActivitiesPerDay]
	}

	return selected
}

func pickFirstAvailable(groups categoryGroups, priority ...dto.ActivityCategory) []dto.PointOfInterest {
	for _, category := range priority {
		if pois := groups.byName[category]; len(pois) > 0 {
			return []dto.PointOfInterest{pois[0]}
		}
	}

	return nil
}

// freeTimeSlots synthesizes fixed-label slots for days under eight activity
// hours. The labels are informational placeholders, not derived from activity
// end times.
func freeTimeSlots(activities []dto.PointOfInterest) []dto.FreeTimeSlot {
	totalHours := 0.0
	for _, activity := range activities {
		if activity.DurationHours != nil {
			totalHours += *activity.DurationHours
		} else {
			totalHours += defaultActivityHours
		}
	}

	var slots []dto.FreeTimeSlot
	if totalHours < fullDayHours {
		remaining := fullDayHours - totalHours

		if remaining >= 2 {
			slots = append(slots, dto.FreeTimeSlot{
				StartTime:   "2:00 PM",
				EndTime:     "4:00 PM",
				Description: "Free time for relaxation or exploration",
			})
		}

		if remaining >= 4 {
			slots = append(slots, dto.FreeTimeSlot{
				StartTime:   "6:00 PM",
				EndTime:     "8:00 PM",
				Description: "Evening free time",
			})
		}
	}

	return slots
}

func dayNotes(activities []dto.PointOfInterest, day, totalDays int) string {
	switch {
	case day == 0:
		return "Arrival day - light activities to get oriented"
	case day == totalDays-1:
		return "Departure day - packing and final activities"
	default:
		categories := make([]string, len(activities))
		for i, activity := range activities {
			categories[i] = string(activity.Category)
		}
		return fmt.Sprintf("Full day of %s activities", strings.Join(categories, ", "))
	}
}
