//go:build unit

package candidate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/tripsmith/trip-planner-service/internal/app/dto"
)

func TestHotelProvider_Search(t *testing.T) {
	t.Run("hardcoded_fallback_sorted_by_rating", func(t *testing.T) {
		p := NewHotelProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

		hotels, err := p.Search(context.Background(), candidateRequest())

		assert.NoError(t, err)

		want := []string{
			"Resort & Conference Center",
			"Grand Hotel & Spa",
			"Boutique Hotel Central",
			"Comfort Inn Downtown",
			"Budget Motel Express",
		}
		got := make([]string, len(hotels))
		for i, h := range hotels {
			got[i] = h.Name
		}

		diff := cmp.Diff(want, got)
		if diff != "" {
			t.Fatalf("hotel order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tight_budget_filters_fallback_set", func(t *testing.T) {
		p := NewHotelProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

		req := candidateRequest()
		budget := 700.0 // 5 nights, keeps only hotels at 140/night or less
		req.Budget = &budget

		hotels, err := p.Search(context.Background(), req)

		assert.NoError(t, err)

		got := make([]string, len(hotels))
		for i, h := range hotels {
			got[i] = h.Name
		}

		diff := cmp.Diff([]string{"Comfort Inn Downtown", "Budget Motel Express"}, got)
		if diff != "" {
			t.Fatalf("hotel order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestHotelProvider_ApplyFilters_Closure(t *testing.T) {
	filterRequest := func(raws []rawHotel, mutateReq func(r *dto.TripRequest), wantNames []string) func(t *testing.T) {
		return func(t *testing.T) {
			p := NewHotelProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

			req := candidateRequest()
			mutateReq(&req)

			filtered := p.applyFilters(context.Background(), raws, req)

			got := make([]string, len(filtered))
			for i, raw := range filtered {
				got[i] = raw.Name
			}

			diff := cmp.Diff(wantNames, got)
			if diff != "" {
				t.Fatalf("applyFilters mismatch (-want +got):\n%s", diff)
			}
		}
	}

	raws := []rawHotel{
		{Name: "Pricey", Rating: 4.8, PricePerNight: 700, Amenities: []string{"WiFi", "Pool"}},
		{Name: "Mid", Rating: 4.0, PricePerNight: 200, Amenities: []string{"WiFi"}},
		{Name: "Cheap", Rating: 2.0, PricePerNight: 50, Amenities: nil},
	}

	t.Run("whole_trip_budget", filterRequest(raws,
		func(_ *dto.TripRequest) {},
		[]string{"Mid", "Cheap"})) // 700 * 5 nights busts the 3000 budget

	t.Run("min_rating", filterRequest(raws,
		func(r *dto.TripRequest) {
			rating := 3.5
			r.Preferences.MinRating = &rating
		},
		[]string{"Mid"}))

	t.Run("required_amenities", filterRequest(raws,
		func(r *dto.TripRequest) {
			r.Budget = nil
			r.Preferences.RequiredAmenities = []string{"WiFi", "Pool"}
		},
		[]string{"Pricey"}))

	t.Run("no_budget_no_preferences", filterRequest(raws,
		func(r *dto.TripRequest) {
			r.Budget = nil
		},
		[]string{"Pricey", "Mid", "Cheap"}))
}

func TestHotelProvider_Normalize_Closure(t *testing.T) {
	toDTORequest := func(raw rawHotel, wantErr bool, check func(t *testing.T, h dto.Hotel)) func(t *testing.T) {
		return func(t *testing.T) {
			p := NewHotelProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

			got, err := p.toDTO(raw)
			if (err != nil) != wantErr {
				t.Fatalf("toDTO error = %v, wantErr %v", err, wantErr)
			}
			if !wantErr && check != nil {
				check(t, got)
			}
		}
	}

	valid := rawHotel{
		Name: "Comfort Inn Downtown", Rating: 3.8, RatingCategory: "standard",
		PricePerNight: 120, Currency: "USD", Amenities: []string{"WiFi"},
	}

	t.Run("valid", toDTORequest(valid, false, func(t *testing.T, h dto.Hotel) {
		assert.Equal(t, dto.RatingStandard, h.RatingCategory)
	}))

	t.Run("rating_out_of_range", toDTORequest(func() rawHotel {
		r := valid
		r.Rating = 5.5
		return r
	}(), true, nil))

	t.Run("unknown_rating_category", toDTORequest(func() rawHotel {
		r := valid
		r.RatingCategory = "five-star"
		return r
	}(), true, nil))

	t.Run("defaults_for_missing_fields", toDTORequest(rawHotel{Rating: 3.0, PricePerNight: 90},
		false, func(t *testing.T, h dto.Hotel) {
			assert.Equal(t, "Unknown", h.Name)
			assert.Equal(t, dto.RatingStandard, h.RatingCategory)
			assert.Equal(t, dto.CurrencyUSD, h.Currency)
			assert.NotNil(t, h.Amenities)
			assert.Empty(t, h.Amenities)
		}))
}
