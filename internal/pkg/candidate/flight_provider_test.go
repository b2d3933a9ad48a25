//go:build unit

package candidate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/llm"
)

func TestFlightProvider_Search(t *testing.T) {
	t.Run("hardcoded_fallback_sorted_by_price", func(t *testing.T) {
		// no search clients and a dead LLM leaves only the deterministic set
		p := NewFlightProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

		flights, err := p.Search(context.Background(), candidateRequest())

		assert.NoError(t, err)

		want := []string{"DL1234", "AA9012", "UA5678"}
		got := make([]string, len(flights))
		for i, f := range flights {
			got[i] = f.FlightNumber
		}

		diff := cmp.Diff(want, got)
		if diff != "" {
			t.Fatalf("flight order mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, "2026-06-01", flights[0].DepartureTime.Format(dto.DateLayout))
	})

	t.Run("synthesized_candidates_survive", func(t *testing.T) {
		synthetic := `Here are some options:
[{"airline":"Qantas","flight_number":"QF12","departure_airport":"SYD",
"arrival_airport":"LAX","departure_time":"2026-06-01T09:00:00",
"arrival_time":"2026-06-01T19:00:00","duration_minutes":780,"price":900,
"currency":"USD","flight_class":"economy","stops":0}]`

		p := NewFlightProvider(testConfig(), nil, &stubLLM{
			complete: func(llm.CompletionRequest) (string, error) { return synthetic, nil },
		}, 5)

		flights, err := p.Search(context.Background(), candidateRequest())

		assert.NoError(t, err)
		assert.Len(t, flights, 1)
		assert.Equal(t, "QF12", flights[0].FlightNumber)
		assert.Equal(t, 900.0, flights[0].Price)
	})
}

func TestFlightProvider_Normalize_Closure(t *testing.T) {
	toDTORequest := func(raw rawFlight, wantErr bool, check func(t *testing.T, f dto.Flight)) func(t *testing.T) {
		return func(t *testing.T) {
			p := NewFlightProvider(testConfig(), nil, failingLLM(assert.AnError), 5)

			got, err := p.toDTO(raw)
			if (err != nil) != wantErr {
				t.Fatalf("toDTO error = %v, wantErr %v", err, wantErr)
			}
			if !wantErr && check != nil {
				check(t, got)
			}
		}
	}

	valid := rawFlight{
		Airline: "Delta Airlines", FlightNumber: "DL1234",
		DepartureAirport: "JFK", ArrivalAirport: "LAX",
		DepartureTime: "2026-06-01T08:00:00", ArrivalTime: "2026-06-01T11:30:00",
		DurationMinutes: 210, Price: 350, Currency: "USD", FlightClass: "economy",
	}

	t.Run("valid", toDTORequest(valid, false, func(t *testing.T, f dto.Flight) {
		assert.Equal(t, dto.FlightClassEconomy, f.FlightClass)
		assert.Equal(t, dto.CurrencyUSD, f.Currency)
	}))

	t.Run("bad_departure_time", toDTORequest(func() rawFlight {
		r := valid
		r.DepartureTime = "soon"
		return r
	}(), true, nil))

	t.Run("zero_duration", toDTORequest(func() rawFlight {
		r := valid
		r.DurationMinutes = 0
		return r
	}(), true, nil))

	t.Run("negative_price", toDTORequest(func() rawFlight {
		r := valid
		r.Price = -10
		return r
	}(), true, nil))

	t.Run("unknown_currency", toDTORequest(func() rawFlight {
		r := valid
		r.Currency = "XBT"
		return r
	}(), true, nil))

	t.Run("unknown_flight_class", toDTORequest(func() rawFlight {
		r := valid
		r.FlightClass = "cargo"
		return r
	}(), true, nil))

	t.Run("missing_names_get_defaults", toDTORequest(func() rawFlight {
		r := valid
		r.Airline = ""
		r.FlightNumber = ""
		return r
	}(), false, func(t *testing.T, f dto.Flight) {
		assert.Equal(t, "Unknown", f.Airline)
		assert.Equal(t, "N/A", f.FlightNumber)
	}))

	t.Run("empty_currency_and_class_default", toDTORequest(func() rawFlight {
		r := valid
		r.Currency = ""
		r.FlightClass = ""
		return r
	}(), false, func(t *testing.T, f dto.Flight) {
		assert.Equal(t, dto.CurrencyUSD, f.Currency)
		assert.Equal(t, dto.FlightClassEconomy, f.FlightClass)
	}))
}

func TestSortFlights_Closure(t *testing.T) {
	sortRequest := func(flights []dto.Flight, wantNumbers []string) func(t *testing.T) {
		return func(t *testing.T) {
			fCopy := make([]dto.Flight, len(flights))
			copy(fCopy, flights)

			sortFlights(fCopy)

			got := make([]string, len(fCopy))
			for i, f := range fCopy {
				got[i] = f.FlightNumber
			}

			diff := cmp.Diff(wantNumbers, got)
			if diff != "" {
				t.Fatalf("sortFlights mismatch (-want +got):\n%s", diff)
			}
		}
	}

	flights := []dto.Flight{
		{FlightNumber: "A", Price: 400, DurationMinutes: 200},
		{FlightNumber: "B", Price: 300, DurationMinutes: 250},
		{FlightNumber: "C", Price: 300, DurationMinutes: 180},
	}

	t.Run("price_then_duration", sortRequest(flights, []string{"C", "B", "A"}))
}
