//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/trip"
)

func TestPlannerService_PlanTrip(t *testing.T) {
	type mockField struct {
		flights *MockFlightSearcher
		hotels  *MockHotelSearcher
		pois    *MockPOISearcher
		cache   *MockTripCacher
		store   *MockItineraryStore
	}

	planTripRequest := func(
		req dto.TripRequest,
		setupMock func(m mockField),
		check func(t *testing.T, got dto.PlanTripResponse),
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				flights: NewMockFlightSearcher(t),
				hotels:  NewMockHotelSearcher(t),
				pois:    NewMockPOISearcher(t),
				cache:   NewMockTripCacher(t),
				store:   NewMockItineraryStore(t),
			}
			setupMock(m)

			s := NewPlannerService(m.flights, m.hotels, m.pois, m.cache, m.store,
				10*time.Minute, 5*time.Second)

			got, err := s.PlanTrip(context.Background(), req)

			if wantErr != nil {
				assert.Error(t, err)
				if !errors.Is(err, wantErr) && err.Error() != wantErr.Error() {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			assert.NoError(t, err)
			check(t, got)
		}
	}

	budget := 3000.0
	req := dto.TripRequest{
		Destination: "Los Angeles",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-06",
		Budget:      &budget,
		Currency:    dto.CurrencyUSD,
		Travelers:   2,
	}

	tier := "$"
	bundle := trip.Bundle{
		Flights: []dto.Flight{
			{Airline: "Delta Airlines", FlightNumber: "DL1234", Price: 350,
				DepartureTime: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC), DurationMinutes: 210},
		},
		Hotels: []dto.Hotel{
			{Name: "Comfort Inn Downtown", Rating: 3.8, PricePerNight: 120},
		},
		POIs: []dto.PointOfInterest{
			{Name: "Local Food Market", Category: dto.ActivityFood, PriceRange: &tier},
		},
	}

	t.Run("cache_hit", planTripRequest(
		req,
		func(m mockField) {
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetCandidates", mock.Anything, "cache-key").Return(bundle, nil)
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{
				ProvidersQueried:   3,
				ProvidersSucceeded: 3,
			}, nil)
			m.store.On("Save", mock.Anything).Return("/tmp/itinerary.json", nil)
		},
		func(t *testing.T, got dto.PlanTripResponse) {
			assert.Equal(t, "PlannerAgent", got.Agent)
			assert.True(t, got.Success)
			assert.True(t, got.Metadata.CacheHit)
			assert.True(t, got.Validation.Valid)
			assert.Equal(t, 5, got.Data.TotalDays)
			assert.Len(t, got.Data.DailySchedules, 5)
			assert.Equal(t, "DL1234", got.Data.OutboundFlight.FlightNumber)
			// 350 outbound + 350 return + 120*5 lodging + 5 days of $20 food
			assert.InDelta(t, 1400.0, got.EstimatedCost, 0.001)
			assert.Equal(t, "$1,400.00", got.Summary.TotalCost)
		},
		nil,
	))

	t.Run("cache_miss_searches_providers", planTripRequest(
		req,
		func(m mockField) {
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetCandidates", mock.Anything, "cache-key").Return(trip.Bundle{}, errors.New("miss"))
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, errors.New("miss"))
			m.flights.On("Search", mock.Anything, req).Return(bundle.Flights, nil)
			m.hotels.On("Search", mock.Anything, req).Return(bundle.Hotels, nil)
			m.pois.On("Search", mock.Anything, req).Return(bundle.POIs, nil)
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
			m.cache.On("SetCandidates", mock.Anything, "cache-key", bundle, mock.Anything, 10*time.Minute).Return(nil)
			m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
			m.store.On("Save", mock.Anything).Return("/tmp/itinerary.json", nil)
		},
		func(t *testing.T, got dto.PlanTripResponse) {
			assert.True(t, got.Success)
			assert.False(t, got.Metadata.CacheHit)
			assert.Equal(t, 3, got.Metadata.ProvidersQueried)
			assert.Equal(t, 3, got.Metadata.ProvidersSucceeded)
			assert.True(t, got.Validation.Valid)
		},
		nil,
	))

	t.Run("provider_failure_degrades", planTripRequest(
		req,
		func(m mockField) {
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetCandidates", mock.Anything, "cache-key").Return(trip.Bundle{}, errors.New("miss"))
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, errors.New("miss"))
			m.flights.On("Search", mock.Anything, req).Return(nil, errors.New("provider down"))
			m.hotels.On("Search", mock.Anything, req).Return(nil, errors.New("provider down"))
			m.pois.On("Search", mock.Anything, req).Return(bundle.POIs, nil)
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
			m.cache.On("SetCandidates", mock.Anything, "cache-key", mock.Anything, mock.Anything, 10*time.Minute).Return(nil)
			m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
			m.store.On("Save", mock.Anything).Return("/tmp/itinerary.json", nil)
		},
		func(t *testing.T, got dto.PlanTripResponse) {
			assert.True(t, got.Success)
			assert.Equal(t, 2, got.Metadata.ProvidersFailed)
			assert.Nil(t, got.Data.OutboundFlight)
			assert.False(t, got.Validation.Valid)
		},
		nil,
	))

	t.Run("lock_not_acquired_skips_cache_write", planTripRequest(
		req,
		func(m mockField) {
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetCandidates", mock.Anything, "cache-key").Return(trip.Bundle{}, errors.New("miss"))
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, errors.New("miss"))
			m.flights.On("Search", mock.Anything, req).Return(bundle.Flights, nil)
			m.hotels.On("Search", mock.Anything, req).Return(bundle.Hotels, nil)
			m.pois.On("Search", mock.Anything, req).Return(bundle.POIs, nil)
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(false, nil)
			m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
			m.store.On("Save", mock.Anything).Return("/tmp/itinerary.json", nil)
		},
		func(t *testing.T, got dto.PlanTripResponse) {
			assert.True(t, got.Success)
		},
		nil,
	))

	t.Run("store_failure_is_tolerated", planTripRequest(
		req,
		func(m mockField) {
			m.cache.On("GetCacheKey", req).Return("cache-key")
			m.cache.On("GetLockKey", req).Return("lock-key")
			m.cache.On("GetCandidates", mock.Anything, "cache-key").Return(bundle, nil)
			m.cache.On("GetMetadata", mock.Anything, "cache-key").Return(dto.Metadata{}, nil)
			m.store.On("Save", mock.Anything).Return("", errors.New("disk full"))
		},
		func(t *testing.T, got dto.PlanTripResponse) {
			assert.True(t, got.Success)
			assert.NotNil(t, got.Data)
		},
		nil,
	))

	t.Run("invalid_date_range", planTripRequest(
		dto.TripRequest{
			Destination: "Los Angeles",
			StartDate:   "2026-06-06",
			EndDate:     "2026-06-01",
			Travelers:   2,
		},
		func(_ mockField) {},
		nil,
		ErrInvalidTripRequest,
	))
}
