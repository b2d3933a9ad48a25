package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tripsmith/trip-planner-service/internal/app/dto"
	"github.com/tripsmith/trip-planner-service/internal/pkg/trip"
)

const plannerName = "PlannerAgent"

type FlightSearcher interface {
	Search(ctx context.Context, req dto.TripRequest) ([]dto.Flight, error)
}

type HotelSearcher interface {
	Search(ctx context.Context, req dto.TripRequest) ([]dto.Hotel, error)
}

type POISearcher interface {
	Search(ctx context.Context, req dto.TripRequest) ([]dto.PointOfInterest, error)
}

type TripCacher interface {
	GetLockKey(req dto.TripRequest) string
	GetCacheKey(req dto.TripRequest) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetCandidates(ctx context.Context, key string) (trip.Bundle, error)
	GetMetadata(ctx context.Context, key string) (dto.Metadata, error)
	SetCandidates(ctx context.Context,
		key string,
		bundle trip.Bundle,
		metadata dto.Metadata,
		expiration time.Duration,
	) error
}

type ItineraryStore interface {
	Save(it dto.Itinerary) (string, error)
}

type searchOutcome struct {
	Provider string
	Error    error
}

type PlannerService struct {
	Flights         FlightSearcher
	Hotels          HotelSearcher
	POIs            POISearcher
	Cache           TripCacher
	Store           ItineraryStore
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewPlannerService(flights FlightSearcher, hotels HotelSearcher, pois POISearcher,
	cache TripCacher, store ItineraryStore,
	cacheExpiration time.Duration, lockTimeout time.Duration,
) *PlannerService {
	return &PlannerService{
		Flights:         flights,
		Hotels:          hotels,
		POIs:            pois,
		Cache:           cache,
		Store:           store,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// PlanTrip runs the full pipeline: candidate search (cached), composition,
// cost estimate, advisory validation, summary and artifact persistence.
// PlanTrip godoc
// @Summary      Plan a trip
// @Tags         Trips
// @Description  Build a complete itinerary for the given destination and dates
// @Param        request  body      dto.TripRequest  true  "Trip Request"
// @Success      200      {object}  dto.PlanTripResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/trips/plan [post]
func (s *PlannerService) PlanTrip(ctx context.Context, req dto.TripRequest) (dto.PlanTripResponse, error) {
	if req.TotalDays() < 1 {
		return dto.PlanTripResponse{}, ErrInvalidTripRequest
	}

	startTime := time.Now()
	cacheHit := false

	cacheKey := s.Cache.GetCacheKey(req)
	lockKey := s.Cache.GetLockKey(req)

	bundle, err := s.Cache.GetCandidates(ctx, cacheKey)
	if err == nil {
		cacheHit = true
	} else {
		slog.WarnContext(ctx, "failed to get candidates from cache", slog.String("error", err.Error()))
	}

	metadata, err := s.Cache.GetMetadata(ctx, cacheKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to get metadata from cache", slog.String("error", err.Error()))
	}

	if !cacheHit {
		// Concurrent identical requests race for the lock; only the winner
		// writes the candidate bundle, the rest still answer from their own
		// provider results.
		var queried, failed int
		bundle, queried, failed = s.searchCandidates(ctx, req)

		metadata = dto.Metadata{
			ProvidersQueried:   queried,
			ProvidersSucceeded: queried - failed,
			ProvidersFailed:    failed,
		}

		acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
		if err != nil {
			return dto.PlanTripResponse{}, fmt.Errorf("failed to acquire lock: %w", err)
		}
		defer s.Cache.ReleaseLock(ctx, lockKey)

		if acquired {
			err = s.Cache.SetCandidates(ctx, cacheKey, bundle, metadata, s.CacheExpiration)
			if err != nil {
				return dto.PlanTripResponse{}, fmt.Errorf("failed to set candidates to cache: %w", err)
			}
		}
	}

	itinerary := trip.Compose(req, bundle.Flights, bundle.Hotels, bundle.POIs)
	cost := trip.EstimatedCost(itinerary)

	validation := dto.ValidationReport{Valid: true}
	if err := trip.Validate(itinerary); err != nil {
		slog.WarnContext(ctx, "itinerary validation failed", slog.String("reason", err.Error()))
		validation = dto.ValidationReport{Valid: false, Reason: err.Error()}
	}

	summary := trip.Summarize(itinerary)

	if path, err := s.Store.Save(itinerary); err != nil {
		slog.WarnContext(ctx, "failed to persist itinerary", slog.String("error", err.Error()))
	} else {
		slog.InfoContext(ctx, "itinerary persisted", slog.String("path", path))
	}

	metadata.SearchTimeMs = int(time.Since(startTime).Milliseconds())
	metadata.CacheHit = cacheHit

	return dto.PlanTripResponse{
		Agent:   plannerName,
		Success: true,
		Data:    &itinerary,
		Reasoning: fmt.Sprintf("Created complete itinerary for %s with flights, hotels, and activities",
			req.Destination),
		Timestamp:     time.Now(),
		EstimatedCost: cost,
		Validation:    validation,
		Summary:       &summary,
		Metadata:      metadata,
	}, nil
}

// searchCandidates fans out to the three providers concurrently. A failed
// provider contributes an empty list; composition degrades instead of the
// request failing.
func (s *PlannerService) searchCandidates(ctx context.Context,
	req dto.TripRequest,
) (trip.Bundle, int, int) {
	const numProviders = 3

	var bundle trip.Bundle

	outcomes := make(chan searchOutcome, numProviders)
	var wg sync.WaitGroup

	wg.Add(numProviders)

	go func() {
		defer wg.Done()
		flights, err := s.Flights.Search(ctx, req)
		bundle.Flights = flights
		outcomes <- searchOutcome{Provider: "flights", Error: err}
	}()

	go func() {
		defer wg.Done()
		hotels, err := s.Hotels.Search(ctx, req)
		bundle.Hotels = hotels
		outcomes <- searchOutcome{Provider: "hotels", Error: err}
	}()

	go func() {
		defer wg.Done()
		pois, err := s.POIs.Search(ctx, req)
		bundle.POIs = pois
		outcomes <- searchOutcome{Provider: "pois", Error: err}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	failed := 0
	for outcome := range outcomes {
		if outcome.Error != nil {
			slog.WarnContext(ctx, "provider failed",
				slog.String("provider", outcome.Provider),
				slog.Any("error", outcome.Error))
			failed++
		}
	}

	return bundle, numProviders, failed
}
