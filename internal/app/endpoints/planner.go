package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/tripsmith/trip-planner-service/internal/app/dto"
)

type PlannerService interface {
	PlanTrip(ctx context.Context, req dto.TripRequest) (dto.PlanTripResponse, error)
}

type PlannerEndpoint struct {
	PlanTrip endpoint.Endpoint
}

func MakePlannerEndpoint(service PlannerService) PlannerEndpoint {
	return PlannerEndpoint{
		PlanTrip: makePlanTripEndpoint(service),
	}
}

func makePlanTripEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TripRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.PlanTrip(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return response, nil
	}
}
