package service

import (
	"net/http"

	"github.com/tripsmith/trip-planner-service/internal/pkg/exception"
)

var ErrInvalidTripRequest = exception.ApplicationError{
	Message:    "invalid trip request",
	StatusCode: http.StatusBadRequest,
}
