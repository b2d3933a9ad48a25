package candidate

import (
	"net/http"

	"github.com/tripsmith/trip-planner-service/internal/pkg/exception"
)

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}
