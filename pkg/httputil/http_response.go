package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/limbo/tendril/pkg/entity"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RateLimitErrorResponse is the 429 body. Message is meant to be shown to the user as is.
type RateLimitErrorResponse struct {
	ErrorResponse
	RateLimit entity.RateLimitInfo `json:"rate_limit"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteRateLimitResponse(w http.ResponseWriter, message string, info entity.RateLimitInfo) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	sonic.ConfigFastest.NewEncoder(w).Encode(RateLimitErrorResponse{
		ErrorResponse: ErrorResponse{
			Code:    http.StatusTooManyRequests,
			Message: message,
			Details: "rate limit exceeded",
		},
		RateLimit: info,
	})
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
