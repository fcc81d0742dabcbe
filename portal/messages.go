package portal

import (
	"errors"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
)

const (
	MessageSessionExpired = "Your session has expired. Please log in again."
	MessageNetwork        = "Network error. Please try again."
	MessageGeneric        = "An error occurred. Please try again."
)

// UserMessage turns err into the text shown to the user. fallback replaces
// server errors that carry no detail; empty means MessageGeneric.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if fallback == "" {
		fallback = MessageGeneric
	}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if errors.Is(err, apperrors.ErrUnauthenticated) {
		return MessageSessionExpired
	}
	if errors.Is(err, apiclient.ErrConnectivity) {
		return MessageNetwork
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Detail != "":
			return apiErr.Detail
		case apiErr.Unauthorized():
			return MessageSessionExpired
		}
	}
	return fallback
}
