package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/utils"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

// ErrConnectivity is wrapped by every ConnectivityError
var ErrConnectivity = apperrors.ErrConnectivity

// APIError is a non-2xx response from the backend.
type APIError struct {
	Scope  scope.Scope
	Method string
	Path   string
	Status int
	Detail string // server-provided message, may be empty
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// Unauthorized reports whether the backend rejected the credential.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// ConnectivityError is a request that never got an HTTP response.
type ConnectivityError struct {
	Scope  scope.Scope
	Method string
	Path   string
	Err    error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Path, ErrConnectivity, e.Err)
}

func (e *ConnectivityError) Unwrap() []error {
	return []error{ErrConnectivity, e.Err}
}

// IsUnauthorized reports whether err carries a 401 or 403 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// errorBody covers the error shapes the backend emits: FastAPI's detail
// (a string, or a list of validation entries) and a plain message.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type validationEntry struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if len(eb.Detail) > 0 {
		var s string
		if err := json.Unmarshal(eb.Detail, &s); err == nil {
			return s
		}
		var entries []validationEntry
		if err := json.Unmarshal(eb.Detail, &entries); err == nil && len(entries) > 0 {
			return describeValidation(entries[0])
		}
	}
	return eb.Message
}

func describeValidation(v validationEntry) string {
	var field []string
	for _, part := range utils.ToStringSlice(v.Loc) {
		if part != "body" {
			field = append(field, part)
		}
	}
	if len(field) == 0 {
		return v.Msg
	}
	return strings.Join(field, ".") + ": " + v.Msg
}
