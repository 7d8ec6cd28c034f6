package remote

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the remote platform. Expected
// failures (bad credentials, duplicate email) arrive as values, never
// panics, so they can cross the adapter boundary safely.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote store: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("remote store: status %d", e.Status)
}

// apiErrorBody covers the error shapes the platform returns: PostgREST
// uses {code,message}, the auth service uses {error,error_description}
// or {msg}.
type apiErrorBody struct {
	Code             string `json:"code"`
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func parseAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status}

	var body apiErrorBody
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Code = body.Code
		switch {
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Msg != "":
			apiErr.Message = body.Msg
		case body.ErrorDescription != "":
			apiErr.Message = body.ErrorDescription
		case body.ErrorField != "":
			apiErr.Message = body.ErrorField
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(data))
	}

	return apiErr
}

// ClassifyAuthError maps a raw auth service failure onto the
// human-readable message shown on the sign-in and sign-up forms.
func ClassifyAuthError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "already registered"):
		return "This email is already registered. Please sign in instead."
	case strings.Contains(lower, "password"):
		return "Password must be at least 6 characters long."
	case strings.Contains(lower, "invalid login credentials"):
		return "Invalid email or password."
	case strings.Contains(lower, "email"):
		return "Please enter a valid email address."
	default:
		if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
			return apiErr.Message
		}
		return "Authentication failed. Please try again."
	}
}
