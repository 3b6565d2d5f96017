package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
)

// APIError is a tool error with a stable code.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, taxonomy.ErrUserCancelled):
		return &APIError{Code: "USER_CANCELLED", Message: "activity does not exist and was not created", RecoveryHint: "Pass an explicit path such as work/coding to create it"}
	case errors.Is(err, taxonomy.ErrAlreadyExists):
		return &APIError{Code: "ACTIVITY_EXISTS", Message: "activity path already exists", RecoveryHint: "Start it by its name alone"}
	case errors.Is(err, taxonomy.ErrInvalidName):
		return &APIError{Code: "INVALID_NAME", Message: "activity name or path segment is empty", RecoveryHint: "Use names like coding or work/coding"}
	case errors.Is(err, timeline.ErrNoOngoingActivity):
		return &APIError{Code: "NO_ONGOING_ACTIVITY", Message: "no ongoing activity to finish", RecoveryHint: "Call start_activity first"}
	case errors.Is(err, timeline.ErrMalformedTimeline):
		return &APIError{Code: "MALFORMED_TIMELINE", Message: err.Error()}
	case errors.Is(err, timeline.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "activity is required"}
	default:
		return nil
	}
}

func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
