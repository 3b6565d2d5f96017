package mcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{taxonomy.ErrUserCancelled, "USER_CANCELLED"},
		{fmt.Errorf("resolving activity: %w", taxonomy.ErrAlreadyExists), "ACTIVITY_EXISTS"},
		{taxonomy.ErrInvalidName, "INVALID_NAME"},
		{timeline.ErrNoOngoingActivity, "NO_ONGOING_ACTIVITY"},
		{fmt.Errorf("%w: gone", timeline.ErrMalformedTimeline), "MALFORMED_TIMELINE"},
		{timeline.ErrInvalidInput, "INVALID_INPUT"},
	}
	for _, tc := range cases {
		apiErr := MapError(tc.err)
		require.NotNil(t, apiErr, tc.code)
		require.Equal(t, tc.code, apiErr.Code)
	}

	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(errors.New("disk full")))
}

func TestToolErrorKeepsUnknownErrors(t *testing.T) {
	raw := errors.New("disk full")
	require.Same(t, raw, toolError(raw))

	var apiErr *APIError
	require.ErrorAs(t, toolError(taxonomy.ErrUserCancelled), &apiErr)
	require.Contains(t, apiErr.Error(), "work/coding")
}
