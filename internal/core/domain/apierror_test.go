package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "status code included",
			err:  &APIError{Kind: KindNotFound, StatusCode: 404},
			want: "catalog: not_found (status=404)",
		},
		{
			name: "wrapped cause included",
			err:  &APIError{Kind: KindNetworkFailure, Err: errors.New("connection refused")},
			want: "catalog: network_failure: connection refused",
		},
		{
			name: "kind only",
			err:  &APIError{Kind: KindTimeout},
			want: "catalog: timeout",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestAsAPIError(t *testing.T) {
	apiErr := &APIError{Kind: KindRateLimited, StatusCode: 429}
	wrapped := fmt.Errorf("search failed: %w", apiErr)

	got, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindRateLimited, got.Kind)

	_, ok = AsAPIError(errors.New("plain"))
	assert.False(t, ok)
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	apiErr := &APIError{Kind: KindNetworkFailure, Err: cause}

	require.ErrorIs(t, apiErr, cause)
}
