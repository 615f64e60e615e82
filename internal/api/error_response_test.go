package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidationErrorResponse(t *testing.T) {
	t.Run("message takes first field error", func(t *testing.T) {
		resp := NewValidationErrorResponse(map[string][]string{
			"email": {"The email has already been taken."},
		})
		require.Equal(t, "The email has already been taken.", resp.Message)
		require.Equal(t, []string{"The email has already been taken."}, resp.Errors["email"])
	})

	t.Run("empty errors keep default message", func(t *testing.T) {
		resp := NewValidationErrorResponse(map[string][]string{})
		require.Equal(t, "The given data was invalid.", resp.Message)
	})

	t.Run("serializes errors by field", func(t *testing.T) {
		resp := NewValidationErrorResponse(map[string][]string{
			"password": {"The password field is required."},
		})
		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"message": "The password field is required.",
			"errors": {"password": ["The password field is required."]}
		}`, string(raw))
	})
}
