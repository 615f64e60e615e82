package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
)

func TestNewUserResponse(t *testing.T) {
	phone := "+60123456789"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := &model.User{
		ID:           5,
		Name:         "Jane Doe",
		Firstname:    "Jane",
		Lastname:     "Doe",
		Email:        "jane@example.com",
		Phone:        &phone,
		PasswordHash: "super-secret-hash",
		Status:       model.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	resp := NewUserResponse(u)
	require.Equal(t, 5, resp.ID)
	require.Equal(t, "Jane Doe", resp.Name)
	require.Equal(t, &phone, resp.Phone)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "super-secret-hash")
	require.Contains(t, string(raw), `"email":"jane@example.com"`)
}

func TestNewUserResponseNilPhone(t *testing.T) {
	resp := NewUserResponse(&model.User{ID: 1})
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"phone":null`)
}
