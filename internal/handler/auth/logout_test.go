package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/middleware"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/service"
)

func TestLogoutHandler(t *testing.T) {
	t.Cleanup(restore)
	claims := &service.SessionClaims{UserID: 5, SessionID: "sid-1"}

	t.Run("missing claims", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodPost, "")
		h := LogoutHandler(&cache.FakeCache{})
		require.NoError(t, h(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoke error", func(t *testing.T) {
		restore()
		revokeSessionToken = func(_ context.Context, _ cache.Cache, _ *service.SessionClaims) error {
			return errors.New("redis down")
		}
		c, rec := newJSONContext(http.MethodPost, "")
		c.Set(middleware.ContextUserKey, claims)
		h := LogoutHandler(&cache.FakeCache{})
		require.NoError(t, h(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		restore()
		var revoked *service.SessionClaims
		revokeSessionToken = func(_ context.Context, _ cache.Cache, claims *service.SessionClaims) error {
			revoked = claims
			return nil
		}
		c, rec := newJSONContext(http.MethodPost, "")
		c.Set(middleware.ContextUserKey, claims)
		h := LogoutHandler(&cache.FakeCache{})
		require.NoError(t, h(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Logged out successfully")
		require.Equal(t, claims, revoked)
	})
}
