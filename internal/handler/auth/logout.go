package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/api"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/middleware"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/service"
)

// LogoutHandler 刪除當前會話，令牌立即失效
// @Summary     登出使用者
// @Description 刪除 Redis 中的會話，使當前令牌立即失效
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.SessionClaims)
		if !ok || claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		if err := revokeSessionToken(c.Request().Context(), rdb, claims); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to revoke session"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}
