package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/api"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/database"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/middleware"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/service"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/store"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過令牌取得當前使用者詳細資訊
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserEnvelope
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /me [get]
func MeHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.SessionClaims)
		if !ok || claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			// 使用者被刪除後殘留的會話視同未認證，順手撤銷
			if store.IsNotFound(err) {
				_ = revokeSessionToken(c.Request().Context(), rdb, claims)
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.UserEnvelope{User: api.NewUserResponse(user)})
	}
}
