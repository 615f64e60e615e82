package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/api"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/database"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/service"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/store"
)

var (
	getUserByEmail     = store.GetUserByEmail
	getUserByID        = store.GetUserByID
	authenticateUser   = service.AuthenticateUser
	issueSessionToken  = service.IssueSessionToken
	revokeSessionToken = service.RevokeSessionToken
	validateStruct     = service.ValidateStruct
)

const (
	// 帳號停用時的固定訊息，前端直接顯示
	inactiveAccountMessage = "Your account is inactive. Please contact administrator."

	// 查無帳號與密碼錯誤共用同一訊息，不洩漏 email 是否存在
	invalidCredentialsMessage = "These credentials do not match our records."
)

func invalidCredentials(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, api.NewValidationErrorResponse(
		map[string][]string{"email": {invalidCredentialsMessage}},
	))
}

// LoginHandler 使用 Email/Password 驗證並簽發會話令牌
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       payload body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse "帳號已停用"
// @Failure     422 {object} api.ValidationErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if errs := validateStruct(&req); errs != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.NewValidationErrorResponse(errs))
		}

		req.Email = strings.ToLower(req.Email)

		// 先驗證憑證再看帳號狀態：停用帳號配錯誤密碼時一律回報憑證錯誤
		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return invalidCredentials(c)
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return invalidCredentials(c)
		}
		if user.Status == model.StatusInactive {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: inactiveAccountMessage})
		}

		token, err := issueSessionToken(c.Request().Context(), rdb, *user, service.SessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Message:     "Login successful",
			AccessToken: token,
			TokenType:   "Bearer",
			User:        api.NewUserResponse(user),
		})
	}
}
