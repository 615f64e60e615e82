package users

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/api"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/database"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/model"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/service"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/store"
)

var (
	hashPassword       = service.HashPassword
	validateStruct     = service.ValidateStruct
	listUsers          = store.ListUsers
	countUsers         = store.CountUsers
	emailTaken         = store.EmailTaken
	createUser         = store.CreateUser
	getUserByID        = store.GetUserByID
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser         = store.DeleteUser
)

const (
	defaultPerPage = 10

	emailTakenMessage = "The email has already been taken."
)

func emailTakenResponse(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, api.NewValidationErrorResponse(
		map[string][]string{"email": {emailTakenMessage}},
	))
}

// fullName 顯示名稱固定為 "firstname lastname"，建立與更新時重算
func fullName(firstname, lastname string) string {
	return firstname + " " + lastname
}

func optionalPhone(phone string) *string {
	if phone == "" {
		return nil
	}
	return &phone
}

// ListUsersHandler 分頁列出使用者
// @Summary     List users
// @Description 依建立時間新到舊分頁列出使用者，search 對姓名、Email、電話做不分大小寫子字串比對
// @Tags        users
// @Produce     json
// @Param       search   query string false "搜尋關鍵字"
// @Param       page     query int    false "頁碼 (1 起算)"
// @Param       per_page query int    false "每頁筆數 (預設 10)"
// @Success     200 {object} api.UsersResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		search := c.QueryParam("search")
		page, _ := strconv.Atoi(c.QueryParam("page"))
		if page < 1 {
			page = 1
		}
		perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
		if perPage < 1 {
			perPage = defaultPerPage
		}

		total, err := countUsers(c.Request().Context(), db, search)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		lastPage := (total + perPage - 1) / perPage
		if lastPage < 1 {
			lastPage = 1
		}

		found, err := listUsers(c.Request().Context(), db, search, perPage, (page-1)*perPage)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		data := make([]api.UserResponse, 0, len(found))
		for i := range found {
			data = append(data, api.NewUserResponse(&found[i]))
		}
		return c.JSON(http.StatusOK, api.UsersResponse{
			Data:        data,
			CurrentPage: page,
			PerPage:     perPage,
			Total:       total,
			LastPage:    lastPage,
		})
	}
}

// CreateUserHandler 建立新使用者
// @Summary     Create a new user
// @Description 驗證欄位並建立新帳號，email 必須唯一
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.UserMessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     422 {object} api.ValidationErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}

		errs := validateStruct(&req)
		req.Email = strings.ToLower(req.Email)
		if _, bad := errs["email"]; !bad {
			taken, err := emailTaken(c.Request().Context(), db, req.Email, 0)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			if taken {
				if errs == nil {
					errs = map[string][]string{}
				}
				errs["email"] = append(errs["email"], emailTakenMessage)
			}
		}
		if len(errs) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, api.NewValidationErrorResponse(errs))
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         fullName(req.Firstname, req.Lastname),
			Firstname:    req.Firstname,
			Lastname:     req.Lastname,
			Email:        req.Email,
			Phone:        optionalPhone(req.Phone),
			PasswordHash: hash,
			Status:       req.Status,
		})
		if err != nil {
			// 兩個並發相同 email 的建立由唯一約束仲裁
			if store.IsUniqueViolation(err) {
				return emailTakenResponse(c)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.UserMessageResponse{
			Message: "User created successfully",
			User:    api.NewUserResponse(user),
		})
	}
}

// GetUserHandler 取得指定使用者
// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者詳細資料
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.UserEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.UserEnvelope{User: api.NewUserResponse(user)})
	}
}

// UpdateUserHandler 更新指定使用者
// @Summary     Update a user by ID
// @Description 更新姓名、Email、電話與狀態；password 留空時保留原密碼
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "使用者 ID"
// @Param       payload body api.UpdateUserRequest true "使用者資料"
// @Success     200 {object} api.UserMessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ValidationErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}

		if _, err := getUserByID(c.Request().Context(), db, id); err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		errs := validateStruct(&req)
		req.Email = strings.ToLower(req.Email)
		if _, bad := errs["email"]; !bad {
			// 唯一性檢查排除自己，沿用目前 email 不算衝突
			taken, err := emailTaken(c.Request().Context(), db, req.Email, id)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
			if taken {
				if errs == nil {
					errs = map[string][]string{}
				}
				errs["email"] = append(errs["email"], emailTakenMessage)
			}
		}
		if len(errs) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, api.NewValidationErrorResponse(errs))
		}

		// 先算好雜湊再動資料庫，雜湊失敗時不能留下改了一半的欄位
		hash := ""
		if req.Password != "" {
			h, err := hashPassword(req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			hash = h
		}

		if err := updateUser(c.Request().Context(), db, &model.User{
			ID:        id,
			Name:      fullName(req.Firstname, req.Lastname),
			Firstname: req.Firstname,
			Lastname:  req.Lastname,
			Email:     req.Email,
			Phone:     optionalPhone(req.Phone),
			Status:    req.Status,
		}); err != nil {
			if store.IsUniqueViolation(err) {
				return emailTakenResponse(c)
			}
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// password 留空時不碰既有雜湊
		if hash != "" {
			if err := updateUserPassword(c.Request().Context(), db, id, hash); err != nil {
				if store.IsNotFound(err) {
					return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.UserMessageResponse{
			Message: "User updated successfully",
			User:    api.NewUserResponse(user),
		})
	}
}

// DeleteUserHandler 刪除指定使用者（硬刪除，無法復原）
// @Summary     Delete a user by ID
// @Description 永久刪除使用者帳號
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted successfully"})
	}
}
