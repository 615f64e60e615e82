package router

import (
	"github.com/labstack/echo/v4"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/database"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/handler"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/handler/auth"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/handler/users"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(rdb)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 認證
	api.POST("/login", auth.LoginHandler(db, rdb))
	api.POST("/logout", auth.LogoutHandler(rdb), requireAuth)
	api.GET("/me", auth.MeHandler(db, rdb), requireAuth)

	// Users CRUD，全部需要有效令牌
	apiUsers := api.Group("/users", requireAuth)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))
}
