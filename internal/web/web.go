package web

import (
	"embed"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// Register 掛載內嵌的單頁前端，路由切換由前端的 hash router 處理
func Register(e *echo.Echo) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	e.StaticFS("/", sub)
}
