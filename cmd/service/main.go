// @title        Lemoncode User Management API
// @version      1.0
// @description  Lemoncode 使用者管理主控台的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import "log"

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
