package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/database"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/router"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/web"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/worker"

	_ "github.com/afiqbaharuddin/lemoncode-user-management/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	seedFn          = database.Seed
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	// .env 不存在時沿用既有環境變數
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = idx
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %s", v)
		}
		workerCount = n
	}

	addr := ":8080"
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		addr = v
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	// 預設管理者帳號交給背景 worker 建立，不擋啟動流程
	if os.Getenv("SEED_DATABASE") == "true" {
		wp.Submit(func() {
			if err := seedFn(context.Background(), db); err != nil {
				log.Printf("Seed 執行失敗: %v", err)
			}
		})
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb)
	web.Register(e)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return startServer(e, addr)
}
