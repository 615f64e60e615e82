package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/afiqbaharuddin/lemoncode-user-management/internal/cache"
	internaldb "github.com/afiqbaharuddin/lemoncode-user-management/internal/database"
	"github.com/afiqbaharuddin/lemoncode-user-management/internal/worker"
)

func restore() {
	newPgxPool = internaldb.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = internaldb.RunMigrations
	seedFn = internaldb.Seed
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = os.Exit
}

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("WORKER_COUNT", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("SEED_DATABASE", "")
}

func stubHappyPath(t *testing.T) {
	t.Helper()
	newPgxPool = func(_ context.Context, _ string) (internaldb.DB, error) {
		return &internaldb.FakeDB{}, nil
	}
	newRedisClient = func(_ string, _ string, _ int) (cache.Cache, error) {
		return &cache.FakeCache{}, nil
	}
	runMigrationsFn = func(_ string) error { return nil }
	startServer = func(_ *echo.Echo, _ string) error { return nil }
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restore)
	setBaseEnv(t)
	stubHappyPath(t)

	var gotAddr string
	startServer = func(_ *echo.Echo, addr string) error {
		gotAddr = addr
		return nil
	}
	require.NoError(t, run())
	require.Equal(t, ":8080", gotAddr)
}

func TestRunCustomListenAddr(t *testing.T) {
	t.Cleanup(restore)
	setBaseEnv(t)
	stubHappyPath(t)
	t.Setenv("LISTEN_ADDR", ":9090")

	var gotAddr string
	startServer = func(_ *echo.Echo, addr string) error {
		gotAddr = addr
		return nil
	}
	require.NoError(t, run())
	require.Equal(t, ":9090", gotAddr)
}

func TestRunSeedsDatabase(t *testing.T) {
	t.Cleanup(restore)
	setBaseEnv(t)
	stubHappyPath(t)
	t.Setenv("SEED_DATABASE", "true")
	t.Setenv("WORKER_COUNT", "2")

	seeded := make(chan struct{})
	seedFn = func(_ context.Context, _ internaldb.DB) error {
		close(seeded)
		return nil
	}
	require.NoError(t, run())
	// run() 結束前 wp.Stop() 會等 seed 完成
	select {
	case <-seeded:
	default:
		t.Fatal("seed job was not executed")
	}
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restore)

	t.Run("missing DATABASE_URL", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		t.Setenv("DATABASE_URL", "")
		require.Error(t, run())
	})

	t.Run("missing REDIS_ADDR", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		t.Setenv("REDIS_ADDR", "")
		require.Error(t, run())
	})

	t.Run("invalid REDIS_DB", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		t.Setenv("REDIS_DB", "abc")
		require.Error(t, run())
	})

	t.Run("invalid WORKER_COUNT", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		t.Setenv("WORKER_COUNT", "0")
		require.Error(t, run())
	})

	t.Run("database connect error", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		stubHappyPath(t)
		newPgxPool = func(_ context.Context, _ string) (internaldb.DB, error) {
			return nil, errors.New("connect failed")
		}
		require.Error(t, run())
	})

	t.Run("redis connect error", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		stubHappyPath(t)
		newRedisClient = func(_ string, _ string, _ int) (cache.Cache, error) {
			return nil, errors.New("connect failed")
		}
		require.Error(t, run())
	})

	t.Run("migration error", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		stubHappyPath(t)
		runMigrationsFn = func(_ string) error {
			return errors.New("migration failed")
		}
		require.Error(t, run())
	})

	t.Run("server error", func(t *testing.T) {
		restore()
		setBaseEnv(t)
		stubHappyPath(t)
		startServer = func(_ *echo.Echo, _ string) error {
			return errors.New("listen failed")
		}
		require.Error(t, run())
	})
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restore)
	setBaseEnv(t)
	stubHappyPath(t)

	exitFunc = func(_ int) {
		t.Fatal("exitFunc should not be called on success")
	}
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restore)
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")

	var code int
	exitFunc = func(c int) { code = c }
	main()
	require.Equal(t, 1, code)
}
