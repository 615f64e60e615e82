package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRow struct{}

func (fakeRow) Scan(_ ...any) error { return nil }

func TestFakeDB(t *testing.T) {
	ctx := context.Background()

	t.Run("configured functions are used", func(t *testing.T) {
		closed := false
		f := &FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, "DELETE FROM users WHERE id = $1", sql)
				require.Equal(t, []any{1}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query failed")
			},
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{}
			},
			PingFn: func(_ context.Context) error {
				return errors.New("ping failed")
			},
			CloseFn: func() { closed = true },
		}

		tag, err := f.Exec(ctx, "DELETE FROM users WHERE id = $1", 1)
		require.NoError(t, err)
		require.EqualValues(t, 1, tag.RowsAffected())

		_, err = f.Query(ctx, "SELECT 1")
		require.Error(t, err)

		require.NoError(t, f.QueryRow(ctx, "SELECT 1").Scan())
		require.Error(t, f.Ping(ctx))

		f.Close()
		require.True(t, closed)
	})

	t.Run("unset functions panic", func(t *testing.T) {
		f := &FakeDB{}
		require.Panics(t, func() { _, _ = f.Exec(ctx, "SELECT 1") })
		require.Panics(t, func() { _, _ = f.Query(ctx, "SELECT 1") })
		require.Panics(t, func() { f.QueryRow(ctx, "SELECT 1") })
		require.Panics(t, func() { _ = f.Ping(ctx) })
		require.NotPanics(t, func() { f.Close() })
	})
}
