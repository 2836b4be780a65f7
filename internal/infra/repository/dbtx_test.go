//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mockDBTX is only passed through; the sqlc mocks do the work.
type mockDBTX struct{}

func (m *mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
