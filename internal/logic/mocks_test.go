package logic

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MockPgPool records every statement and its bound args. Safe for the
// concurrent sub-queries the peak summary issues.
type MockPgPool struct {
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row

	mu         sync.Mutex
	Statements []RecordedStatement
}

type RecordedStatement struct {
	SQL  string
	Args []any
}

func (m *MockPgPool) record(sql string, args []any) {
	m.mu.Lock()
	m.Statements = append(m.Statements, RecordedStatement{SQL: sql, Args: args})
	m.mu.Unlock()
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.record(sql, args)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockRows{}, nil
}

func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.record(sql, args)
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, sql, args...)
	}
	return &MockRow{}
}

func (m *MockPgPool) Ping(ctx context.Context) error { return nil }

// MockRows implements pgx.Rows over an in-memory result set.
type MockRows struct {
	Rows    [][]any
	ScanErr error

	idx int
}

func (m *MockRows) Close()                                       {}
func (m *MockRows) Err() error                                   { return nil }
func (m *MockRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (m *MockRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (m *MockRows) RawValues() [][]byte                          { return nil }
func (m *MockRows) Conn() *pgx.Conn                              { return nil }

func (m *MockRows) Next() bool {
	if m.idx >= len(m.Rows) {
		return false
	}
	m.idx++
	return true
}

func (m *MockRows) Scan(dest ...any) error {
	if m.ScanErr != nil {
		return m.ScanErr
	}
	row := m.Rows[m.idx-1]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(row), len(dest))
	}
	for i, v := range row {
		if err := assign(dest[i], v); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockRows) Values() ([]any, error) { return m.Rows[m.idx-1], nil }

// MockRow implements pgx.Row. A nil ScanFunc scans zero values.
type MockRow struct {
	ScanFunc func(dest ...any) error
}

func (m *MockRow) Scan(dest ...any) error {
	if m.ScanFunc != nil {
		return m.ScanFunc(dest...)
	}
	return nil
}

func assign(dest, val any) error {
	switch d := dest.(type) {
	case *int64:
		*d = val.(int64)
	case *int:
		*d = val.(int)
	case *float64:
		*d = val.(float64)
	case *string:
		*d = val.(string)
	case *time.Time:
		*d = val.(time.Time)
	default:
		return fmt.Errorf("assign: unsupported dest %T", dest)
	}
	return nil
}
