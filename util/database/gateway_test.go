package database

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func dialErr() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
}

func TestRun_RetriesConnectionFailureOnce(t *testing.T) {
	g := NewGateway(nil, time.Second)

	calls := 0
	err := g.run(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return dialErr()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d; want 2", calls)
	}
}

func TestRun_SecondConnectionFailureIsStoreUnavailable(t *testing.T) {
	g := NewGateway(nil, time.Second)

	calls := 0
	err := g.run(context.Background(), func(ctx context.Context) error {
		calls++
		return dialErr()
	})
	if calls != 2 {
		t.Fatalf("calls = %d; want 2", calls)
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v; want ErrStoreUnavailable", err)
	}
}

func TestRun_StatementErrorNeverRetried(t *testing.T) {
	g := NewGateway(nil, time.Second)

	stmtErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	calls := 0
	err := g.run(context.Background(), func(ctx context.Context) error {
		calls++
		return stmtErr
	})
	if calls != 1 {
		t.Fatalf("calls = %d; want 1", calls)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatalf("err = %v; want the statement error back", err)
	}
	if errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("statement error must not be masked as StoreUnavailable")
	}
}

func TestRun_CanceledContextStopsRetrying(t *testing.T) {
	g := NewGateway(nil, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := g.run(ctx, func(ctx context.Context) error {
		calls++
		return dialErr()
	})
	if calls != 0 {
		t.Fatalf("calls = %d; want 0", calls)
	}
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("err = %v; want ErrStoreUnavailable", err)
	}
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		connFail   bool
		stmt       bool
		constraint bool
	}{
		{"dial error", dialErr(), true, false, false},
		{"plain error", errors.New("something else"), false, false, false},
		{"deadline", context.DeadlineExceeded, true, false, false},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, false, true, true},
		{"fk violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, false, true, true},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, false, true, false},
		{"nil", nil, false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsConnectionFailure(tc.err); got != tc.connFail {
				t.Errorf("IsConnectionFailure = %v; want %v", got, tc.connFail)
			}
			if got := IsStatementError(tc.err); got != tc.stmt {
				t.Errorf("IsStatementError = %v; want %v", got, tc.stmt)
			}
			if got := IsConstraintViolation(tc.err); got != tc.constraint {
				t.Errorf("IsConstraintViolation = %v; want %v", got, tc.constraint)
			}
		})
	}
}

func TestUniqueAndFKHelpers(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}) {
		t.Error("unique violation not detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}) {
		t.Error("fk violation misreported as unique")
	}
	if !IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}) {
		t.Error("fk violation not detected")
	}
}
