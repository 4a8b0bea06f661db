//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-rental/internal/infra/sqlc"
	"car-rental/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = f.commitErr == nil
	return f.commitErr
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

type fakePool struct {
	txs      []*fakeTx
	beginErr error
}

func (p *fakePool) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	tx := &fakeTx{}
	p.txs = append(p.txs, tx)
	return tx, nil
}

func (p *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (p *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func newTestUoW(pool *fakePool) *PostgresUoW {
	return &PostgresUoW{pool: pool, q: sqlc.New()}
}

func TestWithin_CommitsOnSuccess(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		assert.NotNil(t, tx.Cars())
		assert.NotNil(t, tx.Payments())
		assert.NotNil(t, tx.Rentals())
		assert.Same(t, tx.Cars(), tx.Cars())
		return nil
	})

	require.NoError(t, err)
	require.Len(t, pool.txs, 1)
	assert.True(t, pool.txs[0].committed)
	assert.False(t, pool.txs[0].rolledBack)
}

func TestWithin_RollsBackOnError(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	boom := errors.New("boom")

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	require.Len(t, pool.txs, 1)
	assert.True(t, pool.txs[0].rolledBack)
}

func TestWithin_RetriesSerializationFailure(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	calls := 0

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		calls++
		if calls < 2 {
			return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, pool.txs, 2)
	assert.True(t, pool.txs[0].rolledBack)
	assert.True(t, pool.txs[1].committed)
}

func TestWithin_StopsOnContextCancel(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithin_BeginFailure(t *testing.T) {
	pool := &fakePool{beginErr: errors.New("pool closed")}
	u := newTestUoW(pool)

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool closed")
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("x"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestNewTxBackOff(t *testing.T) {
	b := newTxBackOff()

	first := b.NextBackOff()
	assert.GreaterOrEqual(t, first, 80*time.Millisecond)
	assert.LessOrEqual(t, first, 120*time.Millisecond)

	second := b.NextBackOff()
	assert.GreaterOrEqual(t, second, 160*time.Millisecond)
	assert.LessOrEqual(t, second, 240*time.Millisecond)
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	calls := 0

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		calls++
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	require.ErrorIs(t, err, errMaxRetriesExceeded)
	assert.Equal(t, maxRetries+1, calls)
	for _, tx := range pool.txs {
		assert.True(t, tx.rolledBack)
	}
}
