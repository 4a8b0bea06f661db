//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"car-rental/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "generic failure", err: errors.New("connection refused"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
		{name: "nil error with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(wrapped, tt.want), "got %v", wrapped)
			assert.True(t, infra.IsKind(fmt.Errorf("outer: %w", wrapped), tt.want))
		})
	}
}

func TestWrapRepoErr_KeepsCause(t *testing.T) {
	cause := errors.New("boom")
	wrapped := infra.WrapRepoErr("insert car", cause)

	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "insert car")
}
