package postgres_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/foldertasks/internal/platform/postgres"
	"github.com/phrazzld/foldertasks/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgError(code string) error {
	return &pgconn.PgError{
		Code:           code,
		Message:        "detail users_email_key (email)=(alice@example.com)",
		ConstraintName: "users_email_key",
		ColumnName:     "email",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no rows", err: sql.ErrNoRows, wantErr: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), wantErr: store.ErrDuplicate},
		{name: "foreign key violation", err: newPgError("23503"), wantErr: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), wantErr: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), wantErr: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := postgres.MapError(tt.err)

			assert.ErrorIs(t, result, tt.wantErr)

			var pgErr *pgconn.PgError
			assert.False(t, errors.As(result, &pgErr),
				"PostgreSQL error details should not be accessible in mapped error")
			assert.NotContains(t, result.Error(), "alice@example.com")
		})
	}
}

func TestMapError_PassThrough(t *testing.T) {
	t.Parallel()

	assert.Nil(t, postgres.MapError(nil))

	generic := errors.New("connection reset")
	assert.Equal(t, generic, postgres.MapError(generic))

	unknownCode := newPgError("42P01")
	assert.Equal(t, unknownCode, postgres.MapError(unknownCode))
}

func TestViolationHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23503")))
	assert.True(t, postgres.IsForeignKeyViolation(newPgError("23503")))
	assert.False(t, postgres.IsForeignKeyViolation(errors.New("plain")))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	require.NoError(t, postgres.CheckRowsAffected(fakeResult{rows: 1}, store.ErrTaskNotFound))

	err := postgres.CheckRowsAffected(fakeResult{rows: 0}, store.ErrTaskNotFound)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = postgres.CheckRowsAffected(fakeResult{rows: 0}, nil)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Error(t, postgres.CheckRowsAffected(nil, nil))
	assert.Error(t, postgres.CheckRowsAffected(fakeResult{err: errors.New("driver")}, nil))
}
