package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperrors.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation}, apperrors.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrConflict},
		{"check violation", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "catalog_items_copies_check"}, apperrors.ErrValidation},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, apperrors.ErrInternal},
		{"plain error", errors.New("connection reset"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "catalog item", "save catalog item")
			assert.Error(t, got)
			if tt.want != nil && tt.want != apperrors.ErrInternal {
				assert.ErrorIs(t, got, tt.want)
				return
			}
			var appErr *apperrors.AppError
			assert.True(t, errors.As(got, &appErr))
			assert.Equal(t, 500, appErr.Code)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, translateError(nil, "x", "y"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
