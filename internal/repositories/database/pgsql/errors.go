package pgsql

import (
	"errors"
	"net/http"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps driver errors onto application sentinels. resource
// names the entity for caller-facing messages; op describes the failed step.
func translateError(err error, resource, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(resource)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError(resource + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewConflictError(resource + " is referenced by other records")
		case pgCheckViolation:
			return apperrors.NewValidationError(resource + " violates constraint " + pgErr.ConstraintName)
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to "+op, err)
}
