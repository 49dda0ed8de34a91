package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"employee-tracker/internal/apperror"
)

// classify maps driver errors onto apperror codes.
func classify(msg string, err error) error {
	if err == nil {
		return nil
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return apperror.Wrap(apperror.CodeConflict, msg, err)
		case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintNotNull:
			return apperror.Wrap(apperror.CodeValidation, msg, err)
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.Wrap(apperror.CodeConflict, msg, err)
		case "23503", "23502", "22001", "22003":
			return apperror.Wrap(apperror.CodeValidation, msg, err)
		}
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperror.Wrap(apperror.CodeNotFound, msg, err)
	}
	return apperror.Wrap(apperror.CodeInternal, msg, err)
}
