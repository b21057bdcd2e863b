package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"

	"schemaconv/internal/errs"
)

// MySQL server error numbers.
// Full list: https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	errBadFieldError   = 1054
	errAccessDenied    = 1045
	errUnknownDatabase = 1049
	errConnRefused     = 2003
)

// mapError translates a MySQL driver error into a *errs.Error.
// It mirrors the mapError pattern used by the postgres driver.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return errs.Wrap(errs.ErrKindNotFound, msg, err)
	}

	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		kind := errs.ErrKindQueryFailed
		switch mysqlErr.Number {
		case errAccessDenied, errConnRefused, errUnknownDatabase:
			kind = errs.ErrKindConnectionFailed
		case errBadFieldError:
			kind = errs.ErrKindQueryFailed
		}
		return errs.Wrap(kind, fmt.Sprintf("%s: %s", msg, mysqlErr.Message), err)
	}

	// Fallthrough: network-level errors before the server could answer.
	return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
}
