package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PgErrorCode devuelve el SQLSTATE si err proviene de PostgreSQL, o "".
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// queryError envuelve err con la operación, la tabla y el SQLSTATE cuando existe
// (23505 unique_violation, 23503 foreign_key_violation, 22P02 texto inválido...).
func queryError(op, table string, err error) error {
	if code := PgErrorCode(err); code != "" {
		return fmt.Errorf("%s %s [%s]: %w", op, table, code, err)
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}
