package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation de PostgreSQL.
const codeUniqueViolation = "23505"

// isUniqueViolation indica si err proviene de un índice o constraint UNIQUE.
// Los repositorios lo traducen a los errores de duplicado del dominio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
