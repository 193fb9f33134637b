package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable verifica si un error es "tabla inexistente" (42P01).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" // undefined_table
	}
	return false
}

// wrap agrega operación y clave; sugiere EnsureSchema si falta la tabla.
func wrap(op, key string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("kv %s %q: tabla kv_store inexistente (ejecutar EnsureSchema): %w", op, key, err)
	}
	return fmt.Errorf("kv %s %q: %w", op, key, err)
}
