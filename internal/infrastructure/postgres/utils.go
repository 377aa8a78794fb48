package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Energia-api/internal/domain"
)

// Códigos de error de PostgreSQL (clase 23: integrity constraint violation).
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// translateConstraint convierte violaciones de integridad en errores de
// dominio para que la capa HTTP las reporte con causa (duplicado, referencia
// colgante, campo requerido). Cualquier otro error pasa sin tocar.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrDuplicate
	case codeForeignKeyViolation:
		return domain.ErrForeignKey
	case codeNotNullViolation:
		return domain.ErrMissingField
	}
	return err
}
