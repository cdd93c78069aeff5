package employee

import (
	"errors"

	employeeerrors "hrms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_employee_org_code" {
			return employeeerrors.ErrEmployeeCodeExists
		}
	}
	return err
}
