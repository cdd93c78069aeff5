package department

import (
	"errors"

	departmenterrors "hrms/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_department_org_code" {
			return departmenterrors.ErrCodeAlreadyExists
		}
	}
	return err
}
