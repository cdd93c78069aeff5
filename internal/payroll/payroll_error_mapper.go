package payroll

import (
	"errors"

	payrollerrors "hrms/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_payroll_org_period" {
			return payrollerrors.ErrPayrollPeriodExists
		}
	}
	return err
}
