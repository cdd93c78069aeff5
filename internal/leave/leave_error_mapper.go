package leave

import (
	"errors"

	leaveerrors "hrms/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_leave_type_org_name" {
			return leaveerrors.ErrLeaveTypeNameExists
		}
	}
	return err
}
