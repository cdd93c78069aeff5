package attendance

import (
	"errors"

	attendanceerrors "hrms/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_attendance_employee_date" {
			return attendanceerrors.ErrAlreadyClockedIn
		}
	}
	return err
}
