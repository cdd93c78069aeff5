package organization

import (
	"errors"

	organizationerrors "hrms/internal/organization/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage faults into caller-facing errors.
// A unique violation on the slug index means a concurrent create won the
// race between our existence check and the insert.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.ErrOrganizationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return organizationerrors.ErrSlugAlreadyExists
	}

	return err
}
