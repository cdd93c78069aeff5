package subscription

import (
	"errors"

	subscriptionerrors "hrms/internal/subscription/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates the one-subscription-per-organization unique
// violation raced past the in-transaction check into a Conflict.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_subscription_organization" {
			return subscriptionerrors.ErrAlreadySubscribed
		}
	}
	return err
}
