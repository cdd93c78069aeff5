package subscriptionerrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrAlreadySubscribed = apperror.New(
		apperror.CodeConflict,
		"organization already has an active subscription",
		http.StatusConflict,
	)
	ErrSubscriptionNotFound = apperror.New(
		apperror.CodeNotFound,
		"no subscription found for this organization",
		http.StatusNotFound,
	)
	ErrInvalidBillingCycle = apperror.New(
		apperror.CodeInvalidInput,
		"billing cycle must be MONTHLY or YEARLY",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid subscription status",
		http.StatusBadRequest,
	)
	ErrNoOrganization = apperror.New(
		apperror.CodeForbidden,
		"user is not associated with any organization",
		http.StatusForbidden,
	)
	ErrNoActiveSubscription = apperror.New(
		apperror.CodeForbidden,
		"organization does not have an active subscription",
		http.StatusForbidden,
	)
	ErrSubscriptionInactive = apperror.New(
		apperror.CodeForbidden,
		"organization subscription is not active, please renew your subscription",
		http.StatusForbidden,
	)
	ErrTrialExpired = apperror.New(
		apperror.CodeForbidden,
		"trial period has expired, please subscribe to continue",
		http.StatusForbidden,
	)
)
