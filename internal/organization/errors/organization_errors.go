package organizationerrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"organization not found",
		http.StatusNotFound,
	)
	ErrSlugAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"organization slug already exists",
		http.StatusConflict,
	)
	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid organization id",
		http.StatusBadRequest,
	)
)
