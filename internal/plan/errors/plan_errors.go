package planerrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"plan not found",
		http.StatusNotFound,
	)
	ErrPlanNameOrSlugTaken = apperror.New(
		apperror.CodeConflict,
		"plan name or slug already exists",
		http.StatusConflict,
	)
	ErrInvalidPlanID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid plan id",
		http.StatusBadRequest,
	)
)
