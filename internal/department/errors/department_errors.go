package departmenterrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"department code already exists in this organization",
		http.StatusConflict,
	)
	ErrDepartmentHasEmployees = apperror.New(
		apperror.CodeConflict,
		"department still has employees assigned",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
)
