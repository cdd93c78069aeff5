package payrollerrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll item not found",
		http.StatusNotFound,
	)
	ErrPayrollPeriodExists = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this period",
		http.StatusConflict,
	)
	ErrPayrollNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll is no longer in draft",
		http.StatusBadRequest,
	)
	ErrNoEligibleEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"no eligible employees for this period",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll id",
		http.StatusBadRequest,
	)
)
