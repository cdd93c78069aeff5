package attendanceerrors

import (
	"net/http"

	"hrms/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidInput,
		"already clocked in today",
		http.StatusBadRequest,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidInput,
		"no clock-in found for today",
		http.StatusBadRequest,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeInvalidInput,
		"already clocked out today",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date filter, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
