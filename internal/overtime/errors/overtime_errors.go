package overtimeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrOvertimeNotFound = apperror.New(
		apperror.CodeNotFound,
		"overtime record not found",
		http.StatusNotFound,
	)
	ErrInvalidOvertimeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid overtime record id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"hours must be greater than zero",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee not found",
		http.StatusBadRequest,
	)
	ErrAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"overtime record is already approved",
		http.StatusBadRequest,
	)
)
