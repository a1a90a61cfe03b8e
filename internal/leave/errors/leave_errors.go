package leaveerrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be FULL, HALF_AM or HALF_PM",
		http.StatusBadRequest,
	)
	ErrHalfDayRange = apperror.New(
		apperror.CodeInvalidInput,
		"half-day leave must start and end on the same date",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrBulkOverlap = apperror.New(
		apperror.CodeConflict,
		"bulk request contains overlapping periods",
		http.StatusConflict,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient paid leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrBulkInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient paid leave balance for the whole batch",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidGrantDays = apperror.New(
		apperror.CodeInvalidInput,
		"days_to_grant must be positive",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be updated",
		http.StatusConflict,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to view this scope",
		http.StatusForbidden,
	)
	ErrEmptyBulk = apperror.New(
		apperror.CodeInvalidInput,
		"bulk request list is empty",
		http.StatusBadRequest,
	)
)
