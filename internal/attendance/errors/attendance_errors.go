package attendanceerrors

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
	ErrInvalidRequestType = apperror.New(
		apperror.CodeInvalidInput,
		"request_type must be ABSENCE, LATE or EARLY_DEPARTURE",
		http.StatusBadRequest,
	)
	ErrPaidLeaveChannel = apperror.New(
		apperror.CodeInvalidInput,
		"paid leave must be filed through the leave endpoints",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrStartTimeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"start_time is required for late arrival and early departure",
		http.StatusBadRequest,
	)
	ErrTimeOrder = apperror.New(
		apperror.CodeInvalidInput,
		"start_time must be before or equal end_time",
		http.StatusBadRequest,
	)
	ErrTimeInterval = apperror.New(
		apperror.CodeInvalidInput,
		"times must fall on 15-minute intervals",
		http.StatusBadRequest,
	)
	ErrDuplicateRequest = apperror.New(
		apperror.CodeConflict,
		"a request of this type already exists for that date",
		http.StatusConflict,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance request not found",
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
)
