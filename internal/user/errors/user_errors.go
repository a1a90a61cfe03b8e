package usererrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDTaken = apperror.New(
		apperror.CodeConflict,
		"employee id is already registered",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be USER, ADMIN or DEVELOPER",
		http.StatusBadRequest,
	)
	ErrInvalidHiredAt = apperror.New(
		apperror.CodeInvalidInput,
		"hired_at must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrUserNotDeleted = apperror.New(
		apperror.CodeInvalidState,
		"user is not deleted",
		http.StatusConflict,
	)
)
