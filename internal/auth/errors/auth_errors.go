package autherrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New("AUTH_FAILED", "Employee ID or password is incorrect", http.StatusUnauthorized)

	ErrInvalidToken        = apperror.New("INVALID_TOKEN", "Token is invalid", http.StatusUnauthorized)
	ErrTokenExpired        = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
	ErrInvalidRefreshToken = apperror.New("INVALID_REFRESH_TOKEN", "Refresh token is invalid", http.StatusUnauthorized)

	ErrInvalidUserID = apperror.New("INVALID_USER_ID", "User id is not a valid uuid", http.StatusBadRequest)
	ErrUserNotFound  = apperror.New("USER_NOT_FOUND", "User not found", http.StatusNotFound)

	ErrTokenGenerationFailed = apperror.New("TOKEN_GENERATION_FAILED", "Could not generate token", http.StatusInternalServerError)

	ErrForbidden = apperror.New("FORBIDDEN", "You do not have permission to access this resource", http.StatusForbidden)

	ErrWrongPassword       = apperror.New("WRONG_PASSWORD", "Current password is incorrect", http.StatusUnauthorized)
	ErrWeakPassword        = apperror.New("WEAK_PASSWORD", "Password must be at least 8 characters", http.StatusUnprocessableEntity)
	ErrInvalidInvitation   = apperror.New("INVALID_INVITATION", "Invitation token is invalid or already used", http.StatusNotFound)
	ErrInvalidResetToken   = apperror.New("INVALID_RESET_TOKEN", "Reset token is invalid", http.StatusNotFound)
	ErrResetTokenExpired   = apperror.New("RESET_TOKEN_EXPIRED", "Reset token has expired", http.StatusGone)
	ErrAccountNotRecovered = apperror.New("ACCOUNT_NOT_RECOVERABLE", "Account has no recovery route", http.StatusConflict)
)
