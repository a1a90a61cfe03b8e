package manualerrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrManualNotFound = apperror.New("MANUAL_NOT_FOUND", "Manual not found", http.StatusNotFound)
	ErrStaleVersion   = apperror.New("STALE_MANUAL_VERSION", "The manual has been updated since it was read", http.StatusConflict)
)
