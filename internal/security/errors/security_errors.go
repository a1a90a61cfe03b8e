package securityerrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrAnomalyNotFound     = apperror.New("ANOMALY_NOT_FOUND", "Security anomaly not found", http.StatusNotFound)
	ErrAlreadyAcknowledged = apperror.New("ANOMALY_ALREADY_ACKNOWLEDGED", "Security anomaly is already acknowledged", http.StatusConflict)
)
