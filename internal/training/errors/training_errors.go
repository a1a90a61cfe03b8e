package trainingerrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrTrainingNotFound = apperror.New("TRAINING_NOT_FOUND", "Training not found", http.StatusNotFound)
	ErrInvalidSchedule  = apperror.New("INVALID_SCHEDULE", "scheduled_at must be a valid timestamp", http.StatusUnprocessableEntity)
)
