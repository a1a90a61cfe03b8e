package facilityerrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrFacilityNotFound  = apperror.New("FACILITY_NOT_FOUND", "Facility not found", http.StatusNotFound)
	ErrFacilityNameTaken = apperror.New("FACILITY_NAME_TAKEN", "A facility with this name already exists", http.StatusConflict)
)
