package departmenterrors

import (
	"net/http"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New("DEPARTMENT_NOT_FOUND", "Department not found", http.StatusNotFound)
	ErrDepartmentExists   = apperror.New("DEPARTMENT_EXISTS", "Department already exists in this facility", http.StatusConflict)
)
