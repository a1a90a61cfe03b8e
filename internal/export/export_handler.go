package export

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ProgressCSV(c *gin.Context) {
	body, err := h.service.ProgressCSV(c.Request.Context(), c.Query("facility"))
	if err != nil {
		writeError(c, err)
		return
	}

	filename := "learning-progress-" + time.Now().UTC().Format("20060102") + ".csv"
	response.Blob(c, http.StatusOK, "text/csv; charset=utf-8", filename, body)
}

func (h *Handler) CompliancePDF(c *gin.Context) {
	body, err := h.service.CompliancePDF(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	filename := "leave-compliance-" + time.Now().UTC().Format("20060102") + ".pdf"
	response.Blob(c, http.StatusOK, "application/pdf", filename, body)
}
