package security

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/apperror"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("security.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("security.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListAnomalies(c *gin.Context) {
	includeAcked := c.Query("include_acknowledged") == "true"

	resp, err := h.service.ListAnomalies(c.Request.Context(), includeAcked)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Acknowledge(c *gin.Context) {
	err := h.service.Acknowledge(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"acknowledged": true}, nil)
}
