package salaryrecord

import (
	"net/http"
	"strconv"

	salaryrecorderrors "leave-payroll/internal/salaryrecord/errors"
	"leave-payroll/internal/shared/apperror"
	"leave-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("salaryrecord.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryrecord.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("salary record request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	var employeeID *int64
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeServiceError(c, salaryrecorderrors.ErrInvalidEmployeeID)
			return
		}
		employeeID = &id
	}

	resp, err := h.service.GetAll(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetLatest(c *gin.Context) {
	raw := c.Query("employee_id")
	if raw == "" {
		h.writeServiceError(c, salaryrecorderrors.ErrEmployeeIDRequired)
		return
	}
	employeeID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeServiceError(c, salaryrecorderrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.GetLatest(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
