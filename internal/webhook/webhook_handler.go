package webhook

import (
	"net/http"

	"leave-payroll/internal/shared/apperror"
	"leave-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler stands in for the external payroll system: it accepts and logs
// notifications without acting on them.
type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger ...*zap.Logger) *Handler {
	l := zap.L().Named("webhook.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("webhook.handler")
	}
	return &Handler{logger: l}
}

func (h *Handler) ReceivePayroll(c *gin.Context) {
	var req PayrollNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("payroll webhook validation failed", zap.Error(err))
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	h.logger.Info("payroll webhook received",
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("event", req.Event),
		zap.ByteString("data", req.Data),
	)
	c.JSON(http.StatusOK, ReceivedResponse{Status: "received"})
}
