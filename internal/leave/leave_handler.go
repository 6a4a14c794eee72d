package leave

import (
	"net/http"
	"strconv"

	leaveerrors "leave-payroll/internal/leave/errors"
	"leave-payroll/internal/notifier"
	"leave-payroll/internal/shared/apperror"
	"leave-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type Handler struct {
	service   Service
	publisher notifier.Publisher
	logger    *zap.Logger
}

func NewHandler(service Service, publisher notifier.Publisher, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	if publisher == nil {
		publisher = notifier.Nop()
	}
	return &Handler{service: service, publisher: publisher, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// publish runs after the service returned, i.e. after commit.
func (h *Handler) publish(c *gin.Context, out Outcome) {
	h.publisher.Publish(c.Request.Context(), out.Changes...)
}

func parseLeaveID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit leave validation failed", zap.Error(err))
		response.AppError(c, apperror.MapValidationError(err))
		return
	}

	out, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.publish(c, out)
	response.Success(c, http.StatusCreated, out.Leave, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := parseLeaveID(c)
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}

	out, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.publish(c, out)
	response.SuccessWithWarnings(c, http.StatusOK, ApproveResponse{
		Leave:        out.Leave,
		SalaryRecord: out.Salary,
	}, out.WarningMessages())
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := parseLeaveID(c)
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}

	out, err := h.service.Reject(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.publish(c, out)
	response.Success(c, http.StatusOK, out.Leave, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var employeeID *int64
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeServiceError(c, leaveerrors.ErrInvalidEmployeeID)
			return
		}
		employeeID = &id
	}

	resp, err := h.service.GetAll(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := int64(len(resp))
	// page beyond the last one yields an empty slice; checked before multiplying
	start, end := len(resp), len(resp)
	if page-1 <= len(resp)/pageSize {
		start = (page - 1) * pageSize
		end = min(start+pageSize, len(resp))
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseLeaveID(c)
	if !ok {
		h.writeServiceError(c, leaveerrors.ErrInvalidLeaveID)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
