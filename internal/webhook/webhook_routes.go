package webhook

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/webhook/payroll", handler.ReceivePayroll)
}
