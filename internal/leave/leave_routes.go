package leave

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the leave endpoints. mutating runs in front of the
// state-changing POSTs only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mutating ...gin.HandlerFunc) {
	with := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, mutating...), h)
	}

	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("", with(handler.Submit)...)
		leaves.POST("/:id/approve", with(handler.Approve)...)
		leaves.POST("/:id/reject", with(handler.Reject)...)
	}
}
