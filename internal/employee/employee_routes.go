package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mutating ...gin.HandlerFunc) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", append(append([]gin.HandlerFunc{}, mutating...), handler.Create)...)
	}
}
