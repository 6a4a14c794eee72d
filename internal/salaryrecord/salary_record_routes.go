package salaryrecord

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	salary := r.Group("/salary")
	{
		salary.GET("", handler.GetAll)
		salary.GET("/latest", handler.GetLatest)
	}
}
