package routes

import (
	"echo_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type UserRoutes struct {
	userHandler *handlers.UserHandler
}

func NewUserRoutes(userHandler *handlers.UserHandler) *UserRoutes {
	return &UserRoutes{
		userHandler: userHandler,
	}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("", r.userHandler.Create)
		users.GET("", r.userHandler.List)
		users.PATCH("/:user_id", r.userHandler.Update)
		users.DELETE("/:user_id", r.userHandler.Delete)
	}
}
