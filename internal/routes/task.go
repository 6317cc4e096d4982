package routes

import (
	"echo_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type TaskRoutes struct {
	taskHandler *handlers.TaskHandler
}

func NewTaskRoutes(taskHandler *handlers.TaskHandler) *TaskRoutes {
	return &TaskRoutes{
		taskHandler: taskHandler,
	}
}

func (r *TaskRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", r.taskHandler.Create)
		tasks.GET("", r.taskHandler.List)
		tasks.POST("/reorder", r.taskHandler.Reorder)
		tasks.PATCH("/:task_id", r.taskHandler.Update)
		tasks.DELETE("/:task_id", r.taskHandler.Delete)
	}
}
