package routes

import (
	"echo_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type StudyRoutes struct {
	studyHandler *handlers.StudyHandler
}

func NewStudyRoutes(studyHandler *handlers.StudyHandler) *StudyRoutes {
	return &StudyRoutes{
		studyHandler: studyHandler,
	}
}

func (r *StudyRoutes) RegisterRoutes(router *gin.RouterGroup) {
	studies := router.Group("/studies")
	{
		studies.POST("", r.studyHandler.Create)
		studies.GET("", r.studyHandler.List)
		studies.PATCH("/:study_id", r.studyHandler.Update)
		studies.DELETE("/:study_id", r.studyHandler.Delete)
	}
}
