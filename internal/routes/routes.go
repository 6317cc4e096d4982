package routes

import (
	"net/http"

	"echo_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	router *gin.Engine,
	organizationHandler *handlers.OrganizationHandler,
	userHandler *handlers.UserHandler,
	studyHandler *handlers.StudyHandler,
	taskHandler *handlers.TaskHandler,
	participantHandler *handlers.ParticipantHandler,
	schemaHandler *handlers.SchemaHandler,
) {
	api := router.Group("/api/v1")

	NewOrganizationRoutes(organizationHandler).RegisterRoutes(api)
	NewUserRoutes(userHandler).RegisterRoutes(api)
	NewStudyRoutes(studyHandler).RegisterRoutes(api)
	NewTaskRoutes(taskHandler).RegisterRoutes(api)
	NewParticipantRoutes(participantHandler).RegisterRoutes(api)
	NewSchemaRoutes(schemaHandler).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
