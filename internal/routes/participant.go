package routes

import (
	"echo_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ParticipantRoutes struct {
	participantHandler *handlers.ParticipantHandler
}

func NewParticipantRoutes(participantHandler *handlers.ParticipantHandler) *ParticipantRoutes {
	return &ParticipantRoutes{
		participantHandler: participantHandler,
	}
}

func (r *ParticipantRoutes) RegisterRoutes(router *gin.RouterGroup) {
	participants := router.Group("/participants")
	{
		participants.POST("", r.participantHandler.Create)
		participants.POST("/bulk", r.participantHandler.BulkCreate)
		participants.GET("", r.participantHandler.List)
		participants.PATCH("/:participant_id", r.participantHandler.Update)
		participants.DELETE("/:participant_id", r.participantHandler.Delete)
	}
}
