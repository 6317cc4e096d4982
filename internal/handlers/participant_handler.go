package handlers

import (
	"net/http"

	"echo_api/internal/database"
	"echo_api/internal/responses"
	"echo_api/internal/services"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	participantService *services.ParticipantService
}

func NewParticipantHandler(participantService *services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

func (h *ParticipantHandler) Create(c *gin.Context) {
	var participant database.Record
	if err := c.ShouldBindJSON(&participant); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.participantService.Create(c.Request.Context(), participant)
	if err != nil {
		responses.FromError(c, err, "Error while creating the participant")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Participant created successfully")
}

type bulkCreateRequest struct {
	StudyID      string          `json:"study_id" binding:"required"`
	Contacts     []string        `json:"contacts" binding:"required"`
	Demographics database.Record `json:"demographics"`
}

func (h *ParticipantHandler) BulkCreate(c *gin.Context) {
	var req bulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	created, requested, err := h.participantService.BulkCreate(c.Request.Context(), req.StudyID, req.Contacts, req.Demographics)
	if err != nil {
		responses.FromError(c, err, "Error while bulk creating participants")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"created": created, "requested": requested}, "Participants created successfully")
}

func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.participantService.Read(c.Request.Context(), queryFromParams(c))
	if err != nil {
		responses.FromError(c, err, "Error while reading participants")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"participants": participants}, "Participants retrieved successfully")
}

func (h *ParticipantHandler) Update(c *gin.Context) {
	participantID := c.Param("participant_id")

	var data database.Record
	if err := c.ShouldBindJSON(&data); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.participantService.Update(c.Request.Context(), participantID, data)
	if err != nil {
		responses.FromError(c, err, "Error while updating the participant")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Participant updated successfully")
}

func (h *ParticipantHandler) Delete(c *gin.Context) {
	participantID := c.Param("participant_id")

	id, err := h.participantService.Delete(c.Request.Context(), participantID)
	if err != nil {
		responses.FromError(c, err, "Error while deleting the participant")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Participant deleted successfully")
}
