package handlers

import (
	"net/http"

	"echo_api/internal/database"
	"echo_api/internal/responses"
	"echo_api/internal/services"

	"github.com/gin-gonic/gin"
)

type StudyHandler struct {
	studyService *services.StudyService
}

func NewStudyHandler(studyService *services.StudyService) *StudyHandler {
	return &StudyHandler{
		studyService: studyService,
	}
}

// queryFromParams turns URL query parameters into an equality filter record.
// Keys that name no real column are dropped by the data-access layer.
func queryFromParams(c *gin.Context) database.Record {
	query := database.Record{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	return query
}

func (h *StudyHandler) Create(c *gin.Context) {
	var study database.Record
	if err := c.ShouldBindJSON(&study); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.studyService.Create(c.Request.Context(), study)
	if err != nil {
		responses.FromError(c, err, "Error while creating the study")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Study created successfully")
}

func (h *StudyHandler) List(c *gin.Context) {
	studies, err := h.studyService.Read(c.Request.Context(), queryFromParams(c))
	if err != nil {
		responses.FromError(c, err, "Error while reading studies")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"studies": studies}, "Studies retrieved successfully")
}

func (h *StudyHandler) Update(c *gin.Context) {
	studyID := c.Param("study_id")

	var data database.Record
	if err := c.ShouldBindJSON(&data); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.studyService.Update(c.Request.Context(), studyID, data)
	if err != nil {
		responses.FromError(c, err, "Error while updating the study")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Study updated successfully")
}

func (h *StudyHandler) Delete(c *gin.Context) {
	studyID := c.Param("study_id")

	id, err := h.studyService.Delete(c.Request.Context(), studyID)
	if err != nil {
		responses.FromError(c, err, "Error while deleting the study")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Study deleted successfully")
}
