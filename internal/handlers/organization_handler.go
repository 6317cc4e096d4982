package handlers

import (
	"net/http"

	"echo_api/internal/database"
	"echo_api/internal/responses"
	"echo_api/internal/services"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	organizationService *services.OrganizationService
}

func NewOrganizationHandler(organizationService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		organizationService: organizationService,
	}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var organization database.Record
	if err := c.ShouldBindJSON(&organization); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.organizationService.Create(c.Request.Context(), organization)
	if err != nil {
		responses.FromError(c, err, "Error while creating the organization")
		return
	}

	responses.Success(c, http.StatusCreated, gin.H{"id": id}, "Organization created successfully")
}

func (h *OrganizationHandler) List(c *gin.Context) {
	organizations, err := h.organizationService.Read(c.Request.Context(), queryFromParams(c))
	if err != nil {
		responses.FromError(c, err, "Error while reading organizations")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"organizations": organizations}, "Organizations retrieved successfully")
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	organizationID := c.Param("organization_id")

	var data database.Record
	if err := c.ShouldBindJSON(&data); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	id, err := h.organizationService.Update(c.Request.Context(), organizationID, data)
	if err != nil {
		responses.FromError(c, err, "Error while updating the organization")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Organization updated successfully")
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	organizationID := c.Param("organization_id")

	id, err := h.organizationService.Delete(c.Request.Context(), organizationID)
	if err != nil {
		responses.FromError(c, err, "Error while deleting the organization")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Organization deleted successfully")
}
