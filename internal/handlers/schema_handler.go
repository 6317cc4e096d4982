package handlers

import (
	"net/http"

	"echo_api/internal/database"
	"echo_api/internal/responses"

	"github.com/gin-gonic/gin"
)

// SchemaHandler serves the diagnostic schema endpoints straight off the CRUD
// engine: table listing, per-table column metadata, and bulk import.
type SchemaHandler struct {
	manager *database.Manager
}

func NewSchemaHandler(manager *database.Manager) *SchemaHandler {
	return &SchemaHandler{
		manager: manager,
	}
}

func (h *SchemaHandler) ListTables(c *gin.Context) {
	tables := h.manager.ListTables()
	responses.Success(c, http.StatusOK, gin.H{"tables": tables}, "Tables retrieved successfully")
}

func (h *SchemaHandler) GetSchema(c *gin.Context) {
	table := c.Param("table")

	schema, err := h.manager.GetSchema(table)
	if err != nil {
		responses.FromError(c, err, "Error while reading table schema")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"schema": schema}, "Schema retrieved successfully")
}

type importRequest struct {
	Rows      []database.Record `json:"rows" binding:"required"`
	Overwrite bool              `json:"overwrite"`
}

func (h *SchemaHandler) Import(c *gin.Context) {
	table := c.Param("table")

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	inserted, err := h.manager.Import(c.Request.Context(), table, req.Rows, req.Overwrite)
	if err != nil {
		responses.FromError(c, err, "Error while importing data")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"inserted": inserted}, "Data imported successfully")
}
