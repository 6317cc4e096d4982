package routes

import (
	"echo_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type SchemaRoutes struct {
	schemaHandler *handlers.SchemaHandler
}

func NewSchemaRoutes(schemaHandler *handlers.SchemaHandler) *SchemaRoutes {
	return &SchemaRoutes{
		schemaHandler: schemaHandler,
	}
}

func (r *SchemaRoutes) RegisterRoutes(router *gin.RouterGroup) {
	schema := router.Group("/schema")
	{
		schema.GET("/tables", r.schemaHandler.ListTables)
		schema.GET("/tables/:table", r.schemaHandler.GetSchema)
		schema.POST("/tables/:table/import", r.schemaHandler.Import)
	}
}
