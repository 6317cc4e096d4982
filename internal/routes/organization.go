package routes

import (
	"echo_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type OrganizationRoutes struct {
	organizationHandler *handlers.OrganizationHandler
}

func NewOrganizationRoutes(organizationHandler *handlers.OrganizationHandler) *OrganizationRoutes {
	return &OrganizationRoutes{
		organizationHandler: organizationHandler,
	}
}

func (r *OrganizationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	organizations := router.Group("/organizations")
	{
		organizations.POST("", r.organizationHandler.Create)
		organizations.GET("", r.organizationHandler.List)
		organizations.PATCH("/:organization_id", r.organizationHandler.Update)
		organizations.DELETE("/:organization_id", r.organizationHandler.Delete)
	}
}
