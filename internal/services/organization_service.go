package services

import (
	"context"

	"echo_api/internal/database"
)

const organizationsTable = "organizations"

type OrganizationService struct {
	store Store
}

func NewOrganizationService(store Store) *OrganizationService {
	return &OrganizationService{store: store}
}

func (s *OrganizationService) Create(ctx context.Context, organization database.Record) (string, error) {
	if len(organization) == 0 {
		return "", &database.ValidationError{Message: "organization data is required"}
	}
	if err := requireString(organization, "name"); err != nil {
		return "", err
	}
	return s.store.Create(ctx, organizationsTable, organization)
}

func (s *OrganizationService) Read(ctx context.Context, query database.Record) ([]database.Record, error) {
	if query == nil {
		query = database.Record{}
	}
	return s.store.Read(ctx, organizationsTable, query)
}

func (s *OrganizationService) Update(ctx context.Context, organizationID string, data database.Record) (string, error) {
	if organizationID == "" {
		return "", &database.ValidationError{Message: "organization ID is required"}
	}
	if len(data) == 0 {
		return "", &database.ValidationError{Message: "update data is required"}
	}
	return s.store.Update(ctx, organizationsTable, database.Record{"id": organizationID}, data)
}

func (s *OrganizationService) Delete(ctx context.Context, organizationID string) (string, error) {
	if organizationID == "" {
		return "", &database.ValidationError{Message: "organization ID is required"}
	}
	return s.store.Delete(ctx, organizationsTable, database.Record{"id": organizationID})
}
