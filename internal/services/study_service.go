package services

import (
	"context"

	"echo_api/internal/database"
)

const studiesTable = "studies"

type StudyService struct {
	store Store
}

func NewStudyService(store Store) *StudyService {
	return &StudyService{store: store}
}

// Create validates a study payload, fills in defaults, and persists it.
func (s *StudyService) Create(ctx context.Context, study database.Record) (string, error) {
	if len(study) == 0 {
		return "", &database.ValidationError{Message: "study data is required"}
	}
	for _, field := range []string{"organization_id", "created_by", "name"} {
		if err := requireString(study, field); err != nil {
			return "", err
		}
	}

	if _, ok := study["status"]; !ok {
		study["status"] = "draft"
	}
	if _, ok := study["target_participants"]; !ok {
		study["target_participants"] = 50
	}
	if _, ok := study["duration_days"]; !ok {
		study["duration_days"] = 7
	}

	return s.store.Create(ctx, studiesTable, study)
}

// Read returns studies matching the optional filters (id, organization_id,
// status, created_by).
func (s *StudyService) Read(ctx context.Context, query database.Record) ([]database.Record, error) {
	if query == nil {
		query = database.Record{}
	}
	return s.store.Read(ctx, studiesTable, query)
}

func (s *StudyService) Update(ctx context.Context, studyID string, data database.Record) (string, error) {
	if studyID == "" {
		return "", &database.ValidationError{Message: "study ID is required"}
	}
	if len(data) == 0 {
		return "", &database.ValidationError{Message: "update data is required"}
	}
	return s.store.Update(ctx, studiesTable, database.Record{"id": studyID}, data)
}

func (s *StudyService) Delete(ctx context.Context, studyID string) (string, error) {
	if studyID == "" {
		return "", &database.ValidationError{Message: "study ID is required"}
	}
	return s.store.Delete(ctx, studiesTable, database.Record{"id": studyID})
}
