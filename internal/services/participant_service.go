package services

import (
	"context"
	"log"
	"time"

	"echo_api/internal/database"
)

const participantsTable = "participants"

type ParticipantService struct {
	store Store
}

func NewParticipantService(store Store) *ParticipantService {
	return &ParticipantService{store: store}
}

// Create validates a participant payload and persists it. New participants
// start in the invited state with the invitation time stamped.
func (s *ParticipantService) Create(ctx context.Context, participant database.Record) (string, error) {
	if len(participant) == 0 {
		return "", &database.ValidationError{Message: "participant data is required"}
	}
	if err := requireString(participant, "study_id"); err != nil {
		return "", err
	}
	if err := validateUUID(participant["study_id"].(string), "study_id"); err != nil {
		return "", err
	}
	if err := requireString(participant, "contact"); err != nil {
		return "", err
	}

	if _, ok := participant["status"]; !ok {
		participant["status"] = "invited"
	}
	if _, ok := participant["invited_at"]; !ok {
		// time.Time values are coerced to the compact storage stamp by the
		// data-access layer.
		participant["invited_at"] = time.Now()
	}

	return s.store.Create(ctx, participantsTable, participant)
}

// BulkCreate invites many participants to one study from a contacts list,
// optionally stamping the same demographics onto each. A contact that fails
// to persist is logged and skipped rather than aborting the batch. Returns
// how many participants were created alongside how many were requested.
func (s *ParticipantService) BulkCreate(ctx context.Context, studyID string, contacts []string, demographics database.Record) (int, int, error) {
	if studyID == "" {
		return 0, 0, &database.ValidationError{Message: "study ID is required"}
	}
	if err := validateUUID(studyID, "study_id"); err != nil {
		return 0, 0, err
	}
	if len(contacts) == 0 {
		return 0, 0, &database.ValidationError{Message: "contacts list is required"}
	}

	invitedAt := time.Now()
	created := 0
	for _, contact := range contacts {
		participant := database.Record{
			"study_id":   studyID,
			"contact":    contact,
			"status":     "invited",
			"invited_at": invitedAt,
		}
		if len(demographics) > 0 {
			participant["demographics"] = demographics
		}

		if _, err := s.store.Create(ctx, participantsTable, participant); err != nil {
			log.Printf("Failed to create participant %s: %v", contact, err)
			continue
		}
		created++
	}

	return created, len(contacts), nil
}

// Read returns participants matching the optional filters (id, study_id,
// status).
func (s *ParticipantService) Read(ctx context.Context, query database.Record) ([]database.Record, error) {
	if query == nil {
		query = database.Record{}
	}
	return s.store.Read(ctx, participantsTable, query)
}

func (s *ParticipantService) Update(ctx context.Context, participantID string, data database.Record) (string, error) {
	if participantID == "" {
		return "", &database.ValidationError{Message: "participant ID is required"}
	}
	if len(data) == 0 {
		return "", &database.ValidationError{Message: "update data is required"}
	}
	return s.store.Update(ctx, participantsTable, database.Record{"id": participantID}, data)
}

func (s *ParticipantService) Delete(ctx context.Context, participantID string) (string, error) {
	if participantID == "" {
		return "", &database.ValidationError{Message: "participant ID is required"}
	}
	return s.store.Delete(ctx, participantsTable, database.Record{"id": participantID})
}
