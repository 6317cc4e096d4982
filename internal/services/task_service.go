package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"echo_api/internal/database"

	"github.com/google/uuid"
)

const tasksTable = "tasks"

// validTaskTypes are the task kinds participants can be given.
var validTaskTypes = []string{"camera", "discussion", "gallery", "collage", "classification", "fill_blanks"}

type TaskService struct {
	store Store
}

func NewTaskService(store Store) *TaskService {
	return &TaskService{store: store}
}

// validateUUID rejects identifier values that are not uuid-shaped before they
// reach the database.
func validateUUID(value, field string) error {
	if value == "" {
		return nil
	}
	if _, err := uuid.Parse(value); err != nil {
		return &database.ValidationError{
			Message: fmt.Sprintf("invalid %s format, expected a valid UUID, got: %q", field, value),
		}
	}
	return nil
}

func validTaskType(taskType string) bool {
	for _, t := range validTaskTypes {
		if t == taskType {
			return true
		}
	}
	return false
}

// orderIndex reads a task's order_index as an int regardless of how the
// store represented the number.
func orderIndex(task database.Record) int {
	switch v := task["order_index"].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Create validates a task payload and persists it. When order_index is not
// supplied, the task is appended after the study's current last task.
func (s *TaskService) Create(ctx context.Context, task database.Record) (string, error) {
	if len(task) == 0 {
		return "", &database.ValidationError{Message: "task data is required"}
	}
	if err := requireString(task, "study_id"); err != nil {
		return "", err
	}
	if err := validateUUID(task["study_id"].(string), "study_id"); err != nil {
		return "", err
	}
	for _, field := range []string{"type", "title"} {
		if err := requireString(task, field); err != nil {
			return "", err
		}
	}
	if !validTaskType(task["type"].(string)) {
		return "", &database.ValidationError{
			Message: "invalid task type, must be one of: " + strings.Join(validTaskTypes, ", "),
		}
	}

	if _, ok := task["order_index"]; !ok {
		existing, err := s.store.Read(ctx, tasksTable, database.Record{"study_id": task["study_id"]})
		if err != nil {
			return "", err
		}
		max := 0
		for _, t := range existing {
			if idx := orderIndex(t); idx > max {
				max = idx
			}
		}
		task["order_index"] = max + 1
	}

	return s.store.Create(ctx, tasksTable, task)
}

// Read returns tasks matching the optional filters, sorted by order_index.
// The data-access layer guarantees no result ordering, so ordering lives
// here.
func (s *TaskService) Read(ctx context.Context, query database.Record) ([]database.Record, error) {
	if query == nil {
		query = database.Record{}
	}
	for _, field := range []string{"id", "study_id"} {
		if value, ok := query[field].(string); ok {
			if err := validateUUID(value, field); err != nil {
				return nil, err
			}
		}
	}

	tasks, err := s.store.Read(ctx, tasksTable, query)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return orderIndex(tasks[i]) < orderIndex(tasks[j])
	})
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, taskID string, data database.Record) (string, error) {
	if taskID == "" {
		return "", &database.ValidationError{Message: "task ID is required"}
	}
	if err := validateUUID(taskID, "task_id"); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &database.ValidationError{Message: "update data is required"}
	}
	if studyID, ok := data["study_id"].(string); ok {
		if err := validateUUID(studyID, "study_id"); err != nil {
			return "", err
		}
	}
	if taskType, ok := data["type"].(string); ok && !validTaskType(taskType) {
		return "", &database.ValidationError{
			Message: "invalid task type, must be one of: " + strings.Join(validTaskTypes, ", "),
		}
	}
	return s.store.Update(ctx, tasksTable, database.Record{"id": taskID}, data)
}

func (s *TaskService) Delete(ctx context.Context, taskID string) (string, error) {
	if taskID == "" {
		return "", &database.ValidationError{Message: "task ID is required"}
	}
	if err := validateUUID(taskID, "task_id"); err != nil {
		return "", err
	}
	return s.store.Delete(ctx, tasksTable, database.Record{"id": taskID})
}

// Reorder rewrites order_index for a study's tasks to match the given id
// sequence (1-based).
func (s *TaskService) Reorder(ctx context.Context, studyID string, taskIDs []string) error {
	if studyID == "" {
		return &database.ValidationError{Message: "study ID is required"}
	}
	if err := validateUUID(studyID, "study_id"); err != nil {
		return err
	}
	if len(taskIDs) == 0 {
		return &database.ValidationError{Message: "task IDs list is required"}
	}
	for _, taskID := range taskIDs {
		if err := validateUUID(taskID, "task_id"); err != nil {
			return err
		}
	}

	for i, taskID := range taskIDs {
		_, err := s.store.Update(ctx, tasksTable,
			database.Record{"id": taskID, "study_id": studyID},
			database.Record{"order_index": i + 1},
		)
		if err != nil {
			return err
		}
	}
	return nil
}
