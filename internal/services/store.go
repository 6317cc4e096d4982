package services

import (
	"context"
	"fmt"

	"echo_api/internal/database"
)

// Store is the slice of the data-access layer the domain services consume:
// generic CRUD by table name. *database.Manager satisfies it.
type Store interface {
	Create(ctx context.Context, table string, data database.Record) (string, error)
	Read(ctx context.Context, table string, query database.Record) ([]database.Record, error)
	Update(ctx context.Context, table string, query database.Record, data database.Record) (string, error)
	Delete(ctx context.Context, table string, query database.Record) (string, error)
}

// requireString checks that a payload field is present and a non-empty
// string.
func requireString(data database.Record, field string) error {
	value, ok := data[field]
	if !ok {
		return &database.ValidationError{Message: fmt.Sprintf("%s is required", field)}
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return &database.ValidationError{Message: fmt.Sprintf("%s is required", field)}
	}
	return nil
}
