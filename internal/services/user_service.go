package services

import (
	"context"

	"echo_api/internal/database"
)

const usersTable = "users"

type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Create(ctx context.Context, user database.Record) (string, error) {
	if len(user) == 0 {
		return "", &database.ValidationError{Message: "user data is required"}
	}
	if err := requireString(user, "email"); err != nil {
		return "", err
	}
	return s.store.Create(ctx, usersTable, user)
}

func (s *UserService) Read(ctx context.Context, query database.Record) ([]database.Record, error) {
	if query == nil {
		query = database.Record{}
	}
	return s.store.Read(ctx, usersTable, query)
}

func (s *UserService) Update(ctx context.Context, userID string, data database.Record) (string, error) {
	if userID == "" {
		return "", &database.ValidationError{Message: "user ID is required"}
	}
	if len(data) == 0 {
		return "", &database.ValidationError{Message: "update data is required"}
	}
	return s.store.Update(ctx, usersTable, database.Record{"id": userID}, data)
}

func (s *UserService) Delete(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", &database.ValidationError{Message: "user ID is required"}
	}
	return s.store.Delete(ctx, usersTable, database.Record{"id": userID})
}
