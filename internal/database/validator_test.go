package database

import (
	"errors"
	"strings"
	"testing"

	"echo_api/internal/models"
)

// testRegistry declares a two-table schema used across the validator tests.
func testRegistry(t *testing.T) *models.Registry {
	t.Helper()

	registry, err := models.NewRegistry(
		&models.TableDescriptor{
			Name: "organizations",
			Columns: []models.ColumnSpec{
				{Name: "id", Type: "UUID", PrimaryKey: true, HasDefault: true},
				{Name: "created", Type: "TEXT"},
				{Name: "updated", Type: "TEXT"},
				{Name: "name", Type: "TEXT"},
			},
		},
		&models.TableDescriptor{
			Name: "users",
			Columns: []models.ColumnSpec{
				{Name: "id", Type: "UUID", PrimaryKey: true, HasDefault: true},
				{Name: "created", Type: "TEXT"},
				{Name: "updated", Type: "TEXT"},
				{Name: "email", Type: "TEXT", Unique: true},
				{Name: "organization_id", Type: "UUID", Nullable: true, ForeignKey: &models.ForeignKeyRef{Table: "organizations", Column: "id"}},
			},
		},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return registry
}

// matchingSnapshot builds a live snapshot that agrees with testRegistry.
func matchingSnapshot() Snapshot {
	return Snapshot{
		"organizations": {
			Name: "organizations",
			Columns: map[string]LiveColumn{
				"id":      {Name: "id", DataType: "uuid"},
				"created": {Name: "created", DataType: "text"},
				"updated": {Name: "updated", DataType: "text"},
				"name":    {Name: "name", DataType: "text"},
			},
			PrimaryKeys: map[string]bool{"id": true},
			ForeignKeys: map[string]models.ForeignKeyRef{},
			Unique:      map[string]bool{},
		},
		"users": {
			Name: "users",
			Columns: map[string]LiveColumn{
				"id":              {Name: "id", DataType: "uuid"},
				"created":         {Name: "created", DataType: "text"},
				"updated":         {Name: "updated", DataType: "text"},
				"email":           {Name: "email", DataType: "text"},
				"organization_id": {Name: "organization_id", DataType: "uuid", Nullable: true},
			},
			PrimaryKeys: map[string]bool{"id": true},
			ForeignKeys: map[string]models.ForeignKeyRef{
				"organization_id": {Table: "organizations", Column: "id"},
			},
			Unique: map[string]bool{"email": true},
		},
	}
}

func assertSchemaError(t *testing.T, err error, wantParts ...string) {
	t.Helper()

	if err == nil {
		t.Fatal("expected a schema error, got nil")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error type = %T, want *SchemaError (%v)", err, err)
	}
	for _, part := range wantParts {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("error %q does not mention %q", err.Error(), part)
		}
	}
}

func TestValidateSchema(t *testing.T) {
	t.Run("matching schemas pass", func(t *testing.T) {
		if err := ValidateSchema(matchingSnapshot(), testRegistry(t)); err != nil {
			t.Errorf("ValidateSchema() error = %v", err)
		}
	})

	t.Run("type spelling difference is not fatal", func(t *testing.T) {
		live := matchingSnapshot()
		col := live["organizations"].Columns["name"]
		col.DataType = "character varying(255)"
		live["organizations"].Columns["name"] = col

		if err := ValidateSchema(live, testRegistry(t)); err != nil {
			t.Errorf("ValidateSchema() error = %v, want warning only", err)
		}
	})

	t.Run("table only in database", func(t *testing.T) {
		live := matchingSnapshot()
		live["sessions"] = &LiveTable{
			Name:        "sessions",
			Columns:     map[string]LiveColumn{"id": {Name: "id", DataType: "uuid"}},
			PrimaryKeys: map[string]bool{"id": true},
		}

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "sessions", "missing in models")
	})

	t.Run("table only in models", func(t *testing.T) {
		live := matchingSnapshot()
		delete(live, "users")

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "users", "missing in database")
	})

	t.Run("column only in database", func(t *testing.T) {
		live := matchingSnapshot()
		live["organizations"].Columns["website"] = LiveColumn{Name: "website", DataType: "text", Nullable: true}

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "organizations", "website", "missing in model")
	})

	t.Run("column only in models", func(t *testing.T) {
		live := matchingSnapshot()
		delete(live["users"].Columns, "email")
		delete(live["users"].Unique, "email")

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "users", "email", "missing in database")
	})

	t.Run("primary key mismatch", func(t *testing.T) {
		live := matchingSnapshot()
		delete(live["organizations"].PrimaryKeys, "id")
		live["organizations"].PrimaryKeys["name"] = true

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "organizations", "primary key")
	})

	t.Run("nullable mismatch", func(t *testing.T) {
		live := matchingSnapshot()
		col := live["organizations"].Columns["name"]
		col.Nullable = true
		live["organizations"].Columns["name"] = col

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "organizations", "name", "nullable")
	})

	t.Run("foreign key missing in database", func(t *testing.T) {
		live := matchingSnapshot()
		delete(live["users"].ForeignKeys, "organization_id")

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "users", "organization_id", "foreign key")
	})

	t.Run("foreign key target mismatch", func(t *testing.T) {
		live := matchingSnapshot()
		live["users"].ForeignKeys["organization_id"] = models.ForeignKeyRef{Table: "organizations", Column: "name"}

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "users", "organization_id", "foreign key reference")
	})

	t.Run("unique constraint mismatch", func(t *testing.T) {
		live := matchingSnapshot()
		delete(live["users"].Unique, "email")

		err := ValidateSchema(live, testRegistry(t))
		assertSchemaError(t, err, "users", "email", "unique")
	})
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"VARCHAR(255)", "TEXT"},
		{"character varying(100)", "TEXT"},
		{"text", "TEXT"},
		{"BOOLEAN", "BOOL"},
		{"timestamp without time zone", "DATETIME"},
		{"TIMESTAMP", "DATETIME"},
		{"uuid", "UUID"},
		{"NUMERIC(10,2)", "NUMERIC"},
	}

	for _, tt := range tests {
		if got := normalizeType(tt.in); got != tt.want {
			t.Errorf("normalizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
