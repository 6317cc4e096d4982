package models

// Tables declared by this service. The live database must match these
// descriptors exactly (checked at startup), with one exception: logical type
// spellings may differ cosmetically.
//
// Every table carries a uuid primary key generated by the database plus
// created/updated compact-timestamp columns written by the data-access layer.

func Organizations() *TableDescriptor {
	return &TableDescriptor{
		Name: "organizations",
		Columns: []ColumnSpec{
			{Name: "id", Type: "UUID", PrimaryKey: true, HasDefault: true},
			{Name: "created", Type: "TEXT"},
			{Name: "updated", Type: "TEXT"},
			{Name: "name", Type: "TEXT"},
			{Name: "description", Type: "TEXT", Nullable: true},
		},
	}
}

func Users() *TableDescriptor {
	return &TableDescriptor{
		Name: "users",
		Columns: []ColumnSpec{
			{Name: "id", Type: "UUID", PrimaryKey: true, HasDefault: true},
			{Name: "created", Type: "TEXT"},
			{Name: "updated", Type: "TEXT"},
			{Name: "email", Type: "TEXT", Unique: true},
			{Name: "name", Type: "TEXT", Nullable: true},
			{Name: "role", Type: "TEXT", Nullable: true},
			{Name: "organization_id", Type: "UUID", Nullable: true, ForeignKey: &ForeignKeyRef{Table: "organizations", Column: "id"}},
		},
	}
}

func Studies() *TableDescriptor {
	return &TableDescriptor{
		Name: "studies",
		Columns: []ColumnSpec{
			{Name: "id", Type: "UUID", PrimaryKey: true, HasDefault: true},
			{Name: "created", Type: "TEXT"},
			{Name: "updated", Type: "TEXT"},
			{Name: "organization_id", Type: "UUID", ForeignKey: &ForeignKeyRef{Table: "organizations", Column: "id"}},
			{Name: "created_by", Type: "UUID", ForeignKey: &ForeignKeyRef{Table: "users", Column: "id"}},
			{Name: "name", Type: "TEXT"},
			{Name: "objective", Type: "TEXT", Nullable: true},
			{Name: "study_type", Type: "TEXT", Nullable: true},
			{Name: "status", Type: "TEXT", HasDefault: true},
			{Name: "target_participants", Type: "INTEGER", HasDefault: true},
			{Name: "duration_days", Type: "INTEGER", HasDefault: true},
			{Name: "segment_criteria", Type: "JSONB", Nullable: true},
		},
	}
}

func Tasks() *TableDescriptor {
	return &TableDescriptor{
		Name: "tasks",
		Columns: []ColumnSpec{
			{Name: "id", Type: "UUID", PrimaryKey: true, HasDefault: true},
			{Name: "created", Type: "TEXT"},
			{Name: "updated", Type: "TEXT"},
			{Name: "study_id", Type: "UUID", ForeignKey: &ForeignKeyRef{Table: "studies", Column: "id"}},
			{Name: "type", Type: "TEXT"},
			{Name: "title", Type: "TEXT"},
			{Name: "instructions", Type: "TEXT", Nullable: true},
			{Name: "config", Type: "JSONB", Nullable: true},
			{Name: "order_index", Type: "INTEGER", HasDefault: true},
		},
	}
}

func Participants() *TableDescriptor {
	return &TableDescriptor{
		Name: "participants",
		Columns: []ColumnSpec{
			{Name: "id", Type: "UUID", PrimaryKey: true, HasDefault: true},
			{Name: "created", Type: "TEXT"},
			{Name: "updated", Type: "TEXT"},
			{Name: "study_id", Type: "UUID", ForeignKey: &ForeignKeyRef{Table: "studies", Column: "id"}},
			{Name: "contact", Type: "TEXT"},
			{Name: "demographics", Type: "JSONB", Nullable: true},
			{Name: "status", Type: "TEXT", HasDefault: true},
			{Name: "invited_at", Type: "TEXT", Nullable: true},
			{Name: "completed_at", Type: "TEXT", Nullable: true},
		},
	}
}

// DefaultRegistry builds the registry with every table this service persists.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(
		Organizations(),
		Users(),
		Studies(),
		Tasks(),
		Participants(),
	)
}
