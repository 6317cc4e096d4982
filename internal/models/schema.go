package models

// ForeignKeyRef identifies the table and column a foreign key points at.
type ForeignKeyRef struct {
	Table  string
	Column string
}

// ColumnSpec declares one column of a table: its logical type and the
// constraints the live database is expected to enforce for it.
type ColumnSpec struct {
	Name       string
	Type       string // logical type, e.g. UUID, TEXT, INTEGER, JSONB
	Nullable   bool
	PrimaryKey bool
	Unique     bool
	ForeignKey *ForeignKeyRef
	HasDefault bool
}

// TableDescriptor is the static declaration of a table. Descriptors are built
// once at process start and never mutated afterwards.
type TableDescriptor struct {
	Name    string
	Columns []ColumnSpec
}

// Column returns the spec for the named column, or nil if the table does not
// declare it.
func (t *TableDescriptor) Column(name string) *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// PrimaryKey returns the primary key column spec, or nil if none is declared.
func (t *TableDescriptor) PrimaryKey() *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].PrimaryKey {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns the declared column names in declaration order.
func (t *TableDescriptor) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for i := range t.Columns {
		names = append(names, t.Columns[i].Name)
	}
	return names
}
