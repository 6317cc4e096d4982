package database

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"echo_api/internal/models"
)

// Schema validation runs once at startup, before any CRUD call is allowed.
// The declared descriptors and the live database must agree on table names,
// column names, primary keys, nullability, foreign key targets and unique
// constraints. Logical type spellings are allowed to diverge cosmetically
// (VARCHAR vs TEXT and the like) and only produce a warning.

// typeEquivalences folds cosmetically different type spellings onto one
// canonical name before comparison. Order matters: longer spellings first.
var typeEquivalences = []struct{ from, to string }{
	{"CHARACTER VARYING", "TEXT"},
	{"VARCHAR", "TEXT"},
	{"BOOLEAN", "BOOL"},
	{"TIMESTAMP WITHOUT TIME ZONE", "DATETIME"},
	{"TIMESTAMP", "DATETIME"},
}

// normalizeType canonicalizes a logical type name: uppercase, equivalence
// folding, and length/precision modifiers stripped (VARCHAR(255) -> TEXT).
func normalizeType(typeName string) string {
	normalized := strings.ToUpper(strings.TrimSpace(typeName))
	for _, eq := range typeEquivalences {
		normalized = strings.ReplaceAll(normalized, eq.from, eq.to)
	}
	if idx := strings.IndexByte(normalized, '('); idx >= 0 {
		normalized = normalized[:idx]
	}
	return strings.TrimSpace(normalized)
}

// ValidateSchema diffs the live snapshot against the registered descriptors
// and returns a SchemaError on the first structural mismatch. On success the
// snapshot can be discarded.
func ValidateSchema(live Snapshot, reg *models.Registry) error {
	log.Println("Validating database schema...")

	declared := reg.TableNames()
	declaredSet := make(map[string]bool, len(declared))
	for _, name := range declared {
		declaredSet[name] = true
	}

	var missingInModels []string
	for name := range live {
		if !declaredSet[name] {
			missingInModels = append(missingInModels, name)
		}
	}
	if len(missingInModels) > 0 {
		sort.Strings(missingInModels)
		return &SchemaError{Detail: fmt.Sprintf("tables in database but missing in models: %v", missingInModels)}
	}

	var missingInDB []string
	for _, name := range declared {
		if _, ok := live[name]; !ok {
			missingInDB = append(missingInDB, name)
		}
	}
	if len(missingInDB) > 0 {
		return &SchemaError{Detail: fmt.Sprintf("tables in models but missing in database: %v", missingInDB)}
	}

	for _, name := range declared {
		desc, _ := reg.Lookup(name)
		if err := validateTable(live[name], desc); err != nil {
			return err
		}
		log.Printf("Schema validation completed for table '%s'", name)
	}

	return nil
}

func validateTable(live *LiveTable, desc *models.TableDescriptor) error {
	declaredCols := make(map[string]bool, len(desc.Columns))
	for _, col := range desc.Columns {
		declaredCols[col.Name] = true
	}

	var missingInModel []string
	for name := range live.Columns {
		if !declaredCols[name] {
			missingInModel = append(missingInModel, name)
		}
	}
	if len(missingInModel) > 0 {
		sort.Strings(missingInModel)
		return &SchemaError{
			Table:  desc.Name,
			Detail: fmt.Sprintf("columns in database but missing in model: %v", missingInModel),
		}
	}

	var missingInDB []string
	for name := range declaredCols {
		if _, ok := live.Columns[name]; !ok {
			missingInDB = append(missingInDB, name)
		}
	}
	if len(missingInDB) > 0 {
		sort.Strings(missingInDB)
		return &SchemaError{
			Table:  desc.Name,
			Detail: fmt.Sprintf("columns in model but missing in database: %v", missingInDB),
		}
	}

	for i := range desc.Columns {
		if err := validateColumn(live, desc.Name, &desc.Columns[i]); err != nil {
			return err
		}
	}

	return nil
}

func validateColumn(live *LiveTable, table string, spec *models.ColumnSpec) error {
	liveCol := live.Columns[spec.Name]

	if livePK := live.PrimaryKeys[spec.Name]; livePK != spec.PrimaryKey {
		return &SchemaError{
			Table: table, Column: spec.Name, Property: "primary key",
			Detail: fmt.Sprintf("db: %t, model: %t", livePK, spec.PrimaryKey),
		}
	}

	if liveCol.Nullable != spec.Nullable {
		return &SchemaError{
			Table: table, Column: spec.Name, Property: "nullable",
			Detail: fmt.Sprintf("db: %t, model: %t", liveCol.Nullable, spec.Nullable),
		}
	}

	liveFK, hasLiveFK := live.ForeignKeys[spec.Name]
	hasModelFK := spec.ForeignKey != nil
	if hasLiveFK != hasModelFK {
		return &SchemaError{
			Table: table, Column: spec.Name, Property: "foreign key",
			Detail: fmt.Sprintf("db: %t, model: %t", hasLiveFK, hasModelFK),
		}
	}
	if hasLiveFK && liveFK != *spec.ForeignKey {
		return &SchemaError{
			Table: table, Column: spec.Name, Property: "foreign key reference",
			Detail: fmt.Sprintf("db: %s.%s, model: %s.%s",
				liveFK.Table, liveFK.Column, spec.ForeignKey.Table, spec.ForeignKey.Column),
		}
	}

	if liveUnique := live.Unique[spec.Name]; liveUnique != spec.Unique {
		return &SchemaError{
			Table: table, Column: spec.Name, Property: "unique constraint",
			Detail: fmt.Sprintf("db: %t, model: %t", liveUnique, spec.Unique),
		}
	}

	if dbType, modelType := normalizeType(liveCol.DataType), normalizeType(spec.Type); dbType != modelType {
		// Type spellings may diverge, warning only.
		log.Printf("Warning: table '%s', column '%s': data type difference. DB: %s, Model: %s",
			table, spec.Name, liveCol.DataType, spec.Type)
	}

	return nil
}

// ValidateLive snapshots the live database and validates it against the
// registry. A returned SchemaError must abort startup.
func ValidateLive(ctx context.Context, inspector *Inspector, reg *models.Registry) error {
	snapshot, err := inspector.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to introspect database schema: %w", err)
	}
	return ValidateSchema(snapshot, reg)
}
