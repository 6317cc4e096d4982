package database

import (
	"context"
	"fmt"

	"echo_api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Inspector reads the live structure of the database out of
// information_schema. The validator snapshots every table once at startup;
// the CRUD engine re-reflects single tables per call.
type Inspector struct {
	pool   *pgxpool.Pool
	schema string
}

func NewInspector(pool *pgxpool.Pool) *Inspector {
	return &Inspector{pool: pool, schema: "public"}
}

// LiveColumn is one column as the database reports it.
type LiveColumn struct {
	Name     string
	DataType string
	Nullable bool
	Default  *string
}

// LiveTable is the introspected structure of one table.
type LiveTable struct {
	Name        string
	Columns     map[string]LiveColumn
	PrimaryKeys map[string]bool
	ForeignKeys map[string]models.ForeignKeyRef
	Unique      map[string]bool
}

// Snapshot is the introspected structure of every base table, keyed by name.
type Snapshot map[string]*LiveTable

// TableNames returns all base table names in the schema.
func (i *Inspector) TableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := i.pool.Query(ctx, query, i.schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// TableColumns returns the live column set of a single table, in ordinal
// order. An empty result means the table does not exist.
func (i *Inspector) TableColumns(ctx context.Context, table string) ([]LiveColumn, error) {
	query := `
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := i.pool.Query(ctx, query, i.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []LiveColumn
	for rows.Next() {
		var col LiveColumn
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.Default); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// PrimaryKeyColumns returns the primary key column names of a table.
func (i *Inspector) PrimaryKeyColumns(ctx context.Context, table string) ([]string, error) {
	query := `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY kcu.ordinal_position
	`

	rows, err := i.pool.Query(ctx, query, i.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pks []string
	for rows.Next() {
		var pk string
		if err := rows.Scan(&pk); err != nil {
			return nil, err
		}
		pks = append(pks, pk)
	}

	return pks, rows.Err()
}

// foreignKeys returns the foreign keys of a table, keyed by constrained
// column.
func (i *Inspector) foreignKeys(ctx context.Context, table string) (map[string]models.ForeignKeyRef, error) {
	query := `
		SELECT
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
	`

	rows, err := i.pool.Query(ctx, query, i.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fks := make(map[string]models.ForeignKeyRef)
	for rows.Next() {
		var column string
		var ref models.ForeignKeyRef
		if err := rows.Scan(&column, &ref.Table, &ref.Column); err != nil {
			return nil, err
		}
		fks[column] = ref
	}

	return fks, rows.Err()
}

// uniqueColumns returns the set of columns covered by a UNIQUE constraint.
func (i *Inspector) uniqueColumns(ctx context.Context, table string) (map[string]bool, error) {
	query := `
		SELECT DISTINCT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'UNIQUE'
			AND tc.table_schema = $1
			AND tc.table_name = $2
	`

	rows, err := i.pool.Query(ctx, query, i.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	unique := make(map[string]bool)
	for rows.Next() {
		var column string
		if err := rows.Scan(&column); err != nil {
			return nil, err
		}
		unique[column] = true
	}

	return unique, rows.Err()
}

// Snapshot introspects every base table. The result is used once, for
// startup validation, and then discarded.
func (i *Inspector) Snapshot(ctx context.Context) (Snapshot, error) {
	tables, err := i.TableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	snapshot := make(Snapshot, len(tables))
	for _, table := range tables {
		live := &LiveTable{
			Name:        table,
			Columns:     make(map[string]LiveColumn),
			PrimaryKeys: make(map[string]bool),
		}

		columns, err := i.TableColumns(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for %s: %w", table, err)
		}
		for _, col := range columns {
			live.Columns[col.Name] = col
		}

		pks, err := i.PrimaryKeyColumns(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to get primary keys for %s: %w", table, err)
		}
		for _, pk := range pks {
			live.PrimaryKeys[pk] = true
		}

		if live.ForeignKeys, err = i.foreignKeys(ctx, table); err != nil {
			return nil, fmt.Errorf("failed to get foreign keys for %s: %w", table, err)
		}

		if live.Unique, err = i.uniqueColumns(ctx, table); err != nil {
			return nil, fmt.Errorf("failed to get unique constraints for %s: %w", table, err)
		}

		snapshot[table] = live
	}

	return snapshot, nil
}
