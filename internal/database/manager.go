package database

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"echo_api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is the loosely typed payload shape used across the CRUD boundary:
// column name to null, bool, number, string, or nested JSON value. The same
// shape serves as an equality-only query predicate.
type Record map[string]any

// Manager is the generic CRUD engine. Every operation is addressed by table
// name, runs in its own transaction, and speaks Records on both sides.
// Construct one per process with the shared pool and the startup registry.
type Manager struct {
	pool      *pgxpool.Pool
	registry  *models.Registry
	inspector *Inspector
}

func NewManager(pool *pgxpool.Pool, registry *models.Registry) *Manager {
	return &Manager{
		pool:      pool,
		registry:  registry,
		inspector: NewInspector(pool),
	}
}

// withTx scopes one operation to one unit-of-work: commit on success,
// rollback on any error. Known typed errors pass through verbatim; anything
// else is logged with the operation identity and wrapped so callers never see
// driver-specific error shapes.
func (m *Manager) withTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return &DatabaseError{Op: op, Err: err}
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		if isKnown(err) {
			return err
		}
		log.Printf("Database error in %s: %v", op, err)
		return &DatabaseError{Op: op, Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &DatabaseError{Op: op, Err: err}
	}
	return nil
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// buildWhere turns a query record into an AND-joined equality predicate over
// the columns that actually exist; unknown keys are dropped silently. A nil
// value compares with IS NULL, since col = NULL matches nothing. Keys are
// sorted so generated SQL is deterministic.
func buildWhere(query Record, columns map[string]bool) (string, []any) {
	keys := make([]string, 0, len(query))
	for key := range query {
		if columns[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return "", nil
	}

	conds := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for _, key := range keys {
		if query[key] == nil {
			conds = append(conds, ident(key)+" IS NULL")
			continue
		}
		conds = append(conds, fmt.Sprintf("%s = $%d", ident(key), len(args)+1))
		args = append(args, query[key])
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// liveColumnSet reflects the current column set of a table. An empty set
// means the table does not exist.
func (m *Manager) liveColumnSet(ctx context.Context, table string) (map[string]bool, error) {
	columns, err := m.inspector.TableColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q does not exist", table)
	}
	set := make(map[string]bool, len(columns))
	for _, col := range columns {
		set[col.Name] = true
	}
	return set, nil
}

// livePrimaryKey reflects the primary key column of a table.
func (m *Manager) livePrimaryKey(ctx context.Context, table string) (string, error) {
	pks, err := m.inspector.PrimaryKeyColumns(ctx, table)
	if err != nil {
		return "", err
	}
	if len(pks) == 0 {
		return "", fmt.Errorf("table %q has no primary key", table)
	}
	return pks[0], nil
}

// Create inserts one row and returns the generated primary key as a string.
// created/updated stamps are written here; caller-supplied values for them
// are overwritten.
func (m *Manager) Create(ctx context.Context, table string, data Record) (string, error) {
	op := "create " + table
	log.Printf("Attempting to create new entry in table: %s", table)

	if len(data) == 0 {
		return "", &ValidationError{Message: "data to create must be provided"}
	}

	desc, ok := m.registry.Lookup(table)
	if !ok {
		return "", &ModelNotFoundError{Table: table}
	}
	pk := desc.PrimaryKey()

	payload := make(Record, len(data)+2)
	for key, value := range data {
		payload[key] = value
	}
	coerceDates(payload)

	now := compactTimestamp(time.Now())
	payload["created"] = now
	payload["updated"] = now

	columns := make([]string, 0, len(payload))
	for key := range payload {
		if desc.Column(key) == nil {
			return "", &ValidationError{Message: fmt.Sprintf("unknown column %q for table %q", key, table)}
		}
		columns = append(columns, key)
	}
	sort.Strings(columns)

	quoted := make([]string, 0, len(columns))
	placeholders := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for i, column := range columns {
		quoted = append(quoted, ident(column))
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, payload[column])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s::text",
		ident(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
		ident(pk.Name),
	)

	var id string
	err := m.withTx(ctx, op, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return "", err
	}

	log.Printf("Successfully created entry with id: %s", id)
	return id, nil
}

// Read returns every row matching the query predicates, or all rows when the
// query is empty. The table's column set is reflected per call; query keys
// that name no real column are dropped. Identifier fields come back as
// strings and the legacy "None" sentinel as null.
func (m *Manager) Read(ctx context.Context, table string, query Record) ([]Record, error) {
	op := "read " + table
	log.Printf("Attempting to read entries from table: %s with query: %v", table, query)

	columns, err := m.liveColumnSet(ctx, table)
	if err != nil {
		return nil, &DatabaseError{Op: op, Err: err}
	}

	where, args := buildWhere(query, columns)
	sql := "SELECT * FROM " + ident(table) + where

	var results []Record
	err = m.withTx(ctx, op, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		fields := rows.FieldDescriptions()
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return err
			}
			record := make(Record, len(fields))
			for i, field := range fields {
				record[field.Name] = values[i]
			}
			stringifyIdentifiers(record)
			normalizeNullSentinel(record)
			results = append(results, record)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Successfully read %d entries from table: %s", len(results), table)
	return results, nil
}

// findMatch resolves a query to exactly one primary key value. Zero matches
// is a NotFoundError; more than one is rejected outright so that update and
// delete never pick a row nondeterministically.
func (m *Manager) findMatch(ctx context.Context, tx pgx.Tx, table, pkColumn string, query Record, columns map[string]bool) (string, error) {
	where, args := buildWhere(query, columns)
	sql := fmt.Sprintf("SELECT %s::text FROM %s%s LIMIT 2", ident(pkColumn), ident(table), where)

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(ids) {
	case 0:
		return "", &NotFoundError{Table: table}
	case 1:
		return ids[0], nil
	default:
		return "", &ValidationError{Message: fmt.Sprintf("query matches more than one row in table %q", table)}
	}
}

// Update modifies the single row matching the query and returns its primary
// key as a string. The updated stamp is overwritten here regardless of what
// the caller sent.
func (m *Manager) Update(ctx context.Context, table string, query Record, data Record) (string, error) {
	op := "update " + table
	log.Printf("Attempting to update entry in table: %s", table)

	if len(query) == 0 {
		return "", &ValidationError{Message: "query must be provided"}
	}
	if len(data) == 0 {
		return "", &ValidationError{Message: "data to update must be provided"}
	}

	columns, err := m.liveColumnSet(ctx, table)
	if err != nil {
		return "", &DatabaseError{Op: op, Err: err}
	}
	pkColumn, err := m.livePrimaryKey(ctx, table)
	if err != nil {
		return "", &DatabaseError{Op: op, Err: err}
	}

	payload := make(Record, len(data)+1)
	for key, value := range data {
		payload[key] = value
	}
	coerceDates(payload)
	payload["updated"] = compactTimestamp(time.Now())

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var id string
	err = m.withTx(ctx, op, func(tx pgx.Tx) error {
		matched, err := m.findMatch(ctx, tx, table, pkColumn, query, columns)
		if err != nil {
			return err
		}

		assignments := make([]string, 0, len(keys))
		args := make([]any, 0, len(keys)+1)
		for i, key := range keys {
			assignments = append(assignments, fmt.Sprintf("%s = $%d", ident(key), i+1))
			args = append(args, payload[key])
		}
		args = append(args, matched)

		sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s::text = $%d",
			ident(table), strings.Join(assignments, ", "), ident(pkColumn), len(args))
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		id = matched
		return nil
	})
	if err != nil {
		return "", err
	}

	log.Printf("Successfully updated entry with id: %s in table: %s", id, table)
	return id, nil
}

// Delete removes the single row matching the query and returns its primary
// key as a string.
func (m *Manager) Delete(ctx context.Context, table string, query Record) (string, error) {
	op := "delete " + table
	log.Printf("Attempting to delete entry from table: %s", table)

	if len(query) == 0 {
		return "", &ValidationError{Message: "query must be provided"}
	}

	columns, err := m.liveColumnSet(ctx, table)
	if err != nil {
		return "", &DatabaseError{Op: op, Err: err}
	}
	pkColumn, err := m.livePrimaryKey(ctx, table)
	if err != nil {
		return "", &DatabaseError{Op: op, Err: err}
	}

	var id string
	err = m.withTx(ctx, op, func(tx pgx.Tx) error {
		matched, err := m.findMatch(ctx, tx, table, pkColumn, query, columns)
		if err != nil {
			return err
		}

		sql := fmt.Sprintf("DELETE FROM %s WHERE %s::text = $1", ident(table), ident(pkColumn))
		if _, err := tx.Exec(ctx, sql, matched); err != nil {
			return err
		}

		id = matched
		return nil
	})
	if err != nil {
		return "", err
	}

	log.Printf("Successfully deleted entry with id: %s from table: %s", id, table)
	return id, nil
}

// ColumnMetadata is the per-column schema shape served to diagnostic callers.
type ColumnMetadata struct {
	Type        string   `json:"type"`
	Nullable    bool     `json:"nullable"`
	PrimaryKey  bool     `json:"primary_key"`
	Unique      bool     `json:"unique"`
	HasDefault  bool     `json:"has_default"`
	ForeignKeys []string `json:"foreign_keys"`
}

// ListTables returns every registered table name.
func (m *Manager) ListTables() []string {
	return m.registry.TableNames()
}

// GetSchema returns the declared schema of a table for diagnostic use. The
// registry and the live database are guaranteed to agree after startup
// validation.
func (m *Manager) GetSchema(table string) (map[string]ColumnMetadata, error) {
	desc, ok := m.registry.Lookup(table)
	if !ok {
		return nil, &ModelNotFoundError{Table: table}
	}

	schema := make(map[string]ColumnMetadata, len(desc.Columns))
	for _, col := range desc.Columns {
		meta := ColumnMetadata{
			Type:        col.Type,
			Nullable:    col.Nullable,
			PrimaryKey:  col.PrimaryKey,
			Unique:      col.Unique,
			HasDefault:  col.HasDefault,
			ForeignKeys: []string{},
		}
		if col.ForeignKey != nil {
			meta.ForeignKeys = append(meta.ForeignKeys, col.ForeignKey.Table+"."+col.ForeignKey.Column)
		}
		schema[col.Name] = meta
	}
	return schema, nil
}

// Import bulk-inserts rows into a table, optionally truncating it first.
// Every row gets fresh created/updated stamps. Returns the number of rows
// inserted; the whole import is one transaction.
func (m *Manager) Import(ctx context.Context, table string, rows []Record, overwrite bool) (int, error) {
	op := "import " + table
	log.Printf("Attempting to import %d rows to table: %s", len(rows), table)

	if len(rows) == 0 {
		return 0, &ValidationError{Message: "no data to import"}
	}

	desc, ok := m.registry.Lookup(table)
	if !ok {
		return 0, &ModelNotFoundError{Table: table}
	}

	now := compactTimestamp(time.Now())
	err := m.withTx(ctx, op, func(tx pgx.Tx) error {
		if overwrite {
			log.Printf("Truncating table: %s", table)
			if _, err := tx.Exec(ctx, "DELETE FROM "+ident(table)); err != nil {
				return err
			}
		}

		for _, row := range rows {
			payload := make(Record, len(row)+2)
			for key, value := range row {
				payload[key] = value
			}
			coerceDates(payload)
			payload["created"] = now
			payload["updated"] = now

			columns := make([]string, 0, len(payload))
			for key := range payload {
				if desc.Column(key) == nil {
					return &ValidationError{Message: fmt.Sprintf("unknown column %q for table %q", key, table)}
				}
				columns = append(columns, key)
			}
			sort.Strings(columns)

			quoted := make([]string, 0, len(columns))
			placeholders := make([]string, 0, len(columns))
			args := make([]any, 0, len(columns))
			for i, column := range columns {
				quoted = append(quoted, ident(column))
				placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
				args = append(args, payload[column])
			}

			sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
				ident(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Successfully imported %d records to table: %s", len(rows), table)
	return len(rows), nil
}
