package models

import (
	"fmt"
	"sort"
)

// Registry maps table names to their descriptors. It is populated once at
// startup and read-only afterwards, giving the data-access layer O(1) model
// resolution by table name.
type Registry struct {
	tables map[string]*TableDescriptor
}

func NewRegistry(descriptors ...*TableDescriptor) (*Registry, error) {
	r := &Registry{tables: make(map[string]*TableDescriptor, len(descriptors))}
	for _, d := range descriptors {
		if err := r.register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(d *TableDescriptor) error {
	if d.Name == "" {
		return fmt.Errorf("table descriptor is missing a name")
	}
	if _, exists := r.tables[d.Name]; exists {
		return fmt.Errorf("table %q registered twice", d.Name)
	}
	if d.PrimaryKey() == nil {
		return fmt.Errorf("table %q has no primary key column", d.Name)
	}
	r.tables[d.Name] = d
	return nil
}

// Lookup resolves a table name to its descriptor.
func (r *Registry) Lookup(table string) (*TableDescriptor, bool) {
	d, ok := r.tables[table]
	return d, ok
}

// TableNames returns all registered table names, sorted.
func (r *Registry) TableNames() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
