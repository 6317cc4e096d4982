package models

import (
	"reflect"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	t.Run("rejects duplicate tables", func(t *testing.T) {
		desc := &TableDescriptor{
			Name:    "studies",
			Columns: []ColumnSpec{{Name: "id", Type: "UUID", PrimaryKey: true}},
		}
		if _, err := NewRegistry(desc, desc); err == nil {
			t.Error("expected duplicate registration to fail")
		}
	})

	t.Run("rejects tables without a primary key", func(t *testing.T) {
		desc := &TableDescriptor{
			Name:    "events",
			Columns: []ColumnSpec{{Name: "name", Type: "TEXT"}},
		}
		if _, err := NewRegistry(desc); err == nil {
			t.Error("expected registration without primary key to fail")
		}
	})

	t.Run("lookup resolves by table name", func(t *testing.T) {
		registry, err := DefaultRegistry()
		if err != nil {
			t.Fatalf("DefaultRegistry() error = %v", err)
		}

		desc, ok := registry.Lookup("studies")
		if !ok {
			t.Fatal("Lookup(studies) not found")
		}
		if desc.Name != "studies" {
			t.Errorf("descriptor name = %q", desc.Name)
		}
		if pk := desc.PrimaryKey(); pk == nil || pk.Name != "id" {
			t.Errorf("primary key = %v, want id", pk)
		}

		if _, ok := registry.Lookup("nonexistent"); ok {
			t.Error("Lookup(nonexistent) should not resolve")
		}
	})

	t.Run("table names are sorted", func(t *testing.T) {
		registry, err := DefaultRegistry()
		if err != nil {
			t.Fatalf("DefaultRegistry() error = %v", err)
		}

		want := []string{"organizations", "participants", "studies", "tasks", "users"}
		if got := registry.TableNames(); !reflect.DeepEqual(got, want) {
			t.Errorf("TableNames() = %v, want %v", got, want)
		}
	})
}

func TestTableDescriptors(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}

	t.Run("every table carries audit stamps", func(t *testing.T) {
		for _, name := range registry.TableNames() {
			desc, _ := registry.Lookup(name)
			for _, stamp := range []string{"created", "updated"} {
				col := desc.Column(stamp)
				if col == nil {
					t.Errorf("table %s is missing the %s column", name, stamp)
					continue
				}
				if col.Nullable {
					t.Errorf("table %s: %s must not be nullable", name, stamp)
				}
			}
		}
	})

	t.Run("foreign keys point at registered tables", func(t *testing.T) {
		for _, name := range registry.TableNames() {
			desc, _ := registry.Lookup(name)
			for _, col := range desc.Columns {
				if col.ForeignKey == nil {
					continue
				}
				target, ok := registry.Lookup(col.ForeignKey.Table)
				if !ok {
					t.Errorf("table %s, column %s: foreign key targets unregistered table %s",
						name, col.Name, col.ForeignKey.Table)
					continue
				}
				if target.Column(col.ForeignKey.Column) == nil {
					t.Errorf("table %s, column %s: foreign key targets missing column %s.%s",
						name, col.Name, col.ForeignKey.Table, col.ForeignKey.Column)
				}
			}
		}
	})
}
