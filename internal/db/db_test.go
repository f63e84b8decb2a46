package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM theme_preferences").Scan(&count); err != nil {
		t.Fatalf("theme_preferences: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d rows", count)
	}
}

func TestThemeCheckConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO theme_preferences (visitor_id, theme) VALUES ('a', 'sepia')`); err == nil {
		t.Error("expected CHECK constraint to reject unknown theme")
	}
	if _, err := d.Exec(`INSERT INTO theme_preferences (visitor_id, theme) VALUES ('a', 'dark')`); err != nil {
		t.Errorf("insert dark: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "countrydir.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer d.Close()

	if d.Path() != path {
		t.Errorf("Path() = %q, want %q", d.Path(), path)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}
