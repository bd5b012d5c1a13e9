package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get current version: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 for fresh database, got %d", version)
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql":      "CREATE TABLE first (id INTEGER PRIMARY KEY);",
		"002_add_table.sql": "CREATE TABLE second (id INTEGER PRIMARY KEY);",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to get version: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	for _, table := range []string{"first", "second"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist: %v", table, err)
		}
	}

	// Re-running applies nothing.
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("re-run failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on re-run, got %d", applied)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_good.sql": "CREATE TABLE good (id INTEGER PRIMARY KEY);",
		"002_bad.sql":  "CREATE TABLE bad (id INTEGER PRIMARY KEY; -- broken",
	}))

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected an error from the broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before the failure, got %d", applied)
	}

	version, verr := runner.CurrentVersion()
	if verr != nil {
		t.Fatalf("failed to get version: %v", verr)
	}
	if version != 1 {
		t.Errorf("expected version to stay at 1 after failed migration, got %d", version)
	}
}

func TestInvalidMigrationFilenames(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name  string
		files map[string]string
	}{
		{"missing underscore", map[string]string{"001.sql": "SELECT 1;"}},
		{"non-numeric version", map[string]string{"abc_init.sql": "SELECT 1;"}},
		{"zero version", map[string]string{"000_init.sql": "SELECT 1;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(db, migrationFS(tt.files))
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("expected an error for invalid migration filename")
			}
		})
	}
}

func TestDuplicateVersionsRejected(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_one.sql": "SELECT 1;",
		"001_two.sql": "SELECT 1;",
	}))

	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("expected duplicate versions to be rejected")
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	files := migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE t (id INTEGER PRIMARY KEY);",
	})
	runner := NewRunner(db, files)

	// Behind: migrations exist but have not run.
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected validation to fail before migrating")
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("expected validation to pass when up to date: %v", err)
	}

	// Ahead: the database was written by a newer build.
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected validation to fail for a newer schema version")
	}
}
