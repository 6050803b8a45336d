package shared

import (
	"database/sql"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	if err != nil {
		t.Fatalf("failed to inspect schema: %v", err)
	}
	return count > 0
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(migrations) == 0 {
		t.Fatal("expected at least one embedded migration")
	}

	for i, m := range migrations {
		if m.Up == "" || m.Down == "" {
			t.Errorf("migration %d is incomplete", m.Version)
		}
		if i > 0 && migrations[i-1].Version >= m.Version {
			t.Error("migrations should be sorted by version")
		}
	}
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !tableExists(t, db, "schema_migrations") {
		t.Error("schema_migrations table should exist")
	}
	if !tableExists(t, db, "storage") {
		t.Error("storage table should exist")
	}

	// Re-running is a no-op.
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second run should succeed: %v", err)
	}

	var applied int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatalf("failed to count applied migrations: %v", err)
	}
	migrations, _ := loadMigrations()
	if applied != len(migrations) {
		t.Errorf("expected %d applied migrations, got %d", len(migrations), applied)
	}
}

func TestRollbackMigration(t *testing.T) {
	db := openTestDB(t)

	t.Run("nothing to rollback", func(t *testing.T) {
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}
		// Roll everything back, then once more.
		migrations, _ := loadMigrations()
		for range migrations {
			if err := RollbackMigration(db); err != nil {
				t.Fatalf("failed to rollback: %v", err)
			}
		}
		if err := RollbackMigration(db); err == nil {
			t.Error("expected error with no applied migrations")
		}
	})

	t.Run("rollback drops the storage table", func(t *testing.T) {
		db := openTestDB(t)
		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tableExists(t, db, "storage") {
			t.Error("storage table should be dropped")
		}
	})
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain statement", "SELECT 1", "SELECT 1"},
		{"trailing comment", "SELECT 1 -- picks one", "SELECT 1"},
		{"comment only", "-- nothing here", ""},
		{"blank lines collapsed", "SELECT 1\n\n  \nFROM t", "SELECT 1\nFROM t"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripComments(tc.in); got != tc.want {
				t.Errorf("stripComments(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}
