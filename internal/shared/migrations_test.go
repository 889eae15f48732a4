package shared

import (
	"testing"
)

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("migrations failed: %v", err)
		}

		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'").Scan(&name)
		if err != nil {
			t.Fatalf("sessions table missing: %v", err)
		}

		t.Run("is idempotent", func(t *testing.T) {
			if err := RunMigrations(db); err != nil {
				t.Errorf("second run failed: %v", err)
			}
		})
	})

	t.Run("RollbackMigration", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("migrations failed: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("rollback failed: %v", err)
		}

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='sessions'").Scan(&count)
		if err != nil {
			t.Fatal(err)
		}
		if count != 0 {
			t.Error("sessions table should be dropped after rollback")
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("expected error when nothing left to rollback")
		}
	})

	t.Run("loadMigrations pairs up and down", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}
		for _, m := range migrations {
			if m.Up == "" || m.Down == "" {
				t.Errorf("migration %d incomplete", m.Version)
			}
		}
	})
}
