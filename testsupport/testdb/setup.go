package testdb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/recorder"
)

// InitTestDb creates a migrated recorder database which is removed after the test
func InitTestDb(t *testing.T) *sql.DB {
	t.Helper()
	db, err := recorder.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("initTestDb: %v\n", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
