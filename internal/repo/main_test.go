package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/trip-planner/migrations"
	"github.com/pkordes/trip-planner/testutil"
)

// TestMain applies all pending migrations once for the whole test binary so
// individual tests never think about schema state. Without a test database
// the integration tests skip themselves.
func TestMain(m *testing.M) {
	dsn := os.Getenv(testutil.DSNEnv)
	if dsn == "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	db, err := migrations.Open(ctx, dsn)
	if err != nil {
		log.Fatalf("TestMain: open db: %v", err)
	}

	if _, err := migrations.Up(ctx, db); err != nil {
		db.Close()
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
