package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenInMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ============================================================================
// FIXTURES
// ============================================================================

// sampleSnapshot returns a board with two cards and dark settings
func sampleSnapshot() models.Snapshot {
	snap := models.DefaultSnapshot()
	created := time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC)
	snap.Columns[0].Cards = []models.Card{{
		ID:          "card-1",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Go services",
		JobLink:     "https://acme.example/jobs/1",
		Tags:        []models.Tag{models.TagRemote, models.TagDreamJob},
		ColumnID:    models.ColumnJobList,
		DateCreated: created,
		ActionTask:  "Email recruiter",
		ActionDate:  "2025-04-10",
	}}
	snap.Columns[2].Cards = []models.Card{{
		ID:          "card-2",
		Title:       "SRE",
		Company:     "Globex",
		Tags:        []models.Tag{},
		IsPinned:    true,
		ColumnID:    models.ColumnApplied,
		DateCreated: created.Add(time.Hour),
	}}
	snap.Settings = models.Settings{Theme: models.Theme{Mode: models.ThemeDark, PrimaryColor: "#22C55E"}}
	return snap
}
