// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Flashdeck Authors

package migrations

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose has no expectations set up, so the version-table query fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

// Seeding guarantees a progress row per (user, flashcard) pair, so deleting a
// flashcard or a user always has referencing rows once both exist. Without
// the cascades every such delete would die on the foreign key.
func TestInitSchema_ProgressRowsFollowTheirReferences(t *testing.T) {
	schema, err := migrationFiles.ReadFile("00001_init.sql")
	if err != nil {
		t.Fatalf("failed to read init migration: %v", err)
	}

	s := string(schema)
	if !strings.Contains(s, "REFERENCES flashcards (id) ON DELETE CASCADE") {
		t.Error("users_flashcards.flashcard_id must cascade on flashcard delete")
	}
	if !strings.Contains(s, "REFERENCES users (id) ON DELETE CASCADE") {
		t.Error("users_flashcards.user_id must cascade on user delete")
	}
}
