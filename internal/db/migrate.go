package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS discovery_answers (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		step_number INTEGER NOT NULL,
		question_key TEXT NOT NULL,
		answer      TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		UNIQUE(project_id, question_key)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_discovery_answers_project ON discovery_answers(project_id)`,

	`CREATE TABLE IF NOT EXISTS brandscripts (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		content_json TEXT NOT NULL DEFAULT '{}',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_brandscripts_project ON brandscripts(project_id)`,

	`CREATE TABLE IF NOT EXISTS assets (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		asset_type TEXT NOT NULL,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL DEFAULT '',
		version    INTEGER NOT NULL DEFAULT 1,
		parent_id  TEXT REFERENCES assets(id),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assets_project ON assets(project_id)`,

	`CREATE TABLE IF NOT EXISTS conversations (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		asset_id   TEXT REFERENCES assets(id) ON DELETE CASCADE,
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		message    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_conversations_asset ON conversations(asset_id)`,

	`CREATE TABLE IF NOT EXISTS story_messages (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		role          TEXT NOT NULL CHECK(role IN ('user','assistant')),
		message       TEXT NOT NULL,
		parsed_fields TEXT,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_story_messages_project ON story_messages(project_id)`,
}
