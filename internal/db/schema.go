package db

import (
	"database/sql"
	"fmt"
)

// schema holds the session tables. Documents are stored normalized with
// explicit positions; child rows cascade on delete so removing a
// template or section takes its fields with it.
var schema = []string{
	`CREATE TABLE templates (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE sections (
		id          TEXT PRIMARY KEY,
		template_id TEXT NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		position    INTEGER NOT NULL
	)`,
	`CREATE TABLE fields (
		id          TEXT PRIMARY KEY,
		section_id  TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		type        TEXT NOT NULL
		            CHECK(type IN ('label','text','number','boolean','enum')),
		label       TEXT NOT NULL,
		required    INTEGER NOT NULL DEFAULT 0,
		placeholder TEXT NOT NULL DEFAULT '',
		options     TEXT NOT NULL DEFAULT '',
		label_style TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL
	)`,
	`CREATE INDEX idx_sections_template ON sections(template_id, position)`,
	`CREATE INDEX idx_fields_section ON fields(section_id, position)`,
}

func applySchema(db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
