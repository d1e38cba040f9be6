package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Statements are idempotent
// (CREATE IF NOT EXISTS) except ALTER TABLE, whose duplicate-column errors
// Migrate tolerates.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_groups (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		period_start TEXT NOT NULL,
		period_end   TEXT NOT NULL,
		kind         TEXT NOT NULL CHECK(kind IN ('timetable_1730','default')),
		study_days   INTEGER NOT NULL DEFAULT 6,
		review_days  INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS scheduled_plans (
		id               TEXT PRIMARY KEY,
		group_id         TEXT NOT NULL REFERENCES plan_groups(id) ON DELETE CASCADE,
		plan_date        TEXT NOT NULL,
		block_index      INTEGER NOT NULL,
		content_type     TEXT NOT NULL CHECK(content_type IN ('book','lecture','custom')),
		content_id       TEXT NOT NULL,
		planned_start    INTEGER NOT NULL,
		planned_end      INTEGER NOT NULL,
		chapter          TEXT NOT NULL DEFAULT '',
		reschedulable    INTEGER NOT NULL DEFAULT 1,
		start_time       TEXT NOT NULL,
		end_time         TEXT NOT NULL,
		cycle_day_number INTEGER NOT NULL,
		date_type        TEXT NOT NULL CHECK(date_type IN ('study','review','exclusion'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scheduled_plans_group
		ON scheduled_plans(group_id, plan_date, block_index)`,

	`CREATE INDEX IF NOT EXISTS idx_scheduled_plans_content
		ON scheduled_plans(group_id, content_type, content_id)`,
}

// Migrate applies the schema. Safe to run repeatedly.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
