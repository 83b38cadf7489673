package database

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_orders (
		id                         TEXT PRIMARY KEY,
		code                       TEXT NOT NULL,
		equipment_id               TEXT NOT NULL,
		title                      TEXT NOT NULL,
		description                TEXT NOT NULL DEFAULT '',
		status                     TEXT NOT NULL
		                           CHECK(status IN ('pending','in_progress','awaiting_parts','waiting_purchase','completed','cancelled')),
		approval_status            TEXT NOT NULL DEFAULT 'pending',
		started_at                 TEXT,
		completed_at               TEXT,
		completion_approval_status TEXT NOT NULL DEFAULT 'not_requested',
		completion_approved_by     TEXT NOT NULL DEFAULT '',
		completion_approved_at     TEXT,
		completion_notes           TEXT NOT NULL DEFAULT '',
		specification              TEXT,
		cost_summary               TEXT,
		created_by                 TEXT NOT NULL DEFAULT '',
		created_at                 TEXT NOT NULL,
		updated_at                 TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_work_orders_status ON work_orders(status)`,

	`CREATE TABLE IF NOT EXISTS time_tracking_events (
		id            TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		event         TEXT NOT NULL CHECK(event IN ('pause','resume')),
		timestamp     TEXT NOT NULL,
		reason        TEXT NOT NULL DEFAULT '',
		created_by    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_time_events_work_order ON time_tracking_events(work_order_id, timestamp)`,

	`CREATE TABLE IF NOT EXISTS labor_entries (
		id                   TEXT PRIMARY KEY,
		work_order_id        TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		employee_id          TEXT NOT NULL,
		hours_worked         REAL NOT NULL DEFAULT 0,
		hourly_rate_snapshot REAL NOT NULL,
		overtime_factor      REAL NOT NULL DEFAULT 1,
		total_cost           REAL NOT NULL DEFAULT 0,
		time_source          TEXT NOT NULL CHECK(time_source IN ('manual','auto')),
		work_date            TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		created_by           TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_labor_entries_work_order ON labor_entries(work_order_id, time_source)`,

	`CREATE TABLE IF NOT EXISTS consumable_entries (
		id                 TEXT PRIMARY KEY,
		work_order_id      TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		entry_type         TEXT NOT NULL CHECK(entry_type IN ('planned','actual')),
		item_name          TEXT NOT NULL,
		unit               TEXT NOT NULL DEFAULT '',
		quantity           REAL NOT NULL,
		unit_cost_snapshot REAL NOT NULL,
		total_cost         REAL NOT NULL,
		notes              TEXT NOT NULL DEFAULT '',
		created_by         TEXT NOT NULL DEFAULT '',
		created_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consumable_entries_work_order ON consumable_entries(work_order_id)`,

	`CREATE TABLE IF NOT EXISTS outsource_entries (
		id            TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		vendor_name   TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		planned_cost  REAL,
		actual_cost   REAL NOT NULL,
		created_by    TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outsource_entries_work_order ON outsource_entries(work_order_id)`,

	`CREATE TABLE IF NOT EXISTS approvals (
		id             TEXT PRIMARY KEY,
		reference_type TEXT NOT NULL CHECK(reference_type IN ('work_order','work_completion')),
		reference_id   TEXT NOT NULL,
		approver_id    TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL CHECK(status IN ('pending','approved','rejected')),
		notes          TEXT NOT NULL DEFAULT '',
		requested_by   TEXT NOT NULL DEFAULT '',
		requested_at   TEXT NOT NULL,
		decided_at     TEXT,
		cost_snapshot  TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_approvals_reference ON approvals(reference_type, reference_id)`,

	`CREATE TABLE IF NOT EXISTS requisitions (
		id            TEXT PRIMARY KEY,
		work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
		requested_by  TEXT NOT NULL,
		notes         TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL
		              CHECK(status IN ('pending','in_review','approved','partially_approved','rejected')),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_requisitions_work_order ON requisitions(work_order_id)`,

	`CREATE TABLE IF NOT EXISTS requisition_lines (
		id                      TEXT PRIMARY KEY,
		requisition_id          TEXT NOT NULL REFERENCES requisitions(id) ON DELETE CASCADE,
		line_number             INTEGER NOT NULL,
		part_id                 TEXT NOT NULL,
		description             TEXT NOT NULL DEFAULT '',
		quantity_requested      REAL NOT NULL,
		quantity_approved       REAL,
		foreman_status          TEXT NOT NULL DEFAULT 'pending',
		foreman_reviewer_id     TEXT NOT NULL DEFAULT '',
		foreman_decided_at      TEXT,
		foreman_remarks         TEXT NOT NULL DEFAULT '',
		storekeeper_status      TEXT NOT NULL DEFAULT 'pending',
		storekeeper_reviewer_id TEXT NOT NULL DEFAULT '',
		storekeeper_decided_at  TEXT,
		storekeeper_remarks     TEXT NOT NULL DEFAULT '',
		updated_at              TEXT NOT NULL,
		UNIQUE(requisition_id, line_number)
	)`,
}
