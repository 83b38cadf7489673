package response

import (
	"time"

	"fleet_maintenance/internal/usecase"
)

type RunReportResponse struct {
	RunID          string    `json:"run_id"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	DurationMs     int64     `json:"duration_ms"`
	Skipped        bool      `json:"skipped"`
	OrdersScanned  int       `json:"orders_scanned"`
	OrdersUpdated  int       `json:"orders_updated"`
	OrdersSkipped  int       `json:"orders_skipped"`
	EntriesUpdated int       `json:"entries_updated"`
	Failures       int       `json:"failures"`
}

func FromRunReport(r usecase.RunReport) RunReportResponse {
	return RunReportResponse{
		RunID:          r.RunID,
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
		DurationMs:     r.Duration.Milliseconds(),
		Skipped:        r.Skipped,
		OrdersScanned:  r.OrdersScanned,
		OrdersUpdated:  r.OrdersUpdated,
		OrdersSkipped:  r.OrdersSkipped,
		EntriesUpdated: r.EntriesUpdated,
		Failures:       r.Failures,
	}
}
