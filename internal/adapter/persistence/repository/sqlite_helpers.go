package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"fleet_maintenance/internal/domain/entities"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	return parseOptionalTime(s.String)
}

func nullableTimeToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func costSummaryToJSON(s *entities.CostSummary) (any, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func costSummaryFromJSON(s sql.NullString) (*entities.CostSummary, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var cs entities.CostSummary
	if err := json.Unmarshal([]byte(s.String), &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
