package usecase

import (
	"time"
)

var fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func f64(v float64) *float64 { return &v }

func str(v string) *string { return &v }
