// Package timeledger turns a work order's pause/resume log into active work time.
//
// ComputeElapsed is pure: the evaluation instant is an argument, so the reconciliation job
// and the live timer endpoint get identical answers for identical inputs.
package timeledger

import (
	"sort"
	"time"

	"fleet_maintenance/internal/domain/entities"
)

const msPerHour = float64(time.Hour / time.Millisecond)

// Elapsed is the result of replaying a work order's time log.
type Elapsed struct {
	ElapsedMs    int64   `json:"elapsed_ms"`
	ElapsedHours float64 `json:"elapsed_hours"`
	IsPaused     bool    `json:"is_paused"`
	PausedReason string  `json:"paused_reason,omitempty"`
}

// Duration returns the elapsed active time as a time.Duration.
func (e Elapsed) Duration() time.Duration {
	return time.Duration(e.ElapsedMs) * time.Millisecond
}

// explicitPauseReason labels an open pause event on a non-blocking status.
const explicitPauseReason = "Paused"

// ComputeElapsed returns the active time between startedAt and completedAt (or now),
// excluding every paused interval.
//
// Events are sorted by timestamp before folding; storage order is never trusted. A pause
// opens an interval only when none is open, a resume closes it. An interval still open at
// the end boundary counts as paused up to that boundary.
func ComputeElapsed(
	startedAt, completedAt *time.Time,
	events []entities.TimeTrackingEvent,
	status entities.WorkOrderStatus,
	now time.Time,
) Elapsed {
	if startedAt == nil {
		return Elapsed{}
	}

	start := *startedAt
	end := now
	completed := completedAt != nil
	if completed {
		end = *completedAt
	}
	if !end.After(start) {
		return Elapsed{IsPaused: !completed && status.IsBlocking(), PausedReason: pausedReason(status, false, completed)}
	}

	ordered := sorted(events)

	var (
		paused     time.Duration
		pauseStart time.Time
		open       bool
	)
	for _, ev := range ordered {
		ts := clamp(ev.Timestamp, start, end)
		switch ev.Event {
		case entities.TimeEventPause:
			if !open {
				pauseStart = ts
				open = true
			}
		case entities.TimeEventResume:
			if open {
				paused += ts.Sub(pauseStart)
				open = false
			}
		}
	}

	// An unmatched pause keeps counting until the end boundary: "now" for a running order,
	// completedAt for a finished one.
	if open {
		paused += end.Sub(pauseStart)
	}

	total := end.Sub(start)
	active := total - paused
	if active < 0 {
		active = 0
	}
	if active > total {
		active = total
	}

	ms := active.Milliseconds()
	isPaused := !completed && (open || status.IsBlocking())
	return Elapsed{
		ElapsedMs:    ms,
		ElapsedHours: float64(ms) / msPerHour,
		IsPaused:     isPaused,
		PausedReason: pausedReason(status, open, completed),
	}
}

// HasOpenPause reports whether the log ends inside a pause, regardless of status.
func HasOpenPause(events []entities.TimeTrackingEvent) bool {
	open := false
	for _, ev := range sorted(events) {
		switch ev.Event {
		case entities.TimeEventPause:
			open = true
		case entities.TimeEventResume:
			open = false
		}
	}
	return open
}

// OpenPause returns the pause event that opened the interval the log ends in, if any.
// Pauses recorded while an interval is already open do not replace it.
func OpenPause(events []entities.TimeTrackingEvent) (entities.TimeTrackingEvent, bool) {
	var (
		pause entities.TimeTrackingEvent
		open  bool
	)
	for _, ev := range sorted(events) {
		switch ev.Event {
		case entities.TimeEventPause:
			if !open {
				pause = ev
				open = true
			}
		case entities.TimeEventResume:
			open = false
		}
	}
	if !open {
		return entities.TimeTrackingEvent{}, false
	}
	return pause, true
}

func sorted(events []entities.TimeTrackingEvent) []entities.TimeTrackingEvent {
	ordered := make([]entities.TimeTrackingEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})
	return ordered
}

func pausedReason(status entities.WorkOrderStatus, open, completed bool) string {
	if completed {
		return ""
	}
	if r := status.BlockingReason(); r != "" {
		return r
	}
	if open {
		return explicitPauseReason
	}
	return ""
}

func clamp(ts, lo, hi time.Time) time.Time {
	if ts.Before(lo) {
		return lo
	}
	if ts.After(hi) {
		return hi
	}
	return ts
}
