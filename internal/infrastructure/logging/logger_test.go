package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "production")

	log.Debug().Str("work_order_id", "wo-1").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if line["work_order_id"] != "wo-1" || line["service"] != "fleet-maintenance" {
		t.Fatalf("unexpected fields: %v", line)
	}
}

func TestNewWithWriter_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "chatty", "production")

	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line should be filtered, got %q", buf.String())
	}
	log.Info().Msg("shown")
	if buf.Len() == 0 {
		t.Fatalf("info line should be written")
	}
}
