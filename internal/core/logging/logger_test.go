package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("nav")
	logger.Info().Msg("test message")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if cmp := entry["cmp"]; cmp != "nav" {
		t.Errorf("Component() cmp = %v, want %q", cmp, "nav")
	}
	if msg := entry["message"]; msg != "test message" {
		t.Errorf("Component() message = %v, want %q", msg, "test message")
	}
}

func TestTag_AttachesHook(t *testing.T) {
	var buf bytes.Buffer
	logger := Tag(zerolog.New(&buf), "tui")

	logger.Info().Ctx(WithItem(context.Background(), "Chair")).Msg("moved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if got := entry["item"]; got != "Chair" {
		t.Errorf("item = %v, want %q", got, "Chair")
	}
	if got := entry["cmp"]; got != "tui" {
		t.Errorf("cmp = %v, want %q", got, "tui")
	}
}
