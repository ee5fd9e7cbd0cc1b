package logging

import (
	"context"
	"testing"
)

func TestWithItem(t *testing.T) {
	ctx := WithItem(context.Background(), "Treasurer")

	if got := GetItem(ctx); got != "Treasurer" {
		t.Errorf("GetItem() = %q, want %q", got, "Treasurer")
	}
}

func TestWithMode(t *testing.T) {
	ctx := WithMode(context.Background(), "flagged")

	if got := GetMode(ctx); got != "flagged" {
		t.Errorf("GetMode() = %q, want %q", got, "flagged")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetItem(ctx); got != "" {
		t.Errorf("GetItem() = %q, want empty string", got)
	}
	if got := GetMode(ctx); got != "" {
		t.Errorf("GetMode() = %q, want empty string", got)
	}
}
