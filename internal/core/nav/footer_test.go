package nav

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/agendanav/internal/core/agenda"
)

func TestBuildFooter(t *testing.T) {
	idx := linked(t, mk("one", "1"), mk("two", "2", color("commented")), mk("three", "3"))

	f, err := BuildFooter(get(t, idx, "two"), "", Options{}, idx)
	require.NoError(t, err)
	assert.Equal(t, "commented", f.Color)
	assert.Equal(t, "/one", f.Prev.Path)
	assert.Equal(t, "/three", f.Next.Path)

	f, err = BuildFooter(get(t, idx, "two"), "missing", Options{}, idx)
	require.NoError(t, err)
	assert.Equal(t, "missing", f.Color)

	f, err = BuildFooter(get(t, idx, "one"), "", Options{Mode: ModeQueue}, idx)
	require.NoError(t, err)
	assert.Equal(t, "blank", f.Color)
	assert.Equal(t, "/queue", f.Prev.Path, "queue mode always falls back to the listing")
	assert.Equal(t, "/queue", f.Next.Path)
}

func TestBuildFooter_JoinsFaults(t *testing.T) {
	loop := mk("X", "A")
	loop.Prev = agenda.KeyRef("X")
	idx, err := agenda.NewIndex([]agenda.Item{loop})
	require.NoError(t, err)

	f, err := BuildFooter(get(t, idx, "X"), "", Options{Mode: ModeQueue}, idx)
	require.ErrorIs(t, err, ErrCyclicChain)
	assert.Equal(t, KindNone, f.Prev.Kind)
	assert.Equal(t, "/queue", f.Next.Path)
}

func TestNavigator(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	idx := linked(t, mk("I", "9"), mk("A", "A", skippable), mk("B", "B"))
	n := NewNavigator(idx, "", logger)
	ctx := context.Background()

	t.Run("unknown key", func(t *testing.T) {
		_, err := n.Footer(ctx, "nope", ModeDefault, false)
		require.ErrorIs(t, err, agenda.ErrItemNotFound)
	})

	t.Run("footer", func(t *testing.T) {
		f, err := n.Footer(ctx, "I", ModeDefault, true)
		require.NoError(t, err)
		assert.Equal(t, "/flagged/B", f.Next.Path)
		assert.Equal(t, KindEmpty, f.Prev.Kind)
	})

	t.Run("step", func(t *testing.T) {
		next, ok, err := n.Step(ctx, "I", Next, ModeDefault, false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "A", next)

		_, ok, err = n.Step(ctx, "B", Next, ModeQueue, false)
		require.NoError(t, err)
		assert.False(t, ok, "section fallback is not an item")
	})
}

func TestNavigator_LogsCyclicChain(t *testing.T) {
	var buf bytes.Buffer
	loop := mk("X", "A")
	loop.Prev = agenda.KeyRef("X")
	idx, err := agenda.NewIndex([]agenda.Item{loop})
	require.NoError(t, err)

	n := NewNavigator(idx, "", zerolog.New(&buf))

	_, err = n.Resolve(context.Background(), "X", Prev, ModeQueue, false)
	require.ErrorIs(t, err, ErrCyclicChain)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "malformed chain")
}
