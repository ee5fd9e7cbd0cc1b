package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalError(t *testing.T) {
	out := MarshalError("boom", map[string]any{"item": "Chair"})

	var got Error
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "boom", got.Message)
	assert.Equal(t, "Chair", got.Data["item"])
}

func TestMarshalError_Unmarshalable(t *testing.T) {
	out := MarshalError("boom", map[string]any{"ch": make(chan int)})
	assert.Contains(t, out, "json_error")
	assert.True(t, json.Valid([]byte(out)))
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]string{"a": "1"}))
	require.NoError(t, WriteLine(&buf, map[string]string{"b": "2"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{`{"a":"1"}`, `{"b":"2"}`}, lines)
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"n": 1}))
	assert.Equal(t, "{\n  \"n\": 1\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestFileReader(t *testing.T) {
	type doc struct {
		Href string `json:"href"`
	}

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"href":"A"}]`), 0o644))

		fr := NewFileReader[[]doc]("agenda", "")
		fr.Set(path)
		assert.False(t, fr.FromStdin())

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []doc{{Href: "A"}}, got)
	})

	t.Run("stdin", func(t *testing.T) {
		fr := NewFileReader[[]doc]("agenda", "")
		fr.Set("-")
		fr.stdin = strings.NewReader(`[{"href":"B"}]`)

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []doc{{Href: "B"}}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		fr := NewFileReader[[]doc]("agenda", "")
		fr.Set(filepath.Join(t.TempDir(), "nope.json"))

		_, err := fr.Read()
		require.ErrorContains(t, err, "open file")
	})
}
