package agenda

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/agendanav/internal/core/classify"
)

func TestRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    RefKind
		key     string
		wantErr bool
	}{
		{name: "null", input: `null`, kind: RefNone},
		{name: "string key", input: `"Chair"`, kind: RefKey, key: "Chair"},
		{name: "empty string", input: `""`, kind: RefNone},
		{name: "stub object", input: `{"href":"../2024-01-17/","title":"Previous"}`, kind: RefStub, key: "../2024-01-17/"},
		{name: "object without title", input: `{"href":"Chair"}`, kind: RefKey, key: "Chair"},
		{name: "object without href", input: `{"title":"x"}`, wantErr: true},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ref
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, r.Kind())
			assert.Equal(t, tt.key, r.Key())
		})
	}
}

func TestRef_UnmarshalYAML(t *testing.T) {
	var doc struct {
		A Ref `yaml:"a"`
		B Ref `yaml:"b"`
		C Ref `yaml:"c"`
	}
	input := "a: Chair\nb: {href: ../x/, title: Other}\nc: null\n"
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	assert.Equal(t, RefKey, doc.A.Kind())
	assert.Equal(t, "Chair", doc.A.Key())

	stub, ok := doc.B.Stub()
	require.True(t, ok)
	assert.Equal(t, "Other", stub.Title)

	assert.False(t, doc.C.Defined())
}

func TestRef_JSONRoundTrip(t *testing.T) {
	item := Item{
		Href:  "Roll-Call",
		Title: "Roll Call",
		Prev:  StubRef(Item{Href: "../x/", Title: "X", Prev: KeyRef("ignored")}),
		Next:  KeyRef("Chair"),
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var got Item
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, item, got)

	stub, ok := got.Prev.Stub()
	require.True(t, ok)
	assert.False(t, stub.Prev.Defined(), "stubs carry no neighbors")
}

func TestDecode(t *testing.T) {
	for _, path := range []string{"testdata/board.json", "testdata/board.yaml"} {
		t.Run(path, func(t *testing.T) {
			idx, err := LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, 5, idx.Len())
			assert.Equal(t, []string{"Call-to-order", "Roll-Call", "Chair", "Treasurer", "Adjournment"}, idx.Keys())

			chair, ok := idx.Get("Chair")
			require.True(t, ok)
			assert.Equal(t, "Sam", chair.Shepherd)
			assert.True(t, chair.Status.Skippable)

			first, ok := idx.First()
			require.True(t, ok)
			prev, ok := idx.Follow(first.Prev)
			require.True(t, ok)
			assert.Equal(t, "../2024-01-17/", prev.Href)

			last, _ := idx.Get("Adjournment")
			_, ok = idx.Follow(last.Next)
			assert.False(t, ok)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantErr string
	}{
		{name: "missing href", input: `[{"title":"x"}]`, format: FormatJSON, wantErr: "href is required"},
		{name: "duplicate href", input: `[{"href":"A"},{"href":"A"}]`, format: FormatJSON, wantErr: "duplicate href"},
		{name: "malformed json", input: `[{`, format: FormatJSON, wantErr: "decode agenda json"},
		{name: "unknown format", input: `[]`, format: "toml", wantErr: "unsupported agenda format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	idx, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
	_, ok := idx.First()
	assert.False(t, ok)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("B.YAML"))
	assert.Equal(t, FormatJSON, FormatFromPath("agenda.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("agenda"))
}

func TestIndex_Lookup(t *testing.T) {
	idx, err := LoadFile("testdata/board.json")
	require.NoError(t, err)

	_, err = idx.Lookup("nope")
	require.ErrorIs(t, err, ErrItemNotFound)

	it, err := idx.Lookup("Chair")
	require.NoError(t, err)
	assert.Equal(t, classify.ClassExecutive, it.Class())
}

func TestIndex_List(t *testing.T) {
	idx, err := LoadFile("testdata/board.json")
	require.NoError(t, err)

	hrefs := func(items []*Item) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Href)
		}
		return out
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter", filter: Filter{}, want: []string{"Call-to-order", "Roll-Call", "Chair", "Treasurer", "Adjournment"}},
		{name: "glob", filter: Filter{Match: "C*"}, want: []string{"Call-to-order", "Chair"}},
		{name: "class", filter: Filter{Class: classify.ClassExecutive}, want: []string{"Chair", "Treasurer"}},
		{name: "shepherd", filter: Filter{Shepherd: "Kim"}, want: []string{"Treasurer"}},
		{name: "ready", filter: Filter{Ready: true}, want: []string{"Roll-Call"}},
		{name: "skippable", filter: Filter{Skippable: true}, want: []string{"Chair"}},
		{name: "combined", filter: Filter{Match: "*r*", Class: classify.ClassSpecialOrder}, want: []string{"Call-to-order", "Adjournment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.List(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hrefs(got))
		})
	}

	_, err = idx.List(Filter{Match: "[unterminated"})
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		idx, err := LoadFile("testdata/board.yaml")
		require.NoError(t, err)
		assert.NoError(t, Check(idx))
	})

	t.Run("dangling and cyclic", func(t *testing.T) {
		idx, err := NewIndex([]Item{
			{Href: "A", Next: KeyRef("B"), Prev: KeyRef("ghost")},
			{Href: "B", Next: KeyRef("A")},
		})
		require.NoError(t, err)

		err = Check(idx)
		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		require.Len(t, fieldErrs, 3)

		assert.Equal(t, `items["A"].prev`, fieldErrs[0].Field)
		assert.Contains(t, fieldErrs[0].Err.Error(), "unknown item")
		assert.Equal(t, `items["A"].next`, fieldErrs[1].Field)
		assert.Contains(t, fieldErrs[1].Err.Error(), "does not terminate")
		assert.Equal(t, `items["B"].next`, fieldErrs[2].Field)
	})
}
