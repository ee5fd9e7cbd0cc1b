package agenda

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RefKind distinguishes the variants of a Ref.
type RefKind int

const (
	// RefNone marks the end of a chain.
	RefNone RefKind = iota
	// RefKey is a bare item key that must be looked up in an Index.
	RefKey
	// RefStub is an embedded item-like target, typically a link out of the
	// current agenda. Stubs carry no neighbors of their own.
	RefStub
)

func (k RefKind) String() string {
	switch k {
	case RefKey:
		return "key"
	case RefStub:
		return "stub"
	default:
		return "none"
	}
}

// Ref is a prev/next reference. On the wire it is either a string key, an
// object carrying at least href and title, or null. The variant is fixed at
// decode time.
type Ref struct {
	kind RefKind
	key  string
	stub *Item
}

// KeyRef returns a reference to the item with the given key. An empty key
// yields the zero Ref.
func KeyRef(key string) Ref {
	if key == "" {
		return Ref{}
	}
	return Ref{kind: RefKey, key: key}
}

// StubRef returns a reference that embeds its target directly. The stub's own
// Prev and Next are dropped.
func StubRef(stub Item) Ref {
	stub.Prev, stub.Next = Ref{}, Ref{}
	return Ref{kind: RefStub, key: stub.Href, stub: &stub}
}

func (r Ref) Kind() RefKind { return r.kind }

// Defined reports whether the reference is present at all.
func (r Ref) Defined() bool { return r.kind != RefNone }

// Key returns the referenced key, or the stub's href for stub references.
func (r Ref) Key() string { return r.key }

// Stub returns the embedded target of a stub reference.
func (r Ref) Stub() (*Item, bool) {
	if r.kind != RefStub {
		return nil, false
	}
	return r.stub, true
}

func (r Ref) String() string {
	if r.kind == RefNone {
		return "<none>"
	}
	return r.key
}

// stubWire is the object form of a reference.
type stubWire struct {
	Href   string `json:"href" yaml:"href"`
	Title  string `json:"title" yaml:"title"`
	Attach string `json:"attach,omitempty" yaml:"attach,omitempty"`
	Status Status `json:"status" yaml:"status,omitempty"`
}

func (w stubWire) ref() (Ref, error) {
	if w.Href == "" {
		return Ref{}, fmt.Errorf("reference object requires href")
	}
	// Objects without a title are treated as bare keys.
	if w.Title == "" {
		return KeyRef(w.Href), nil
	}
	return StubRef(Item{Href: w.Href, Title: w.Title, Attach: w.Attach, Status: w.Status}), nil
}

// UnmarshalJSON decodes a string, object or null reference.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*r = Ref{}
		return nil
	case data[0] == '"':
		var key string
		if err := json.Unmarshal(data, &key); err != nil {
			return fmt.Errorf("decode reference key: %w", err)
		}
		*r = KeyRef(key)
		return nil
	case data[0] == '{':
		var w stubWire
		if err := json.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("decode reference object: %w", err)
		}
		ref, err := w.ref()
		if err != nil {
			return err
		}
		*r = ref
		return nil
	default:
		return fmt.Errorf("reference must be a string, object or null, got %s", data)
	}
}

// MarshalJSON encodes the reference in the same forms UnmarshalJSON accepts.
func (r Ref) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case RefKey:
		return json.Marshal(r.key)
	case RefStub:
		return json.Marshal(stubWire{Href: r.stub.Href, Title: r.stub.Title, Attach: r.stub.Attach, Status: r.stub.Status})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML decodes a scalar, mapping or null reference.
func (r *Ref) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*r = Ref{}
			return nil
		}
		*r = KeyRef(value.Value)
		return nil
	case yaml.MappingNode:
		var w stubWire
		if err := value.Decode(&w); err != nil {
			return fmt.Errorf("line %d: decode reference object: %w", value.Line, err)
		}
		ref, err := w.ref()
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*r = ref
		return nil
	default:
		return fmt.Errorf("line %d: reference must be a scalar or mapping", value.Line)
	}
}

// IsZero lets yaml omitempty drop absent references.
func (r Ref) IsZero() bool { return r.kind == RefNone }

// MarshalYAML encodes the reference for YAML output.
func (r Ref) MarshalYAML() (any, error) {
	switch r.kind {
	case RefKey:
		return r.key, nil
	case RefStub:
		return stubWire{Href: r.stub.Href, Title: r.stub.Title, Attach: r.stub.Attach, Status: r.stub.Status}, nil
	default:
		return nil, nil
	}
}
