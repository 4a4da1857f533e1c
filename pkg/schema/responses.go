package schema

import (
	"encoding/json"
	"fmt"
)

// Result is the normalized payload of a successful call. It holds either a single
// JSON value or a list of them.
type Result struct {
	single json.RawMessage
	many   []json.RawMessage
	isOne  bool
}

// NewSingle wraps one JSON value.
func NewSingle(v json.RawMessage) Result {
	return Result{single: v, isOne: true}
}

// NewMany wraps a list. A nil list is stored as an empty one.
func NewMany(vs []json.RawMessage) Result {
	if vs == nil {
		vs = []json.RawMessage{}
	}
	return Result{many: vs}
}

// IsSingle reports whether the exchange returned exactly one element (or a bare object).
func (r Result) IsSingle() bool { return r.isOne }

// Single returns the single value, or nil when the result is a list.
func (r Result) Single() json.RawMessage {
	if !r.isOne {
		return nil
	}
	return r.single
}

// Many returns the list, or nil when the result is a single value.
func (r Result) Many() []json.RawMessage {
	if r.isOne {
		return nil
	}
	return r.many
}

// Len is 1 for a single value, else the list length.
func (r Result) Len() int {
	if r.isOne {
		return 1
	}
	return len(r.many)
}

// DecodeOne unmarshals the single value into v.
func (r Result) DecodeOne(v any) error {
	if !r.isOne {
		return fmt.Errorf("result holds %d elements, not one", len(r.many))
	}
	return json.Unmarshal(r.single, v)
}

// DecodeAll unmarshals the whole result into v, which should point to a slice.
// A single value decodes as a one-element slice.
func (r Result) DecodeAll(v any) error {
	if r.isOne {
		return json.Unmarshal(wrapArray(r.single), v)
	}
	raw, err := json.Marshal(r.many)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// MarshalJSON renders the value as the exchange sent it.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.isOne {
		if len(r.single) == 0 {
			return []byte("null"), nil
		}
		return r.single, nil
	}
	return json.Marshal(r.many)
}

func wrapArray(v json.RawMessage) []byte {
	out := make([]byte, 0, len(v)+2)
	out = append(out, '[')
	out = append(out, v...)
	return append(out, ']')
}
