package ecdict

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Separators used when flattening the aggregated per-term sets.
const (
	translationSeparator = "; "
	posSeparator         = " / "
)

// Entry is the final aggregated value for one normalized term.
type Entry struct {
	Zh  string `json:"zh"`
	Pos string `json:"pos"`
}

// Map is an insertion-ordered mapping from normalized term to Entry.
//
// Key order is the first-seen order of matched words during the indexing
// pass, not sorted order, so that serializing the same inputs always
// produces byte-identical JSON.
type Map struct {
	order   []string
	entries map[string]Entry
}

// newMap flattens the accumulated builders into joined Entry values.
func newMap(order []string, builders map[string]*entryBuilder) *Map {
	m := &Map{
		order:   order,
		entries: make(map[string]Entry, len(order)),
	}
	for _, term := range order {
		b := builders[term]
		m.entries[term] = Entry{
			Zh:  strings.Join(b.translations, translationSeparator),
			Pos: strings.Join(b.pos, posSeparator),
		}
	}
	return m
}

// Get returns the entry for a normalized term. The zero Entry stands in
// for terms absent from the dictionary.
func (m *Map) Get(term string) (Entry, bool) {
	e, ok := m.entries[term]
	return e, ok
}

// Len returns the number of terms in the map.
func (m *Map) Len() int {
	return len(m.order)
}

// Terms returns the keys in insertion order.
func (m *Map) Terms() []string {
	return append([]string(nil), m.order...)
}

// MarshalJSON serializes the map as a JSON object with keys in insertion
// order. Strings are written without HTML escaping so that CJK text and
// the occasional "<" in a translation survive byte-for-byte.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, term := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(term)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := marshalNoEscape(m.entries[term])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape is json.Marshal with HTML escaping turned off.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
