package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var ErrRecordNotObject = errors.New("card record must be a json object")

// RawField is one key of an inbound card record with its value kept as raw JSON.
type RawField struct {
	Key   string
	Value json.RawMessage
}

// RawRecord is the untyped request body of POST /card/.
//
// Keys keep the order in which they appear in the body, which is the order the
// back fields are rendered in. A key holding JSON null is still present.
type RawRecord struct {
	fields []RawField
	index  map[string]int
}

func newRawRecord(fields ...RawField) RawRecord {
	var r RawRecord
	for _, f := range fields {
		r.set(f.Key, f.Value)
	}
	return r
}

func (r *RawRecord) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrRecordNotObject
	}

	*r = RawRecord{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return ErrRecordNotObject
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return err
		}
		r.set(key, v)
	}
	_, err = dec.Token()
	return err
}

// Duplicated keys keep their first position and the last value.
func (r *RawRecord) set(key string, value json.RawMessage) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, RawField{Key: key, Value: value})
}

func (r RawRecord) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

func (r RawRecord) Get(key string) (json.RawMessage, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Text returns the value of key as text, see JSONText.
func (r RawRecord) Text(key string) string {
	v, _ := r.Get(key)
	return JSONText(v)
}

// Fields returns the record keys in body order.
func (r RawRecord) Fields() []RawField {
	out := make([]RawField, len(r.fields))
	copy(out, r.fields)
	return out
}

func (r RawRecord) Len() int { return len(r.fields) }

// JSONText renders a raw JSON value the way it is interpolated into text:
// strings lose their quotes, null becomes empty and every other value keeps its literal.
func JSONText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return strings.TrimSpace(string(trimmed))
}
