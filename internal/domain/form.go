package domain

import (
	"github.com/spf13/cast"
)

// FieldKind selects how a submitted JSON value is coerced before insert.
type FieldKind int

const (
	TextField FieldKind = iota
	BoolField
)

// Field is one recognized key of a form. Aliases are older client key
// names consulted only when Key is absent from the body.
type Field struct {
	Key     string
	Aliases []string
	Kind    FieldKind
}

// Entry is a submitted field as it appeared in the request body, used
// for the notification rendering.
type Entry struct {
	Key   string
	Value any
}

// Inquiry is a persisted form record.
type Inquiry interface {
	TableName() string
	Bind(s Submission)
}

// Form describes one inquiry kind: which keys it accepts, where rows go
// and how the notification reads.
type Form struct {
	Kind    string
	Message string
	Subject string
	Intro   string
	Fields  []Field
	New     func() Inquiry
}

// Submission is the recognized subset of a request body after coercion.
type Submission struct {
	values  map[string]any
	entries []Entry
}

// Extract picks the form's fields out of body. Unknown keys are dropped;
// missing keys and values that cannot be coerced are left unset.
func (f *Form) Extract(body map[string]any) Submission {
	s := Submission{values: make(map[string]any, len(f.Fields))}
	for _, field := range f.Fields {
		key, raw, ok := lookup(body, field)
		if !ok {
			continue
		}
		value := coerce(field.Kind, raw)
		if value != nil {
			s.values[field.Key] = value
		}
		s.entries = append(s.entries, Entry{Key: key, Value: value})
	}
	return s
}

func lookup(body map[string]any, field Field) (string, any, bool) {
	if v, ok := body[field.Key]; ok {
		return field.Key, v, true
	}
	for _, alias := range field.Aliases {
		if v, ok := body[alias]; ok {
			return alias, v, true
		}
	}
	return "", nil, false
}

func coerce(kind FieldKind, raw any) any {
	if raw == nil {
		return nil
	}
	switch kind {
	case BoolField:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil
		}
		return b
	default:
		switch raw.(type) {
		case map[string]any, []any:
			return nil
		}
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil
		}
		return s
	}
}

// String returns the text value for key, or nil when it was not submitted.
func (s Submission) String(key string) *string {
	if v, ok := s.values[key].(string); ok {
		return &v
	}
	return nil
}

// Bool returns the boolean value for key, or nil when it was not submitted.
func (s Submission) Bool(key string) *bool {
	if v, ok := s.values[key].(bool); ok {
		return &v
	}
	return nil
}

// Entries lists the recognized fields in form order under the key the
// client used.
func (s Submission) Entries() []Entry {
	return s.entries
}
