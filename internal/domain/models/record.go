package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrBadValue     = errors.New("bad value")
)

// Record is a decoded Garmin Connect JSON object. Numbers are json.Number.
type Record map[string]any

// Value returns the value under key. The key must exist; a null value is
// returned as nil.
func (r Record) Value(key string) (any, error) {
	v, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return v, nil
}

// Opt returns the value under key or nil when it is absent.
func (r Record) Opt(key string) any {
	return r[key]
}

// Has reports whether key is present, even if null.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Record returns the nested object under key.
func (r Record) Record(key string) (Record, error) {
	v, err := r.Value(key)
	if err != nil {
		return nil, err
	}
	rec, ok := AsRecord(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an object", ErrBadValue, key)
	}
	return rec, nil
}

// OptRecord returns the nested object under key when present and non-null.
func (r Record) OptRecord(key string) (Record, bool) {
	rec, ok := AsRecord(r[key])
	return rec, ok
}

// List returns the array under key. A null array is returned as nil.
func (r Record) List(key string) ([]any, error) {
	v, err := r.Value(key)
	if err != nil || v == nil {
		return nil, err
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", ErrBadValue, key)
	}
	return l, nil
}

// String returns the value under key formatted as a tag value.
func (r Record) String(key string) (string, error) {
	v, err := r.Value(key)
	if err != nil {
		return "", err
	}
	return TagValue(v), nil
}

// Path walks nested objects, returning the value at the last key.
func (r Record) Path(keys ...string) (any, error) {
	cur := r
	for i, k := range keys {
		if i == len(keys)-1 {
			v, err := cur.Value(k)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", strings.Join(keys, "."), err)
			}
			return v, nil
		}
		next, err := cur.Record(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.Join(keys, "."), err)
		}
		cur = next
	}
	return nil, fmt.Errorf("%w: empty path", ErrMissingField)
}

// AsRecord converts a decoded JSON object to a Record.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]any:
		return Record(m), m != nil
	default:
		return nil, false
	}
}

// FieldValue normalizes a decoded JSON value for use as a point field:
// json.Number becomes int64 when integral and float64 otherwise.
func FieldValue(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return string(n)
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}

// TagValue formats a decoded JSON value as a tag string. Booleans are
// written True/False.
func TagValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		// Capitalized to match series already stored by earlier importers.
		if t {
			return "True"
		}
		return "False"
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Millis interprets v as an epoch timestamp in milliseconds.
func Millis(v any) (time.Time, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return UnixMillis(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrBadValue, n)
		}
		return UnixMillis(int64(f)), nil
	case int64:
		return UnixMillis(n), nil
	case float64:
		return UnixMillis(int64(n)), nil
	default:
		return time.Time{}, fmt.Errorf("%w: timestamp %v", ErrBadValue, v)
	}
}
