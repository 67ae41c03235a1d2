package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Outcome classifies a typed load.
type Outcome int

const (
	// Absent means the key holds nothing.
	Absent Outcome = iota
	// Found means the value decoded and validated.
	Found
	// Invalid means a value exists but is not a well-formed T.
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Absent:
		return "absent"
	case Found:
		return "found"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// LoadJSON reads key and decodes it into T. An empty value or JSON null is
// Absent. Undecodable values, and values rejected by validate when it is
// non-nil, are Invalid. Only storage failures produce an error.
func LoadJSON[T any](ctx context.Context, r Reader, key string, validate func(T) bool) (T, Outcome, error) {
	var zero T

	raw, err := r.Get(ctx, key)
	if err != nil {
		return zero, Absent, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return zero, Absent, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, Invalid, nil
	}
	if validate != nil && !validate(v) {
		return zero, Invalid, nil
	}
	return v, Found, nil
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(ctx context.Context, w Writer, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return w.Set(ctx, key, b)
}
