package kvstore

import "context"

type op struct {
	key    string
	value  []byte
	delete bool
}

// stagedWriter records writes for backends that apply a batch after the
// Update callback succeeds.
type stagedWriter struct {
	ops []op
}

func (w *stagedWriter) Set(_ context.Context, key string, value []byte) error {
	w.ops = append(w.ops, op{key: key, value: clone(value)})
	return nil
}

func (w *stagedWriter) Delete(_ context.Context, key string) error {
	w.ops = append(w.ops, op{key: key, delete: true})
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
