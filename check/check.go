// Package check verifies that two YAML buffers decode to the same data.
//
// The formatter only moves whitespace around, so its input and output must
// stay semantically identical. Equivalent decodes both buffers with a full
// YAML decoder and compares the resulting values, catching any rewrite
// that would change meaning.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/goccy/go-yaml"
)

var ErrNotEquivalent = errors.New("not equivalent")

// Equivalent returns nil when a and b decode to the same document stream,
// and an error wrapping ErrNotEquivalent (or a decode error) otherwise.
func Equivalent(a, b []byte) error {
	da, err := docs(a)
	if err != nil {
		return err
	}
	db, err := docs(b)
	if err != nil {
		return err
	}
	if len(da) != len(db) {
		return fmt.Errorf("%w: %d documents vs %d", ErrNotEquivalent, len(da), len(db))
	}
	for i := range da {
		if !reflect.DeepEqual(da[i], db[i]) {
			return fmt.Errorf("%w: document %d differs", ErrNotEquivalent, i)
		}
	}
	return nil
}

func docs(b []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var ds []any
	for {
		var v any
		err := dec.Decode(&v)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ds = append(ds, v)
	}
	return ds, nil
}
