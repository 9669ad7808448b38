package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/yaml-format/go-yamlfmt/token"
)

var ErrParse = errors.New("parse error")

// PosError locates a parse failure in the source. Callers recover the
// position with errors.As.
type PosError struct {
	Pos token.Pos
	Err error
}

func (e *PosError) Error() string {
	return fmt.Sprintf("%s %s", e.Err, e.Pos)
}

func (e *PosError) Unwrap() error {
	return e.Err
}

func errAt(pos token.Pos, format string, args ...any) error {
	args = append([]any{ErrParse}, args...)
	return &PosError{Pos: pos, Err: fmt.Errorf("%w: "+format, args...)}
}
