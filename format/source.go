package format

import (
	"bytes"

	"github.com/signadot/yaml-format/go-yamlfmt/encode"
	"github.com/signadot/yaml-format/go-yamlfmt/parse"
)

// Source normalizes the indentation of YAML source text, returning the
// rewritten bytes. A nil style means DefaultStyle. Everything except
// inter-node whitespace survives verbatim.
func Source(src []byte, style *Style) ([]byte, error) {
	node, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	Indent(node, style)
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
