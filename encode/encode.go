// Package encode renders lossless syntax trees back to text.
//
// Each node's prefix is concatenated with the node's own textual form in
// tree order, so an unmodified parse tree reproduces its source exactly.
package encode

import (
	"bytes"
	"io"

	"github.com/signadot/yaml-format/go-yamlfmt/tree"
)

func Encode(node *tree.Node, w io.Writer) error {
	e := &encoder{w: w}
	e.node(node)
	return e.err
}

func String(node *tree.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) node(n *tree.Node) {
	if n == nil {
		return
	}
	e.write(n.Prefix)
	switch n.Kind {
	case tree.DocumentsKind:
		for _, c := range n.Children {
			e.node(c)
		}
		e.write(n.Suffix)
	case tree.DocumentKind:
		if n.Explicit {
			e.write("---")
		}
		for _, c := range n.Children {
			e.node(c)
		}
	case tree.DocumentEndKind:
		e.write("...")
	case tree.MappingKind, tree.SequenceKind:
		for _, c := range n.Children {
			e.node(c)
		}
	case tree.MappingEntryKind:
		e.node(n.Key())
		e.write(n.Sep)
		e.write(":")
		e.node(n.Val())
	case tree.SequenceEntryKind:
		e.write("-")
		for _, c := range n.Children {
			e.node(c)
		}
	case tree.ScalarKind:
		e.write(n.Value)
	}
}
