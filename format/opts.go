package format

import "github.com/signadot/yaml-format/go-yamlfmt/tree"

type Option func(*options)

type options struct {
	stopAfter *tree.Node
	ancestors []*tree.Node
}

// WithStopAfter makes the pass leave every node after the given node's
// subtree untouched. The target is matched by identity, not by value.
func WithStopAfter(n *tree.Node) Option {
	return func(o *options) {
		o.stopAfter = n
	}
}

// WithAncestors supplies the ancestor chain, outermost first, of a node
// being indented without its enclosing document. The ancestors' prefixes
// recover the indent column in effect and their kinds supply the top-level
// exemption context.
func WithAncestors(ancestors ...*tree.Node) Option {
	return func(o *options) {
		o.ancestors = ancestors
	}
}
