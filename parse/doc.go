// Package parse builds lossless syntax trees from block-YAML text.
//
// Parse returns a Documents node whose subtree, rendered by the encode
// package, reproduces its input byte-for-byte: all whitespace, line
// breaks, and comments are captured on node prefixes. Failures wrap
// ErrParse and carry a source position:
//
//	node, err := parse.Parse(src)
//	var posErr *parse.PosError
//	if errors.As(err, &posErr) {
//		// posErr.Pos locates the failure
//	}
//
// The parser accepts the block subset of YAML: mappings, sequences, plain
// and quoted scalars, block literals, and flow collections (the latter two
// captured verbatim as scalar text). Multi-line plain scalars, anchors as
// structure, and complex keys are out of scope.
//
// # Related Packages
//
// Package token produces the prefix-carrying token stream this package
// consumes. Package format rewrites the resulting trees.
package parse
