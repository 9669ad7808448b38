// Package format normalizes the indentation of YAML syntax trees.
//
// The central entry point is Indent, which walks a tree from package tree
// and rewrites node prefixes in place so that each nesting level is
// indented by a fixed width while comments stay aligned with the node that
// follows them. Source wraps parse, Indent, and encode for whole-buffer
// use:
//
//	out, err := format.Source(src, nil)
//
// Indent rewrites prefixes in place and allocates its traversal state per
// call, so separate trees may be indented concurrently; a single tree must
// not be.
//
// Indent accepts options for partial runs: WithStopAfter ends the pass
// once a given node's subtree has been handled, and WithAncestors supplies
// the enclosing chain when the starting node is not a root, so a subtree
// can be normalized in place inside a larger document.
//
// # Related Packages
//
// Package parse builds the trees this package rewrites, and package encode
// renders them back to bytes.
package format
