// Package tree defines the lossless block-YAML syntax tree.
//
// Every node carries its source prefix verbatim, so concatenating each
// node's prefix with its own textual form in tree order reproduces the
// original document exactly.
//
// # Related Packages
//
//   - github.com/signadot/yaml-format/go-yamlfmt/parse - build trees from text
//   - github.com/signadot/yaml-format/go-yamlfmt/encode - render trees to text
//   - github.com/signadot/yaml-format/go-yamlfmt/format - indentation engine
package tree
