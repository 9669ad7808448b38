package encode

import "github.com/signadot/yaml-format/go-yamlfmt/tree"

// MustString is String for contexts where the writer cannot fail, such as
// tests and debug output.
func MustString(node *tree.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}
