package tree

// Node is one node of a lossless block-YAML syntax tree. Every node owns
// Prefix, the exact raw text (whitespace, line breaks, and '#'-comments) that
// appeared immediately before it in the source. Children are owned; nodes do
// not reference their parents.
//
// Per-kind layout:
//
//	Documents     Children are Document nodes; Suffix holds trailing text
//	              after the last node in the stream.
//	Document      Children are the body node and, when present, a
//	              DocumentEnd; Explicit marks a "---" start marker.
//	DocumentEnd   the "..." end marker.
//	Mapping       Children are MappingEntry nodes.
//	MappingEntry  Children are [key, value]; Sep is the whitespace between
//	              the key and its ':'.
//	Sequence      Children are SequenceEntry nodes.
//	SequenceEntry Children are [block]; the "-" marker is implied.
//	Scalar        Value is the verbatim source text, including quotes, flow
//	              collection brackets, or a block literal body.
type Node struct {
	Kind     Kind
	Prefix   string
	Value    string
	Sep      string
	Explicit bool
	Suffix   string
	Children []*Node
}

// Key returns the key node of a MappingEntry.
func (n *Node) Key() *Node {
	if n.Kind != MappingEntryKind || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Val returns the value node of a MappingEntry.
func (n *Node) Val() *Node {
	if n.Kind != MappingEntryKind || len(n.Children) < 2 {
		return nil
	}
	return n.Children[1]
}

// Block returns the nested block of a SequenceEntry or the body of a
// Document.
func (n *Node) Block() *Node {
	switch n.Kind {
	case SequenceEntryKind, DocumentKind:
		if len(n.Children) > 0 {
			return n.Children[0]
		}
	}
	return nil
}

func (n *Node) WithPrefix(prefix string) *Node {
	n.Prefix = prefix
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Prefix = n.Prefix
	dst.Value = n.Value
	dst.Sep = n.Sep
	dst.Explicit = n.Explicit
	dst.Suffix = n.Suffix
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dstC := &Node{}
		c.CloneTo(dstC)
		dst.Children[i] = dstC
	}
	return dst
}

// Visit walks the subtree rooted at n depth-first, calling f before and after
// each node's children. Returning false from the pre call skips the node's
// children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
