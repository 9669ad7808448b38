package format

import (
	"regexp"
	"strings"

	"github.com/signadot/yaml-format/go-yamlfmt/debug"
	"github.com/signadot/yaml-format/go-yamlfmt/tree"
)

// Indent rewrites node prefixes in place so the tree's visual indentation
// uses Style.IndentWidth columns per nesting step, re-aligning embedded
// comments as it goes. Content and tree shape are untouched; running the
// pass on its own output is a no-op.
func Indent(node *tree.Node, style *Style, opts ...Option) *tree.Node {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	in := &indenter{w: style.width(), stopAfter: o.stopAfter}
	in.visit(node, lineage(o.ancestors), state{indent: baseline(o.ancestors)})
	return node
}

// state is the indent context threaded through the recursion. indent is the
// base column B: entries and own-line scalars below it are placed at B plus
// the indent width. seqIndent is the shared base for the entries of one
// sequence, handed to the next sibling through the returned state.
type state struct {
	indent    int
	seqIndent int
	seqSet    bool
}

// ancestry carries the kinds of the two nearest enclosing nodes, enough to
// decide the top-level exemption and the sequence-entry mapping case.
type ancestry struct {
	parent, grand       tree.Kind
	hasParent, hasGrand bool
}

func (a ancestry) push(k tree.Kind) ancestry {
	return ancestry{parent: k, hasParent: true, grand: a.parent, hasGrand: a.hasParent}
}

// topLevel reports whether a node with this ancestry keeps column 0: its
// parent or grandparent is a Document node.
func (a ancestry) topLevel() bool {
	return (a.hasParent && a.parent == tree.DocumentKind) ||
		(a.hasGrand && a.grand == tree.DocumentKind)
}

func lineage(ancestors []*tree.Node) ancestry {
	a := ancestry{}
	for _, n := range ancestors {
		a = a.push(n.Kind)
	}
	return a
}

// baseline recovers the ambient indent column from an ancestor chain
// (outermost first): the trailing indent of the nearest ancestor whose
// prefix contains a line break and is not at column 0.
func baseline(ancestors []*tree.Node) int {
	for i := len(ancestors) - 1; i >= 0; i-- {
		p := ancestors[i].Prefix
		if !strings.Contains(p, "\n") {
			continue
		}
		if ind := findIndent(p); ind != 0 {
			return ind
		}
	}
	return 0
}

type indenter struct {
	w         int
	stopAfter *tree.Node
	stopped   bool
}

// visit reindents n and its subtree. The returned state carries sequence
// entry propagation to the caller's next child; everything else in st is
// scoped to n's own subtree.
func (in *indenter) visit(n *tree.Node, anc ancestry, st state) state {
	if in.stopped {
		return st
	}
	childBase := st.indent
	hasNL := strings.Contains(n.Prefix, "\n")
	top := anc.topLevel()

	switch n.Kind {
	case tree.DocumentsKind:
		childBase = 0
	case tree.DocumentKind, tree.DocumentEndKind:
		n.Prefix = indentComments(n.Prefix, 0)
		if n.Kind == tree.DocumentKind {
			n.Prefix = stripLeadingComment(n.Prefix)
		}
		childBase = 0
	case tree.SequenceEntryKind:
		base := st.indent
		if st.seqSet {
			base = st.seqIndent
		}
		switch {
		case hasNL && !top:
			in.reindent(n, base+in.w)
			st.seqIndent, st.seqSet = base, true
			childBase = base + in.sep(n, true) + 1
		case hasNL:
			// top level: hold the column, realign comments to it
			cur := findIndent(n.Prefix)
			n.Prefix = indentComments(n.Prefix, cur)
			childBase = cur + in.sep(n, false) + 1 - in.w
		case top:
			// first entry of the document sits at column 0
			childBase = in.sep(n, false) + 1 - in.w
		}
	case tree.MappingEntryKind:
		switch {
		case hasNL && !top:
			in.reindent(n, st.indent+in.w)
			childBase = st.indent + in.w
		case !hasNL && anc.hasGrand && anc.grand == tree.SequenceEntryKind:
			// "- key:" opening a mapping: the entry keeps its place and
			// its nested value lines indent one further step
			childBase = st.indent + in.w
		default:
			n.Prefix = indentComments(n.Prefix, findIndent(n.Prefix))
		}
	default:
		switch {
		case hasNL && !top:
			in.reindent(n, st.indent+in.w)
		case hasNL:
			n.Prefix = indentComments(n.Prefix, findIndent(n.Prefix))
		}
	}

	cAnc := anc.push(n.Kind)
	cSt := state{indent: childBase}
	for _, c := range n.Children {
		cSt = in.visit(c, cAnc, cSt)
	}
	if in.stopAfter != nil && n == in.stopAfter {
		in.stopped = true
	}
	return st
}

func (in *indenter) reindent(n *tree.Node, col int) {
	old := findIndent(n.Prefix)
	p := indentTo(n.Prefix, col)
	if p != n.Prefix && debug.Indent() {
		debug.Logf("reindent %s to %d: %q -> %q\n", n.Kind, col, n.Prefix, p)
	}
	n.Prefix = p
	if d := findIndent(n.Prefix) - old; d > 0 {
		shiftLiteral(n, d)
	}
}

// shiftLiteral moves the continuation lines of a block literal opened on
// the line n's prefix starts, keeping the body attached to its relocated
// owner. Left shifts need no adjustment: the body stays more indented than
// the owner and its decoded content is unchanged, since literal indentation
// is detected from the body itself.
func shiftLiteral(n *tree.Node, delta int) {
	sc := lineScalar(n)
	if sc == nil || len(sc.Value) == 0 {
		return
	}
	if sc.Value[0] != '|' && sc.Value[0] != '>' {
		return
	}
	if !strings.Contains(sc.Value, "\n") {
		return
	}
	pad := strings.Repeat(" ", delta)
	lines := strings.Split(sc.Value, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}
		lines[i] = pad + lines[i]
	}
	sc.Value = strings.Join(lines, "\n")
}

// lineScalar returns the scalar whose text sits on the same line as n's
// prefix, or nil when that line ends before reaching one.
func lineScalar(n *tree.Node) *tree.Node {
	for n != nil {
		if n.Kind == tree.ScalarKind {
			return n
		}
		var next *tree.Node
		if n.Kind == tree.MappingEntryKind {
			next = n.Val()
		} else if len(n.Children) > 0 {
			next = n.Children[0]
		}
		if next == nil || strings.Contains(next.Prefix, "\n") {
			return nil
		}
		n = next
	}
	return nil
}

// sep sizes the gap between a sequence entry's dash and its first content.
// The children of an entry whose dash lands at column c align at
// c + sep + 1. When normalize is set, a same-line gap is rewritten to a
// single space; entries that hold their column keep their gap verbatim.
func (in *indenter) sep(n *tree.Node, normalize bool) int {
	fc := firstContent(n.Block())
	if fc == nil {
		return 0
	}
	if strings.Contains(fc.Prefix, "\n") {
		// content opens on its own line; align as if it sat after "- "
		return 1
	}
	if normalize && len(fc.Prefix) > 0 && fc.Prefix != " " {
		fc.Prefix = " "
	}
	return len(fc.Prefix)
}

// firstContent locates the first descendant that is neither a mapping, a
// sequence, nor a sequence entry: the node owning the prefix that follows
// the entry's dash.
func firstContent(n *tree.Node) *tree.Node {
	for n != nil {
		switch n.Kind {
		case tree.MappingKind, tree.SequenceKind, tree.SequenceEntryKind:
			if len(n.Children) == 0 {
				return nil
			}
			n = n.Children[0]
		default:
			return n
		}
	}
	return nil
}

// indentTo rewrites a prefix so the whitespace run after its final line
// break spans col columns, re-aligning embedded comment lines to the same
// column. Prefixes without a line break are left alone.
func indentTo(prefix string, col int) string {
	if !strings.Contains(prefix, "\n") {
		return prefix
	}
	prefix = indentComments(prefix, col)
	cur := findIndent(prefix)
	switch {
	case cur == col:
		return prefix
	case cur < col:
		return prefix + strings.Repeat(" ", col-cur)
	default:
		// the trailing run is cur columns wide, so this never cuts into
		// earlier prefix text
		return prefix[:len(prefix)-(cur-col)]
	}
}

var commentRe = regexp.MustCompile("\n[ \t]*#")

// indentComments places every comment line inside a prefix at col.
func indentComments(prefix string, col int) string {
	if !strings.Contains(prefix, "#") {
		return prefix
	}
	if col < 0 {
		col = 0
	}
	return commentRe.ReplaceAllString(prefix, "\n"+strings.Repeat(" ", col)+"#")
}

var leadingCommentRe = regexp.MustCompile(`^[ \t]*#`)

// stripLeadingComment anchors a document-initial comment with no preceding
// line break at column 0.
func stripLeadingComment(prefix string) string {
	return leadingCommentRe.ReplaceAllString(prefix, "#")
}

// findIndent measures the width of a prefix's text after its final line
// break.
func findIndent(prefix string) int {
	size := 0
	for _, c := range prefix {
		size++
		if c == '\n' || c == '\r' {
			size = 0
		}
	}
	return size
}
