package parse

import (
	"bytes"

	"github.com/signadot/yaml-format/go-yamlfmt/debug"
	"github.com/signadot/yaml-format/go-yamlfmt/token"
	"github.com/signadot/yaml-format/go-yamlfmt/tree"
)

// Parse builds a lossless syntax tree from block-YAML text. The returned
// Documents node reproduces the input byte-for-byte when rendered by the
// encode package.
func Parse(d []byte) (*tree.Node, error) {
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	docs := &tree.Node{Kind: tree.DocumentsKind}
	for p.cur().Type != token.TEOF {
		doc, err := p.parseDocument(len(docs.Children) == 0)
		if err != nil {
			if debug.Parse() {
				debug.Logf("parse: %v at token %s\n", err, p.cur().Info())
			}
			return nil, err
		}
		docs.Children = append(docs.Children, doc)
	}
	docs.Suffix = string(p.cur().Prefix)
	return docs, nil
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) cur() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) advance() *token.Token {
	t := &p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return t
}

// keyAt reports whether the current token opens a mapping entry: a scalar
// immediately followed by ':' on the same line.
func (p *parser) keyAt() bool {
	if p.cur().Type != token.TScalar {
		return false
	}
	if p.i+1 >= len(p.toks) {
		return false
	}
	colon := &p.toks[p.i+1]
	return colon.Type == token.TColon && !bytes.ContainsRune(colon.Prefix, '\n')
}

func (p *parser) parseDocument(first bool) (*tree.Node, error) {
	doc := &tree.Node{Kind: tree.DocumentKind}
	if p.cur().Type == token.TDocStart {
		t := p.advance()
		doc.Prefix = string(t.Prefix)
		doc.Explicit = true
	}
	switch p.cur().Type {
	case token.TEOF, token.TDocStart, token.TDocEnd:
		// empty document
	default:
		body, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if !doc.Explicit && first {
			hoistPrefix(doc, body)
		}
		doc.Children = append(doc.Children, body)
	}
	switch p.cur().Type {
	case token.TEOF, token.TDocStart:
	case token.TDocEnd:
		t := p.advance()
		doc.Children = append(doc.Children, &tree.Node{
			Kind:   tree.DocumentEndKind,
			Prefix: string(t.Prefix),
		})
	default:
		return nil, errAt(p.cur().Pos, "unexpected %q", p.cur().Bytes)
	}
	return doc, nil
}

// hoistPrefix moves the leading prefix of an implicit document's body onto
// the Document node, where document-initial comments belong.
func hoistPrefix(doc, body *tree.Node) {
	n := body
	for {
		switch n.Kind {
		case tree.MappingKind, tree.SequenceKind:
			if len(n.Children) == 0 {
				return
			}
			n = n.Children[0]
		default:
			doc.Prefix = n.Prefix
			n.Prefix = ""
			return
		}
	}
}

func (p *parser) parseNode() (*tree.Node, error) {
	switch t := p.cur(); t.Type {
	case token.TDash:
		return p.parseSequence(t.Pos.Col)
	case token.TScalar:
		if p.keyAt() {
			return p.parseMapping(t.Pos.Col)
		}
		p.advance()
		return &tree.Node{
			Kind:   tree.ScalarKind,
			Prefix: string(t.Prefix),
			Value:  string(t.Bytes),
		}, nil
	default:
		return nil, errAt(t.Pos, "unexpected %q", t.Bytes)
	}
}

func (p *parser) parseMapping(col int) (*tree.Node, error) {
	m := &tree.Node{Kind: tree.MappingKind}
	for p.keyAt() && p.cur().Pos.Col == col {
		keyTok := p.advance()
		colonTok := p.advance()
		entry := &tree.Node{
			Kind:   tree.MappingEntryKind,
			Prefix: string(keyTok.Prefix),
			Sep:    string(colonTok.Prefix),
		}
		key := &tree.Node{Kind: tree.ScalarKind, Value: string(keyTok.Bytes)}
		val, err := p.parseEntryValue(keyTok.Pos)
		if err != nil {
			return nil, err
		}
		entry.Children = []*tree.Node{key, val}
		m.Children = append(m.Children, entry)
	}
	return m, nil
}

// parseEntryValue parses the value of a mapping entry whose key sits at
// keyPos. A nested block must be more indented than the key, except that a
// sequence may share the key's column, and a plain scalar line at the key's
// column is accepted as an under-indented value.
func (p *parser) parseEntryValue(keyPos token.Pos) (*tree.Node, error) {
	t := p.cur()
	switch t.Type {
	case token.TEOF, token.TDocStart, token.TDocEnd:
		return emptyScalar(), nil
	}
	sameLine := !bytes.ContainsRune(t.Prefix, '\n')
	switch {
	case sameLine:
		return p.parseNode()
	case t.Type == token.TDash && t.Pos.Col >= keyPos.Col:
		return p.parseNode()
	case t.Pos.Col > keyPos.Col:
		return p.parseNode()
	case t.Type == token.TScalar && t.Pos.Col == keyPos.Col && !p.keyAt():
		return p.parseNode()
	default:
		return emptyScalar(), nil
	}
}

func (p *parser) parseSequence(col int) (*tree.Node, error) {
	s := &tree.Node{Kind: tree.SequenceKind}
	for p.cur().Type == token.TDash && p.cur().Pos.Col == col {
		dashTok := p.advance()
		entry := &tree.Node{
			Kind:   tree.SequenceEntryKind,
			Prefix: string(dashTok.Prefix),
		}
		block, err := p.parseEntryBlock(dashTok.Pos)
		if err != nil {
			return nil, err
		}
		entry.Children = []*tree.Node{block}
		s.Children = append(s.Children, entry)
	}
	return s, nil
}

func (p *parser) parseEntryBlock(dashPos token.Pos) (*tree.Node, error) {
	t := p.cur()
	switch t.Type {
	case token.TEOF, token.TDocStart, token.TDocEnd:
		return emptyScalar(), nil
	}
	sameLine := !bytes.ContainsRune(t.Prefix, '\n')
	if sameLine || t.Pos.Col > dashPos.Col {
		return p.parseNode()
	}
	return emptyScalar(), nil
}

func emptyScalar() *tree.Node {
	return &tree.Node{Kind: tree.ScalarKind}
}
