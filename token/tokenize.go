package token

import (
	"fmt"
)

// Tokenize splits a block-YAML document into tokens, capturing the raw
// whitespace and comment text between tokens byte-for-byte on each token's
// Prefix. The returned slice always ends with a TEOF token carrying any
// trailing bytes.
func Tokenize(d []byte) ([]Token, error) {
	tk := &tokenizer{d: d, line: 1, anchorLine: -1}
	return tk.run()
}

type tokenizer struct {
	d         []byte
	i         int
	line      int
	lineStart int

	// column of the last dash or scalar emitted, used to bound block
	// literal content
	anchorCol  int
	anchorLine int

	toks []Token
}

func (tk *tokenizer) run() ([]Token, error) {
	for {
		prefix := tk.prefix()
		if tk.i == len(tk.d) {
			tk.emit(TEOF, prefix, tk.pos())
			return tk.toks, nil
		}
		if err := tk.next(prefix); err != nil {
			return nil, err
		}
	}
}

func (tk *tokenizer) col() int {
	return tk.i - tk.lineStart
}

func (tk *tokenizer) pos() Pos {
	return Pos{Line: tk.line, Col: tk.col(), Off: tk.i}
}

func (tk *tokenizer) emit(t Type, prefix []byte, at Pos) {
	tk.toks = append(tk.toks, Token{
		Type:   t,
		Prefix: prefix,
		Bytes:  tk.d[at.Off:tk.i],
		Pos:    at,
	})
}

func (tk *tokenizer) newline() {
	tk.line++
	tk.lineStart = tk.i
}

// prefix consumes whitespace, line breaks, and comment lines.
func (tk *tokenizer) prefix() []byte {
	start := tk.i
	for tk.i < len(tk.d) {
		switch tk.d[tk.i] {
		case ' ', '\t', '\r':
			tk.i++
		case '\n':
			tk.i++
			tk.newline()
		case '#':
			for tk.i < len(tk.d) && tk.d[tk.i] != '\n' {
				tk.i++
			}
		default:
			return tk.d[start:tk.i]
		}
	}
	return tk.d[start:tk.i]
}

func (tk *tokenizer) next(prefix []byte) error {
	at := tk.pos()
	c := tk.d[tk.i]
	switch {
	case c == '-' && tk.col() == 0 && tk.lookingAt("---"):
		tk.i += 3
		tk.emit(TDocStart, prefix, at)
		return nil
	case c == '.' && tk.col() == 0 && tk.lookingAt("..."):
		tk.i += 3
		tk.emit(TDocEnd, prefix, at)
		return nil
	case c == '-' && tk.boundaryAt(tk.i+1):
		tk.anchorCol, tk.anchorLine = tk.col(), tk.line
		tk.i++
		tk.emit(TDash, prefix, at)
		return nil
	case c == ':' && tk.boundaryAt(tk.i+1):
		tk.i++
		tk.emit(TColon, prefix, at)
		return nil
	case c == '"' || c == '\'':
		if err := tk.quoted(c); err != nil {
			return err
		}
		tk.anchorCol, tk.anchorLine = at.Col, at.Line
		tk.emit(TScalar, prefix, at)
		return nil
	case c == '[' || c == '{':
		if err := tk.flow(); err != nil {
			return err
		}
		tk.anchorCol, tk.anchorLine = at.Col, at.Line
		tk.emit(TScalar, prefix, at)
		return nil
	case c == '|' || c == '>':
		tk.blockLiteral()
		tk.emit(TScalar, prefix, at)
		return nil
	default:
		tk.anchorCol, tk.anchorLine = at.Col, at.Line
		tk.plain()
		tk.emit(TScalar, prefix, at)
		return nil
	}
}

func (tk *tokenizer) lookingAt(s string) bool {
	end := tk.i + len(s)
	if end > len(tk.d) {
		return false
	}
	if string(tk.d[tk.i:end]) != s {
		return false
	}
	return tk.boundaryAt(end)
}

// boundaryAt reports whether offset j ends a token: end of input or
// horizontal/vertical whitespace.
func (tk *tokenizer) boundaryAt(j int) bool {
	if j >= len(tk.d) {
		return true
	}
	switch tk.d[j] {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (tk *tokenizer) quoted(q byte) error {
	pos := tk.pos()
	tk.i++
	for tk.i < len(tk.d) {
		c := tk.d[tk.i]
		switch {
		case c == '\n':
			tk.i++
			tk.newline()
		case q == '"' && c == '\\':
			tk.i++
			if tk.i < len(tk.d) && tk.d[tk.i] != '\n' {
				tk.i++
			}
		case c == q:
			tk.i++
			if q == '\'' && tk.i < len(tk.d) && tk.d[tk.i] == '\'' {
				// '' escapes a single quote
				tk.i++
				continue
			}
			return nil
		default:
			tk.i++
		}
	}
	return fmt.Errorf("%w: unterminated quoted scalar %s", ErrToken, pos)
}

// flow consumes a bracketed flow collection as one opaque scalar, tracking
// bracket depth and skipping quoted spans.
func (tk *tokenizer) flow() error {
	pos := tk.pos()
	depth := 0
	for tk.i < len(tk.d) {
		switch c := tk.d[tk.i]; c {
		case '[', '{':
			depth++
			tk.i++
		case ']', '}':
			depth--
			tk.i++
			if depth == 0 {
				return nil
			}
		case '"', '\'':
			if err := tk.quoted(c); err != nil {
				return err
			}
		case '\n':
			tk.i++
			tk.newline()
		default:
			tk.i++
		}
	}
	return fmt.Errorf("%w: unbalanced flow collection %s", ErrToken, pos)
}

// blockLiteral consumes a '|' or '>' header and the indented lines that
// follow it. Content lines must be more indented than the key or dash that
// owns the literal; the final line break is left for the next token's
// prefix.
func (tk *tokenizer) blockLiteral() {
	minIndent := tk.col() + 1
	if tk.anchorLine == tk.line {
		minIndent = tk.anchorCol + 1
	}
	// header runs to end of line
	for tk.i < len(tk.d) && tk.d[tk.i] != '\n' {
		tk.i++
	}
	end := tk.i
	endLine, endLineStart := tk.line, tk.lineStart
	for tk.i < len(tk.d) {
		// consume the line break, then measure the next line
		tk.i++
		tk.newline()
		indent := 0
		for tk.i < len(tk.d) && tk.d[tk.i] == ' ' {
			tk.i++
			indent++
		}
		if tk.i == len(tk.d) || tk.d[tk.i] == '\n' {
			// blank line: belongs to the literal only if content follows
			continue
		}
		if indent < minIndent {
			break
		}
		for tk.i < len(tk.d) && tk.d[tk.i] != '\n' {
			tk.i++
		}
		end = tk.i
		endLine, endLineStart = tk.line, tk.lineStart
	}
	tk.i = end
	tk.line, tk.lineStart = endLine, endLineStart
}

// plain consumes a single-line plain scalar. It ends at a line break, at a
// ':' followed by whitespace, or at a comment; trailing spaces are left for
// the next token's prefix.
func (tk *tokenizer) plain() {
	end := tk.i
	for tk.i < len(tk.d) {
		c := tk.d[tk.i]
		if c == '\n' {
			break
		}
		if c == ':' && tk.boundaryAt(tk.i+1) {
			break
		}
		if (c == ' ' || c == '\t') && tk.i+1 < len(tk.d) && tk.d[tk.i+1] == '#' {
			break
		}
		tk.i++
		if c != ' ' && c != '\t' && c != '\r' {
			end = tk.i
		}
	}
	tk.i = end
}
