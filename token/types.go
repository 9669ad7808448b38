package token

import "fmt"

type Type int

const (
	TScalar Type = iota
	TColon
	TDash
	TDocStart
	TDocEnd
	TEOF
)

func (t Type) String() string {
	return map[Type]string{
		TScalar:   "TScalar",
		TColon:    "TColon",
		TDash:     "TDash",
		TDocStart: "TDocStart",
		TDocEnd:   "TDocEnd",
		TEOF:      "TEOF",
	}[t]
}

// Token is one lexical element of a block-YAML document. Prefix holds the
// raw bytes (whitespace, line breaks, '#'-comments) between the previous
// token and this one, captured verbatim; Bytes is the token text itself.
// The final token of every stream is a TEOF whose Prefix carries any
// trailing bytes.
type Token struct {
	Type   Type
	Prefix []byte
	Bytes  []byte
	Pos    Pos
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Bytes, t.Pos)
}
