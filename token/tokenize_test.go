package token

import (
	"bytes"
	"errors"
	"testing"
)

func TestTokenizeLossless(t *testing.T) {
	ins := []string{
		"",
		"a",
		"a: 1",
		"a: 1\n",
		"a:\n  b: 1\n  c: 2\n",
		"- 1\n- 2\n",
		"-   1\n-   2\n",
		"# leading comment\na: 1\n",
		"a: 1 # line comment\nb: 2\n",
		"a:\n  # nested comment\n  b: 1\n",
		"---\na: 1\n---\nb: 2\n",
		"---\na: 1\n...\n",
		"a: \"quoted: value\"\n",
		"a: 'it''s'\n",
		"a: \"multi\nline\"\n",
		"a: [1, 2, {b: 3}]\n",
		"a: |\n  line one\n  line two\n",
		"a: |\n  x\n\n  y\nb: 2\n",
		"a: >-\n  folded\n  text\n",
		"key: value\r\nother: value\r\n",
		"a: 1\n\n\n",
		"a:1\n",
	}
	for _, in := range ins {
		toks, err := Tokenize([]byte(in))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		var buf bytes.Buffer
		for i := range toks {
			buf.Write(toks[i].Prefix)
			buf.Write(toks[i].Bytes)
		}
		if got := buf.String(); got != in {
			t.Errorf("round trip %q: got %q", in, got)
		}
		if toks[len(toks)-1].Type != TEOF {
			t.Errorf("%q: stream does not end in TEOF", in)
		}
	}
}

func TestTokenizeTypes(t *testing.T) {
	tests := []struct {
		in    string
		types []Type
	}{
		{"a: 1", []Type{TScalar, TColon, TScalar, TEOF}},
		{"a:", []Type{TScalar, TColon, TEOF}},
		{"a:1", []Type{TScalar, TEOF}},
		{"- x", []Type{TDash, TScalar, TEOF}},
		{"- - x", []Type{TDash, TDash, TScalar, TEOF}},
		{"---\na\n...", []Type{TDocStart, TScalar, TDocEnd, TEOF}},
		{"a: \"x\"", []Type{TScalar, TColon, TScalar, TEOF}},
		{"a: [1, 2]", []Type{TScalar, TColon, TScalar, TEOF}},
		{"a: |\n  x\n", []Type{TScalar, TColon, TScalar, TEOF}},
		{"# only a comment\n", []Type{TEOF}},
		{"-x", []Type{TScalar, TEOF}},
		{"--- x", []Type{TDocStart, TScalar, TEOF}},
		{"a---b", []Type{TScalar, TEOF}},
	}
	for _, tst := range tests {
		toks, err := Tokenize([]byte(tst.in))
		if err != nil {
			t.Errorf("%q: %v", tst.in, err)
			continue
		}
		if len(toks) != len(tst.types) {
			t.Errorf("%q: got %d tokens, want %d", tst.in, len(toks), len(tst.types))
			continue
		}
		for i := range toks {
			if toks[i].Type != tst.types[i] {
				t.Errorf("%q token %d: got %s, want %s", tst.in, i, toks[i].Type, tst.types[i])
			}
		}
	}
}

func TestTokenizePos(t *testing.T) {
	toks, err := Tokenize([]byte("a:\n  b: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	// a : b : 1 EOF
	wants := []Pos{
		{Line: 1, Col: 0, Off: 0},
		{Line: 1, Col: 1, Off: 1},
		{Line: 2, Col: 2, Off: 5},
		{Line: 2, Col: 3, Off: 6},
		{Line: 2, Col: 5, Off: 8},
		{Line: 3, Col: 0, Off: 10},
	}
	if len(toks) != len(wants) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wants))
	}
	for i := range toks {
		if toks[i].Pos != wants[i] {
			t.Errorf("token %d %s: got %+v, want %+v", i, toks[i].Info(), toks[i].Pos, wants[i])
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	for _, in := range []string{
		"a: \"unterminated",
		"a: 'unterminated",
		"a: [1, 2",
		"a: {b: 1",
	} {
		_, err := Tokenize([]byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, ErrToken) {
			t.Errorf("%q: error %v does not wrap ErrToken", in, err)
		}
	}
}

func TestBlockLiteralExtent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a: |\n  x\n  y\nb: 2\n", "|\n  x\n  y"},
		{"a: |\n  x\n\n  y\n", "|\n  x\n\n  y"},
		{"a: >-\n  f\nb: 2\n", ">-\n  f"},
		{"- |\n  x\n- y\n", "|\n  x"},
	}
	for _, tst := range tests {
		toks, err := Tokenize([]byte(tst.in))
		if err != nil {
			t.Fatalf("%q: %v", tst.in, err)
		}
		var lit *Token
		for i := range toks {
			if toks[i].Type == TScalar && len(toks[i].Bytes) > 0 && (toks[i].Bytes[0] == '|' || toks[i].Bytes[0] == '>') {
				lit = &toks[i]
				break
			}
		}
		if lit == nil {
			t.Errorf("%q: no block literal token", tst.in)
			continue
		}
		if string(lit.Bytes) != tst.want {
			t.Errorf("%q: literal %q, want %q", tst.in, lit.Bytes, tst.want)
		}
	}
}
