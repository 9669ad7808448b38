package format

import (
	"errors"
	"testing"

	"github.com/signadot/yaml-format/go-yamlfmt/check"
	"github.com/signadot/yaml-format/go-yamlfmt/parse"
)

func TestSourceEquivalence(t *testing.T) {
	// formatting only moves whitespace; decoded data must not change
	ins := []string{
		"a:\n-   1\n-   2\n",
		"a:\n        b: 1\n",
		"a:\n  - x: 1\n    y: 2\n  - z: 3\n",
		"---\na: 1\n---\nb:\n      c: 2\n",
	}
	for _, in := range ins {
		out := fmtSrc(t, in, nil)
		if err := check.Equivalent([]byte(in), []byte(out)); err != nil {
			t.Errorf("%q -> %q: %v", in, out, err)
		}
	}
}

func TestSourceBlockLiteralShift(t *testing.T) {
	// body lines of a block literal move with the entry that owns it
	tests := []struct {
		name  string
		in    string
		want  string
		style *Style
	}{
		{
			"literal under reindented entry",
			"doc:\n- |\n  lit\n- 2\n",
			"doc:\n  - |\n    lit\n  - 2\n",
			nil,
		},
		{
			"literal behind mapping entry",
			"a:\n- k: |\n    x\n",
			"a:\n    - k: |\n        x\n",
			&Style{IndentWidth: 4},
		},
		{
			"dedented entry leaves the body alone",
			"doc:\n      - |\n        lit\n",
			"doc:\n  - |\n        lit\n",
			nil,
		},
	}
	for _, tc := range tests {
		out := fmtSrc(t, tc.in, tc.style)
		if out != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, out, tc.want)
			continue
		}
		if _, err := parse.Parse([]byte(out)); err != nil {
			t.Errorf("%s: output %q does not parse: %v", tc.name, out, err)
		}
		if err := check.Equivalent([]byte(tc.in), []byte(out)); err != nil {
			t.Errorf("%s: %q -> %q: %v", tc.name, tc.in, out, err)
		}
		if again := fmtSrc(t, out, tc.style); again != out {
			t.Errorf("%s: not stable: %q -> %q", tc.name, out, again)
		}
	}
}

func TestSourceParseErr(t *testing.T) {
	_, err := Source([]byte("a: 1\nb\n"), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}
}

func TestSourceNilStyle(t *testing.T) {
	out, err := Source([]byte("a:\n      b: 1\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "a:\n  b: 1\n" {
		t.Errorf("got %q", out)
	}
}
