package textdiff

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	a := "a: 1\nb: 2\nc: 3\n"
	b := "a: 1\nb: 20\nc: 3\n"
	got := Lines(a, b, false)
	want := "  a: 1\n- b: 2\n+ b: 20\n  c: 3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLinesEqual(t *testing.T) {
	a := "x: 1\n"
	got := Lines(a, a, false)
	if strings.ContainsAny(got, "+-") {
		t.Errorf("diff of identical inputs has changes: %q", got)
	}
}

func TestLinesInsertDelete(t *testing.T) {
	got := Lines("a\n", "a\nb\n", false)
	if !strings.Contains(got, "+ b\n") {
		t.Errorf("missing insertion: %q", got)
	}
	got = Lines("a\nb\n", "a\n", false)
	if !strings.Contains(got, "- b\n") {
		t.Errorf("missing deletion: %q", got)
	}
}
