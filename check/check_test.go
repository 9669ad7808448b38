package check

import (
	"errors"
	"testing"
)

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{
			name: "identical",
			a:    "a: 1\n",
			b:    "a: 1\n",
			same: true,
		},
		{
			name: "reindented",
			a:    "a:\n-   1\n-   2\n",
			b:    "a:\n  - 1\n  - 2\n",
			same: true,
		},
		{
			name: "comments ignored",
			a:    "# x\na: 1\n",
			b:    "a: 1 # y\n",
			same: true,
		},
		{
			name: "different value",
			a:    "a: 1\n",
			b:    "a: 2\n",
			same: false,
		},
		{
			name: "missing key",
			a:    "a: 1\nb: 2\n",
			b:    "a: 1\n",
			same: false,
		},
		{
			name: "document count",
			a:    "---\na: 1\n---\nb: 2\n",
			b:    "---\na: 1\n",
			same: false,
		},
		{
			name: "multi doc same",
			a:    "---\na: 1\n---\nb: 2\n",
			b:    "---\na:   1\n---\nb:  2\n",
			same: true,
		},
	}
	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			err := Equivalent([]byte(tst.a), []byte(tst.b))
			if tst.same && err != nil {
				t.Errorf("got %v, want nil", err)
			}
			if !tst.same {
				if err == nil {
					t.Error("expected error")
				} else if !errors.Is(err, ErrNotEquivalent) {
					t.Errorf("error %v does not wrap ErrNotEquivalent", err)
				}
			}
		})
	}
}

func TestEquivalentDecodeErr(t *testing.T) {
	err := Equivalent([]byte("a: [unclosed\n"), []byte("a: 1\n"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrNotEquivalent) {
		t.Errorf("decode failure should not report ErrNotEquivalent, got %v", err)
	}
}
