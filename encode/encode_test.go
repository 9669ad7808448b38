package encode

import (
	"testing"

	"github.com/signadot/yaml-format/go-yamlfmt/tree"
)

func TestEncode(t *testing.T) {
	doc := &tree.Node{
		Kind: tree.DocumentsKind,
		Children: []*tree.Node{
			{
				Kind:     tree.DocumentKind,
				Explicit: true,
				Children: []*tree.Node{
					{
						Kind: tree.MappingKind,
						Children: []*tree.Node{
							{
								Kind:   tree.MappingEntryKind,
								Prefix: "\n",
								Children: []*tree.Node{
									{Kind: tree.ScalarKind, Value: "a"},
									{
										Kind: tree.SequenceKind,
										Children: []*tree.Node{
											{
												Kind:   tree.SequenceEntryKind,
												Prefix: "\n  ",
												Children: []*tree.Node{
													{Kind: tree.ScalarKind, Prefix: " ", Value: "1"},
												},
											},
										},
									},
								},
							},
						},
					},
					{Kind: tree.DocumentEndKind, Prefix: "\n"},
				},
			},
		},
		Suffix: "\n",
	}
	want := "---\na:\n  - 1\n...\n"
	if got := MustString(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeEntrySep(t *testing.T) {
	e := &tree.Node{
		Kind: tree.MappingEntryKind,
		Sep:  " ",
		Children: []*tree.Node{
			{Kind: tree.ScalarKind, Value: "key"},
			{Kind: tree.ScalarKind, Prefix: " ", Value: "v"},
		},
	}
	if got := MustString(e); got != "key : v" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeNil(t *testing.T) {
	if got := MustString(nil); got != "" {
		t.Errorf("got %q", got)
	}
}
