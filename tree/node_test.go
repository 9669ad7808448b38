package tree

import "testing"

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("round trip %s: got %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("NoSuchKind")); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestKindIsLeaf(t *testing.T) {
	for _, k := range Kinds() {
		want := k == ScalarKind || k == DocumentEndKind
		if k.IsLeaf() != want {
			t.Errorf("%s.IsLeaf() = %v, want %v", k, k.IsLeaf(), want)
		}
	}
}

func entry(key, val string) *Node {
	return &Node{
		Kind: MappingEntryKind,
		Children: []*Node{
			{Kind: ScalarKind, Value: key},
			{Kind: ScalarKind, Prefix: " ", Value: val},
		},
	}
}

func TestAccessors(t *testing.T) {
	e := entry("a", "1")
	if e.Key().Value != "a" {
		t.Errorf("Key: got %q", e.Key().Value)
	}
	if e.Val().Value != "1" {
		t.Errorf("Val: got %q", e.Val().Value)
	}
	se := &Node{Kind: SequenceEntryKind, Children: []*Node{{Kind: ScalarKind, Value: "x"}}}
	if se.Block().Value != "x" {
		t.Errorf("Block: got %q", se.Block().Value)
	}
	s := &Node{Kind: ScalarKind, Value: "x"}
	if s.Key() != nil || s.Val() != nil || s.Block() != nil {
		t.Error("accessors on scalar should be nil")
	}
}

func TestClone(t *testing.T) {
	orig := &Node{
		Kind: MappingKind,
		Children: []*Node{
			entry("a", "1"),
			entry("b", "2").WithPrefix("\n"),
		},
	}
	cp := orig.Clone()
	cp.Children[0].Val().Value = "changed"
	cp.Children[1].Prefix = "\n  "
	if orig.Children[0].Val().Value != "1" {
		t.Error("clone shares value nodes")
	}
	if orig.Children[1].Prefix != "\n" {
		t.Error("clone shares prefixes")
	}
}

func TestVisit(t *testing.T) {
	root := &Node{
		Kind: MappingKind,
		Children: []*Node{
			entry("a", "1"),
			entry("b", "2"),
		},
	}
	pre, post := 0, 0
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// mapping, two entries, four scalars
	if pre != 7 || post != 7 {
		t.Errorf("got %d pre and %d post visits, want 7 each", pre, post)
	}

	// returning false skips children
	count := 0
	root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return n.Kind != MappingEntryKind, nil
	})
	if count != 3 {
		t.Errorf("got %d pre visits with pruning, want 3", count)
	}
}
