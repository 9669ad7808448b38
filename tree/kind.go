package tree

import "fmt"

type Kind int

const (
	DocumentsKind Kind = iota
	DocumentKind
	DocumentEndKind
	MappingKind
	MappingEntryKind
	SequenceKind
	SequenceEntryKind
	ScalarKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		DocumentsKind:     "Documents",
		DocumentKind:      "Document",
		DocumentEndKind:   "DocumentEnd",
		MappingKind:       "Mapping",
		MappingEntryKind:  "MappingEntry",
		SequenceKind:      "Sequence",
		SequenceEntryKind: "SequenceEntry",
		ScalarKind:        "Scalar",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Documents":     DocumentsKind,
		"Document":      DocumentKind,
		"DocumentEnd":   DocumentEndKind,
		"Mapping":       MappingKind,
		"MappingEntry":  MappingEntryKind,
		"Sequence":      SequenceKind,
		"SequenceEntry": SequenceEntryKind,
		"Scalar":        ScalarKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		DocumentsKind,
		DocumentKind,
		DocumentEndKind,
		MappingKind,
		MappingEntryKind,
		SequenceKind,
		SequenceEntryKind,
		ScalarKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ScalarKind, DocumentEndKind:
		return true
	default:
		return false
	}
}
