package main

import (
	"context"

	"github.com/signadot/yaml-format/go-yamlfmt/format"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	style := format.DefaultStyle()
	if params.Options.TabSize > 0 {
		style = &format.Style{IndentWidth: int(params.Options.TabSize)}
	}
	out, err := format.Source([]byte(doc.content), style)
	if err != nil {
		// formatting an unparseable document is a no-op
		return nil, nil
	}

	formatted := string(out)
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := uint32(0)
	for _, c := range doc.content {
		if c == '\n' {
			lines++
		}
	}
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// replace the whole document with its formatted form
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: lines, Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
