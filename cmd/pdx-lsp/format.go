package main

import (
	"bytes"
	"context"

	"github.com/eu4tools/pdxmul/encode"

	"go.lsp.dev/protocol"
)

// Formatting reprints the document canonically: tab indentation, one
// expression per line, comments dropped.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.parseErr != nil || doc.root == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.root, &buf); err != nil {
		return nil, err
	}
	formatted := buf.String()
	if formatted == doc.content {
		return nil, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   offsetPosition(doc.content, len(doc.content)),
			},
			NewText: formatted,
		},
	}, nil
}
