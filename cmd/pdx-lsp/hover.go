package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	start, end := wordAt(doc.content, off)
	if start == end {
		return nil, nil
	}
	word := doc.content[start:end]

	var lines []string
	if node := doc.nodeAt(start); node != nil {
		lines = append(lines, nodeText(node))
	}
	if mult, ok := s.table[word]; ok {
		lines = append(lines, fmt.Sprintf("modifier `%s` multiplied by %v", word, mult))
	}
	if len(lines) == 0 {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: strings.Join(lines, "\n\n"),
		},
		Range: &protocol.Range{
			Start: offsetPosition(doc.content, start),
			End:   offsetPosition(doc.content, end),
		},
	}, nil
}

// nodeAt returns the parsed node starting at the given byte offset,
// if any.
func (doc *document) nodeAt(off int) *ir.Node {
	for node, pos := range doc.positions {
		if pos.I == off {
			return node
		}
	}
	return nil
}

func nodeText(node *ir.Node) string {
	switch node.Type {
	case ir.IdentType:
		return fmt.Sprintf("identifier `%s`", node.String)
	case ir.StringType:
		return fmt.Sprintf("string %s", node.String)
	case ir.NumberType:
		return fmt.Sprintf("number `%s`", node.Literal())
	case ir.ColorType:
		return fmt.Sprintf("color `{ %d %d %d }`", node.Red, node.Green, node.Blue)
	case ir.ListingType:
		return fmt.Sprintf("listing of %d elements", len(node.Values))
	case ir.BlockType:
		return fmt.Sprintf("block of %d expressions", len(node.Fields))
	}
	return node.Type.String()
}

func wordAt(content string, off int) (int, int) {
	if off < 0 || off > len(content) {
		return 0, 0
	}
	start, end := off, off
	for start > 0 && token.IsWordByte(content[start-1]) {
		start--
	}
	for end < len(content) && token.IsWordByte(content[end]) {
		end++
	}
	return start, end
}

func offsetPosition(content string, off int) protocol.Position {
	line, col := 0, 0
	for i := 0; i < off && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}
