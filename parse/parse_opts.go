package parse

import (
	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/token"
)

type ParseOption func(*parseOpts)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

// ParsePositions records the source position of every parsed node in
// m, keyed by node. Callers use this for diagnostics.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func (o *parseOpts) trackPos(node *ir.Node, pos *token.Pos) {
	if o.positions != nil && pos != nil {
		o.positions[node] = pos
	}
}
