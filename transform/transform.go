// Package transform applies modifier multipliers to parsed script
// trees, honoring the exclusion zones that wrap conditional and
// probability logic.
package transform

import (
	"errors"
	"fmt"

	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/modtable"
	"github.com/eu4tools/pdxmul/token"
)

// ErrStatic reports a static-modifier file whose top level is not the
// expected sequence of blocks.
var ErrStatic = errors.New("static file is not a sequence of blocks")

// Transformer multiplies Number values in place. It never edits tree
// structure. Applying it twice re-multiplies; callers must run it
// exactly once per tree.
type Transformer struct {
	Table modtable.Table

	// IgnoreBlocks are keys whose entire subtree is skipped.
	IgnoreBlocks map[string]bool

	// StaticIgnore are top-level keys left untouched in static
	// modifier files (ProcessStatic).
	StaticIgnore map[string]bool

	// Positions and Path, when set, locate diagnostics. Warnf
	// receives the diagnostic text; nil discards it.
	Positions map[*ir.Node]*token.Pos
	Path      string
	Warnf     func(format string, args ...any)
}

// Process walks the expressions of root depth first and reports
// whether any value changed.
func (tr *Transformer) Process(root *ir.Node) bool {
	changed := false
	for i := range root.Fields {
		if tr.expression(root.Fields[i], root.Values[i]) {
			changed = true
		}
	}
	return changed
}

// ProcessStatic applies the shallower static-file rule: each
// top-level key must hold a block of always-active modifiers; keys in
// StaticIgnore are skipped whole, the rest have their immediate
// children processed as usual.
func (tr *Transformer) ProcessStatic(root *ir.Node) (bool, error) {
	changed := false
	for i := range root.Fields {
		key, val := root.Fields[i], root.Values[i]
		if tr.StaticIgnore[key.String] {
			continue
		}
		if val.Type != ir.BlockType {
			return changed, fmt.Errorf("%w: %q is %s", ErrStatic, key.String, val.Type)
		}
		if tr.Process(val) {
			changed = true
		}
	}
	return changed, nil
}

func (tr *Transformer) expression(key, val *ir.Node) bool {
	if tr.IgnoreBlocks[key.String] {
		return false
	}
	if val.Type == ir.BlockType {
		changed := false
		for i := range val.Fields {
			if tr.expression(val.Fields[i], val.Values[i]) {
				changed = true
			}
		}
		return changed
	}
	mult, ok := tr.Table[key.String]
	if !ok {
		return false
	}
	if val.Type != ir.NumberType {
		// Some modifier names are reused for unrelated data
		// (e.g. merchants = yes in the technology files). Note
		// them and move on.
		tr.warnf("%s: %q%s holds %s %q, not a number; left unmodified",
			tr.Path, key.String, tr.at(key), val.Type, valueText(val))
		return false
	}
	val.Multiply(mult)
	return true
}

func (tr *Transformer) warnf(format string, args ...any) {
	if tr.Warnf == nil {
		return
	}
	tr.Warnf(format, args...)
}

func (tr *Transformer) at(node *ir.Node) string {
	if tr.Positions == nil {
		return ""
	}
	pos := tr.Positions[node]
	if pos == nil {
		return ""
	}
	line, col := pos.LineCol()
	return fmt.Sprintf(" (line %d, col %d)", line+1, col+1)
}

func valueText(val *ir.Node) string {
	switch val.Type {
	case ir.IdentType, ir.StringType:
		return val.String
	case ir.ListingType:
		return fmt.Sprintf("<%d elements>", len(val.Values))
	default:
		return val.Type.String()
	}
}
