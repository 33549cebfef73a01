// Package parse provides Paradox script parsing support.
//
// The rhs of an expression is ambiguous in the source grammar: a bare
// numeral is both a valid Number and a valid Identifier, and a braced
// group can be a Color, a Listing or a Block. [Parse] resolves this by
// attempting every candidate production at the position and keeping
// the one that consumes the most input bytes; ties break by the fixed
// priority Number, Color, Listing, Block, Identifier, String.
package parse

import (
	"fmt"

	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/token"
)

// Parse consumes d entirely, returning the file's expressions as a
// root Block node. Any input that cannot be consumed by the top-level
// Expression* production is a parse failure; no partial tree is
// returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	root := &ir.Node{Type: ir.BlockType}
	i := 0
	for i < len(toks) {
		key, val, err := parseExpression(toks, &i, pOpts)
		if err != nil {
			return nil, err
		}
		root.Append(key, val)
	}
	return root, nil
}

func parseExpression(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, *ir.Node, error) {
	t := &toks[*pi]
	if t.Type != token.TWord || !isIdentifier(t.Bytes) {
		return nil, nil, fmt.Errorf("%w: expected identifier, got %s", ErrParse, t.Pos)
	}
	key := ir.FromIdent(t.String())
	opts.trackPos(key, t.Pos)
	*pi++
	if *pi >= len(toks) || toks[*pi].Type != token.TEq {
		return nil, nil, fmt.Errorf("%w: expected '=' after %q at %s", ErrParse, key.String, t.Pos)
	}
	*pi++
	if *pi >= len(toks) {
		return nil, nil, fmt.Errorf("%w: missing value for %q at %s", ErrParse, key.String, t.Pos)
	}
	val, err := parseValue(toks, pi, opts)
	if err != nil {
		return nil, nil, err
	}
	return key, val, nil
}

type production func(toks []token.Token, i int, opts *parseOpts) (*ir.Node, int, bool)

// productions in tie-break priority order.
var productions []production

func init() {
	productions = []production{
		numberProduction,
		colorProduction,
		listingProduction,
		blockProduction,
		identProduction,
		stringProduction,
	}
}

// parseValue attempts every production at *pi and selects the one
// whose last consumed token ends furthest into the input. Ties keep
// the earlier (higher priority) production.
func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	var (
		best     *ir.Node
		bestNext int
		bestEnd  = -1
	)
	for _, prod := range productions {
		node, next, ok := prod(toks, *pi, opts)
		if !ok {
			continue
		}
		if end := toks[next-1].End(); end > bestEnd {
			best, bestNext, bestEnd = node, next, end
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: expected value, got %s", ErrParse, toks[*pi].Pos)
	}
	opts.trackPos(best, toks[*pi].Pos)
	*pi = bestNext
	return best, nil
}

func numberProduction(toks []token.Token, i int, _ *parseOpts) (*ir.Node, int, bool) {
	t := &toks[i]
	if t.Type != token.TWord || !isNumber(t.Bytes) {
		return nil, 0, false
	}
	node, err := ir.NumberFromLiteral(t.String())
	if err != nil {
		return nil, 0, false
	}
	return node, i + 1, true
}

func colorProduction(toks []token.Token, i int, _ *parseOpts) (*ir.Node, int, bool) {
	if toks[i].Type != token.TLCurl || i+4 >= len(toks) {
		return nil, 0, false
	}
	var rgb [3]int
	for j := 0; j < 3; j++ {
		t := &toks[i+1+j]
		if t.Type != token.TWord || !isDigits(t.Bytes) {
			return nil, 0, false
		}
		v := 0
		for _, c := range t.Bytes {
			v = v*10 + int(c-'0')
		}
		rgb[j] = v
	}
	if toks[i+4].Type != token.TRCurl {
		return nil, 0, false
	}
	return ir.FromColor(rgb[0], rgb[1], rgb[2]), i + 5, true
}

func listingProduction(toks []token.Token, i int, opts *parseOpts) (*ir.Node, int, bool) {
	if toks[i].Type != token.TLCurl {
		return nil, 0, false
	}
	node := &ir.Node{Type: ir.ListingType}
	for j := i + 1; j < len(toks); j++ {
		t := &toks[j]
		switch t.Type {
		case token.TRCurl:
			if len(node.Values) == 0 {
				// an empty group is a Block, not a Listing
				return nil, 0, false
			}
			return node, j + 1, true
		case token.TWord:
			if !isIdentifier(t.Bytes) {
				return nil, 0, false
			}
			elem := ir.FromIdent(t.String())
			opts.trackPos(elem, t.Pos)
			node.Values = append(node.Values, elem)
		case token.TString:
			elem := ir.FromString(t.String())
			opts.trackPos(elem, t.Pos)
			node.Values = append(node.Values, elem)
		default:
			return nil, 0, false
		}
	}
	return nil, 0, false
}

func blockProduction(toks []token.Token, i int, opts *parseOpts) (*ir.Node, int, bool) {
	if toks[i].Type != token.TLCurl {
		return nil, 0, false
	}
	node := &ir.Node{Type: ir.BlockType}
	j := i + 1
	for j < len(toks) {
		if toks[j].Type == token.TRCurl {
			return node, j + 1, true
		}
		key, val, err := parseExpression(toks, &j, opts)
		if err != nil {
			return nil, 0, false
		}
		node.Append(key, val)
	}
	return nil, 0, false
}

func identProduction(toks []token.Token, i int, _ *parseOpts) (*ir.Node, int, bool) {
	t := &toks[i]
	if t.Type != token.TWord || !isIdentifier(t.Bytes) {
		return nil, 0, false
	}
	return ir.FromIdent(t.String()), i + 1, true
}

func stringProduction(toks []token.Token, i int, _ *parseOpts) (*ir.Node, int, bool) {
	t := &toks[i]
	if t.Type != token.TString {
		return nil, 0, false
	}
	return ir.FromString(t.String()), i + 1, true
}

// isIdentifier checks the word against the identifier character
// classes: the leading byte may not be '+', '.' or ':', which only
// appear in numbers, dates and compound keys past the first position.
// Bytes above 0x7f are tolerated so Latin-1 names parse.
func isIdentifier(d []byte) bool {
	if len(d) == 0 {
		return false
	}
	switch d[0] {
	case '+', '.', ':':
		return false
	}
	return true
}

// isNumber matches [sign]digits[.digits] over the whole word. A word
// the pattern cannot consume entirely is not a Number; the identifier
// production then wins on length (e.g. 1.5.2).
func isNumber(d []byte) bool {
	i := 0
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	start := i
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i < len(d) && d[i] == '.' {
		i++
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			i++
		}
	}
	return i == len(d)
}

func isDigits(d []byte) bool {
	if len(d) == 0 {
		return false
	}
	for _, c := range d {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
