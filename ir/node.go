package ir

import (
	"math"
	"strconv"
)

type Node struct {
	Type Type

	// String holds the value of IdentType and StringType nodes. For
	// strings the surrounding double quotes are part of the value.
	String string

	// Number nodes keep the source literal alongside exactly one of
	// Int64/Float64. The literal is cleared when the value is mutated,
	// so untouched numbers reprint byte for byte while mutated ones
	// are reformatted from the value.
	Number  string
	Int64   *int64
	Float64 *float64

	Red, Green, Blue int

	// Values holds listing elements, or block expression values.
	Values []*Node
	// Fields holds block expression keys, parallel to Values.
	Fields []*Node
}

func FromIdent(v string) *Node {
	return &Node{Type: IdentType, String: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

func FromColor(r, g, b int) *Node {
	return &Node{Type: ColorType, Red: r, Green: g, Blue: b}
}

// NumberFromLiteral builds a Number node from its source text,
// deciding integer/float kind from the presence of a decimal point.
func NumberFromLiteral(lit string) (*Node, error) {
	node := &Node{Type: NumberType, Number: lit}
	for i := 0; i < len(lit); i++ {
		if lit[i] != '.' {
			continue
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, err
		}
		node.Float64 = &f
		return node, nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, err
	}
	node.Int64 = &i
	return node, nil
}

// Float returns the numeric value of a Number node of either kind.
func (node *Node) Float() float64 {
	if node.Int64 != nil {
		return float64(*node.Int64)
	}
	if node.Float64 != nil {
		return *node.Float64
	}
	return 0
}

// Multiply scales a Number node in place. Integer kind is preserved
// when both the value and the product stay integral; otherwise the
// node switches to float kind. The source literal is dropped so the
// new value prints.
func (node *Node) Multiply(m float64) {
	node.Number = ""
	if node.Int64 != nil && m == math.Trunc(m) {
		v := *node.Int64 * int64(m)
		node.Int64 = &v
		return
	}
	f := node.Float() * m
	node.Int64 = nil
	node.Float64 = &f
}

// Literal returns the text a Number node prints as.
func (node *Node) Literal() string {
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
}

// Append adds the expression (key, val) to a block.
func (node *Node) Append(key, val *Node) {
	node.Fields = append(node.Fields, key)
	node.Values = append(node.Values, val)
}

// Get returns the value of the first expression keyed by field, or
// nil.
func (node *Node) Get(field string) *Node {
	for i := range node.Fields {
		if node.Fields[i].String == field {
			return node.Values[i]
		}
	}
	return nil
}

// Visit walks the tree depth first. f is called twice per node, pre-
// and post-order; returning false from the pre-order call skips the
// node's children.
func (node *Node) Visit(f func(node *Node, isPost bool) bool) {
	dive := f(node, false)
	if dive {
		for _, child := range node.Values {
			child.Visit(f)
		}
	}
	f(node, true)
}

// Equal reports structural equality. Number nodes compare by kind and
// value, not literal text, matching the round-trip contract.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case IdentType, StringType:
		return a.String == b.String
	case NumberType:
		if (a.Int64 == nil) != (b.Int64 == nil) {
			return false
		}
		if a.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		return *a.Float64 == *b.Float64
	case ColorType:
		return a.Red == b.Red && a.Green == b.Green && a.Blue == b.Blue
	case ListingType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case BlockType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if !Equal(a.Fields[i], b.Fields[i]) {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}
