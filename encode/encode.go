package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eu4tools/pdxmul/ir"
)

type EncState struct {
	depth int
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the expressions of a root Block node, one per line,
// without surrounding braces.
func Encode(root *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if root.Type != ir.BlockType {
		return fmt.Errorf("%w: document root is %s, not Block", ErrEncode, root.Type)
	}
	for i := range root.Fields {
		if err := encodeExpression(root.Fields[i], root.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeExpression(key, val *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, tabs(es.depth)); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, key.Type, FieldColor, key.String)); err != nil {
		return err
	}
	if err := writeString(w, applyColor(es, key.Type, SepColor, " = ")); err != nil {
		return err
	}
	if err := encodeValue(val, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.IdentType, ir.StringType:
		return writeString(w, applyColor(es, node.Type, ValueColor, node.String))
	case ir.NumberType:
		return writeString(w, applyColor(es, node.Type, ValueColor, node.Literal()))
	case ir.ColorType:
		rgb := fmt.Sprintf("{ %s %s %s }",
			strconv.Itoa(node.Red), strconv.Itoa(node.Green), strconv.Itoa(node.Blue))
		return writeString(w, applyColor(es, node.Type, ValueColor, rgb))
	case ir.ListingType:
		return encodeListing(node, w, es)
	case ir.BlockType:
		return encodeBlock(node, w, es)
	default:
		panic("type")
	}
}

func encodeListing(node *ir.Node, w io.Writer, es *EncState) error {
	switch len(node.Values) {
	case 0:
		return writeString(w, "{ }")
	case 1:
		if err := writeString(w, "{ "); err != nil {
			return err
		}
		if err := encodeValue(node.Values[0], w, es); err != nil {
			return err
		}
		return writeString(w, " }")
	}
	if err := writeString(w, "{\n"); err != nil {
		return err
	}
	for _, elem := range node.Values {
		if err := writeString(w, tabs(es.depth+1)); err != nil {
			return err
		}
		if err := encodeValue(elem, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return writeString(w, tabs(es.depth)+"}")
}

func encodeBlock(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{ }")
	}
	if len(node.Fields) == 1 && node.Values[0].Type.IsLeaf() {
		key, val := node.Fields[0], node.Values[0]
		if err := writeString(w, "{ "); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, key.Type, FieldColor, key.String)); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, key.Type, SepColor, " = ")); err != nil {
			return err
		}
		if err := encodeValue(val, w, es); err != nil {
			return err
		}
		return writeString(w, " }")
	}
	if err := writeString(w, "{\n"); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if err := encodeExpression(node.Fields[i], node.Values[i], w, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return writeString(w, tabs(es.depth)+"}")
}

func tabs(n int) string {
	return strings.Repeat("\t", n)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
