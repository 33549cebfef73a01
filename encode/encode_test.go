package encode

import (
	"bytes"
	"testing"

	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	root, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return root
}

func encodeString(t *testing.T, root *ir.Node) string {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := Encode(root, buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

type encodeTest struct {
	in  string
	out string
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{
			in:  "base_tax = 1.5",
			out: "base_tax = 1.5\n",
		},
		{
			in:  "a  =   yes # comment\n",
			out: "a = yes\n",
		},
		{
			in:  "color = { 10 20 30 }",
			out: "color = { 10 20 30 }\n",
		},
		{
			in:  "a = { }",
			out: "a = { }\n",
		},
		{
			// single scalar entry inlines
			in:  "a = { factor = 1 }",
			out: "a = { factor = 1 }\n",
		},
		{
			// single entry with block rhs goes multi-line
			in:  "a = { b = { } }",
			out: "a = {\n\tb = { }\n}\n",
		},
		{
			in:  "a = { b = 1 c = 2 }",
			out: "a = {\n\tb = 1\n\tc = 2\n}\n",
		},
		{
			in:  "l = { single }",
			out: "l = { single }\n",
		},
		{
			in:  "l = { one two }",
			out: "l = {\n\tone\n\ttwo\n}\n",
		},
		{
			in:  "o = { i = { x = { a = 1 b = 2 } } }",
			out: "o = {\n\ti = {\n\t\tx = {\n\t\t\ta = 1\n\t\t\tb = 2\n\t\t}\n\t}\n}\n",
		},
		{
			in:  "s = \"quotes kept verbatim\"",
			out: "s = \"quotes kept verbatim\"\n",
		},
	}
	for i, et := range ets {
		got := encodeString(t, mustParse(t, et.in))
		if got != et.out {
			t.Errorf("test %d: got %q, want %q", i, got, et.out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"a = 1\nb = { c = 2.5 d = { e f g } }\ncol = { 1 2 3 }\n",
		"trigger = {\n\talways = yes\n}\nlist = { x }\n",
		"s = \"multi\nline value\"\n",
		"empty = { }\n",
	}
	for i, src := range srcs {
		first := mustParse(t, src)
		text := encodeString(t, first)
		second := mustParse(t, text)
		if !ir.Equal(first, second) {
			t.Errorf("test %d: reparse of %q not structurally equal", i, text)
		}
		// canonical output is a fixed point
		if again := encodeString(t, second); again != text {
			t.Errorf("test %d: second encode differs: %q vs %q", i, again, text)
		}
	}
}

func TestUnmutatedLiteralStable(t *testing.T) {
	root := mustParse(t, "x = 1.50\n")
	if got := encodeString(t, root); got != "x = 1.50\n" {
		t.Errorf("untouched literal reformatted: %q", got)
	}
	root.Values[0].Multiply(2)
	if got := encodeString(t, root); got != "x = 3\n" {
		t.Errorf("mutated value printed as %q, want 3", got)
	}
}
