package transform

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eu4tools/pdxmul/encode"
	"github.com/eu4tools/pdxmul/ir"
	"github.com/eu4tools/pdxmul/modtable"
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

func encoded(t *testing.T, root *ir.Node) string {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := encode.Encode(root, buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestMultiply(t *testing.T) {
	root := mustParse(t, "base_tax = 1.5\nunrelated = 3\n")
	tr := &Transformer{Table: modtable.Table{"base_tax": 10}}
	if !tr.Process(root) {
		t.Fatal("no change reported")
	}
	got := encoded(t, root)
	if got != "base_tax = 15\nunrelated = 3\n" {
		t.Errorf("got %q", got)
	}
}

func TestIgnoreBlockScoping(t *testing.T) {
	root := mustParse(t, "trigger = { always = yes some_modifier = 5 }\n")
	tr := &Transformer{
		Table:        modtable.Table{"some_modifier": 10},
		IgnoreBlocks: map[string]bool{"trigger": true},
	}
	if tr.Process(root) {
		t.Fatal("change reported inside ignore block")
	}
	if got := encoded(t, root); !strings.Contains(got, "some_modifier = 5") {
		t.Errorf("value inside trigger mutated: %q", got)
	}
}

func TestIgnoreBlockNested(t *testing.T) {
	in := "ai_will_do = {\n\tfactor = 1\n\tmodifier = { factor = 0.5 }\n}\n"
	root := mustParse(t, in)
	tr := &Transformer{
		Table:        modtable.Table{"factor": 10},
		IgnoreBlocks: map[string]bool{"ai_will_do": true},
	}
	if tr.Process(root) {
		t.Fatal("change reported")
	}
	if got := encoded(t, root); got != in {
		t.Errorf("ignored subtree changed: %q", got)
	}
}

func TestDeepDescent(t *testing.T) {
	root := mustParse(t, "country_event_effects = {\n\tbonus = {\n\t\tbase_tax = 2\n\t}\n}\n")
	tr := &Transformer{Table: modtable.Table{"base_tax": 3}}
	if !tr.Process(root) {
		t.Fatal("no change reported")
	}
	if got := encoded(t, root); !strings.Contains(got, "base_tax = 6") {
		t.Errorf("got %q", got)
	}
}

func TestAnomalousMatch(t *testing.T) {
	var diag string
	root := mustParse(t, "merchants = yes\n")
	tr := &Transformer{
		Table: modtable.Table{"merchants": 10},
		Path:  "technologies/dip.txt",
		Warnf: func(format string, args ...any) { diag = fmt.Sprintf(format, args...) },
	}
	if tr.Process(root) {
		t.Fatal("non-numeric match reported as change")
	}
	if got := encoded(t, root); got != "merchants = yes\n" {
		t.Errorf("non-numeric value mutated: %q", got)
	}
	if !strings.Contains(diag, "merchants") || !strings.Contains(diag, "technologies/dip.txt") {
		t.Errorf("diagnostic %q lacks key or path", diag)
	}
}

func TestNotIdempotent(t *testing.T) {
	root := mustParse(t, "base_tax = 1\n")
	tr := &Transformer{Table: modtable.Table{"base_tax": 10}}
	tr.Process(root)
	tr.Process(root)
	if got := encoded(t, root); got != "base_tax = 100\n" {
		t.Errorf("got %q, want re-multiplied 100", got)
	}
}

func TestProcessStatic(t *testing.T) {
	in := `stability = {
	global_tax_modifier = 0.2
}
war_exhaustion = {
	global_tax_modifier = -0.1
}
`
	root := mustParse(t, in)
	tr := &Transformer{
		Table:        modtable.Table{"global_tax_modifier": 2},
		StaticIgnore: map[string]bool{"war_exhaustion": true},
	}
	changed, err := tr.ProcessStatic(root)
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Fatal("no change reported")
	}
	got := encoded(t, root)
	if !strings.Contains(got, "global_tax_modifier = 0.4") {
		t.Errorf("stability entry not multiplied: %q", got)
	}
	if !strings.Contains(got, "global_tax_modifier = -0.1") {
		t.Errorf("ignored top-level key mutated: %q", got)
	}
}

func TestProcessStaticShape(t *testing.T) {
	root := mustParse(t, "stability = yes\n")
	tr := &Transformer{}
	if _, err := tr.ProcessStatic(root); !errors.Is(err, ErrStatic) {
		t.Errorf("got %v, want ErrStatic", err)
	}
}
