package token

import (
	"errors"
	"testing"
)

type tokenizeTest struct {
	in   string
	toks []string
	e    error
}

func TestTokenize(t *testing.T) {
	tts := []tokenizeTest{
		{
			in:   `base_tax = 1.5`,
			toks: []string{"base_tax", "=", "1.5"},
		},
		{
			in:   "a = { b = 1 }",
			toks: []string{"a", "=", "{", "b", "=", "1", "}"},
		},
		{
			in:   "color = { 100 0 255 }",
			toks: []string{"color", "=", "{", "100", "0", "255", "}"},
		},
		{
			in:   "date = 1444.11.11",
			toks: []string{"date", "=", "1444.11.11"},
		},
		{
			in:   "a = yes # trailing comment",
			toks: []string{"a", "=", "yes"},
		},
		{
			in:   "# full line comment\na = yes",
			toks: []string{"a", "=", "yes"},
		},
		{
			in:   "desc = \"multi\nline\"",
			toks: []string{"desc", "=", "\"multi\nline\""},
		},
		{
			in:   "modifier=-0.25",
			toks: []string{"modifier", "=", "-0.25"},
		},
		{
			in: `s = "unterminated`,
			e:  ErrUnterminated,
		},
		{
			in: "a = yes\n% = no",
			e:  ErrBadByte,
		},
		{
			in:   "",
			toks: []string{},
		},
	}
	for i, tt := range tts {
		toks, err := Tokenize(nil, []byte(tt.in))
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("test %d: got error %v, want %v", i, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}
		if len(toks) != len(tt.toks) {
			t.Errorf("test %d: got %d tokens, want %d", i, len(toks), len(tt.toks))
			continue
		}
		for j := range toks {
			if toks[j].String() != tt.toks[j] {
				t.Errorf("test %d token %d: got %q, want %q", i, j, toks[j].String(), tt.toks[j])
			}
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a = yes\nbb = no\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(toks); n != 6 {
		t.Fatalf("got %d tokens, want 6", n)
	}
	line, col := toks[3].Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("got line=%d col=%d for %q, want 1, 0", line, col, toks[3].String())
	}
	line, col = toks[5].Pos.LineCol()
	if line != 1 || col != 5 {
		t.Errorf("got line=%d col=%d for %q, want 1, 5", line, col, toks[5].String())
	}
}
