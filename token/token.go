package token

import "fmt"

type Type int

const (
	TWord Type = iota
	TString
	TEq
	TLCurl
	TRCurl
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TWord:   "Word",
		TString: "String",
		TEq:     "Eq",
		TLCurl:  "LCurl",
		TRCurl:  "RCurl",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

type Token struct {
	Type  Type
	Bytes []byte
	Pos   *Pos
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at %s", t.Type, string(t.Bytes), t.Pos)
}

// End returns the byte offset one past the token's last byte. The
// longest-match dispatch in package parse compares candidate
// productions by this value.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}
