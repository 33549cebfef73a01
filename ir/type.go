package ir

import "fmt"

type Type int

const (
	IdentType Type = iota
	StringType
	NumberType
	ColorType
	ListingType
	BlockType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		IdentType:   "Identifier",
		StringType:  "String",
		NumberType:  "Number",
		ColorType:   "Color",
		ListingType: "Listing",
		BlockType:   "Block",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Identifier": IdentType,
		"String":     StringType,
		"Number":     NumberType,
		"Color":      ColorType,
		"Listing":    ListingType,
		"Block":      BlockType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		IdentType,
		StringType,
		NumberType,
		ColorType,
		ListingType,
		BlockType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListingType, BlockType:
		return false
	default:
		return true
	}
}
