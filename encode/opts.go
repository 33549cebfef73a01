package encode

import "errors"

var ErrEncode = errors.New("encode error")

type EncodeOption func(*EncState)

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
