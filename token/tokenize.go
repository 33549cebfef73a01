package token

// IsWordByte reports whether c can appear inside a word token. Bytes
// above 0x7f are accepted so that Latin-1 and UTF-8 encoded text both
// pass through the tokenizer untouched.
func IsWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c >= 0x80:
		return true
	}
	switch c {
	case '_', '-', '+', '.', ':':
		return true
	}
	return false
}

// Tokenize appends the tokens of src to dst and returns the result.
// Whitespace separates tokens and is otherwise insignificant; '#'
// comments run to end of line and are dropped.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	d := posDoc.d
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch {
		case c == '\n':
			posDoc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			for i < n && d[i] != '\n' {
				i++
			}
		case c == '=':
			dst = append(dst, Token{Type: TEq, Bytes: d[i : i+1], Pos: posDoc.Pos(i)})
			i++
		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Bytes: d[i : i+1], Pos: posDoc.Pos(i)})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Bytes: d[i : i+1], Pos: posDoc.Pos(i)})
			i++
		case c == '"':
			tok, off, err := quotedString(d[i:], posDoc.Pos(i))
			if err != nil {
				return nil, err
			}
			for j := i; j < i+off; j++ {
				if d[j] == '\n' {
					posDoc.nl(j)
				}
			}
			dst = append(dst, *tok)
			i += off
		case IsWordByte(c):
			j := i
			for j < n && IsWordByte(d[j]) {
				j++
			}
			dst = append(dst, Token{Type: TWord, Bytes: d[i:j], Pos: posDoc.Pos(i)})
			i = j
		default:
			return nil, NewTokenizeErr(ErrBadByte, posDoc.Pos(i))
		}
	}
	return dst, nil
}

// quotedString scans a double-quoted string starting at d[0] == '"'.
// Strings may span lines and carry no escape sequences; the quotes are
// part of the token bytes.
func quotedString(d []byte, pos *Pos) (*Token, int, error) {
	for i := 1; i < len(d); i++ {
		if d[i] == '"' {
			return &Token{Type: TString, Bytes: d[:i+1], Pos: pos}, i + 1, nil
		}
	}
	return nil, 0, NewTokenizeErr(ErrUnterminated, pos)
}
