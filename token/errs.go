package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadByte      = errors.New("unexpected byte")
)

type TokenizeErr struct {
	Err error
	Pos *Pos
}

func NewTokenizeErr(err error, pos *Pos) *TokenizeErr {
	return &TokenizeErr{Err: err, Pos: pos}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Pos)
}
