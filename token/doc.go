// Package token provides tokenization support for Paradox script.
//
// [Tokenize] turns the bytes of a script file into a flat token
// sequence. Comments are consumed during tokenization and never
// surface in the result.
package token
