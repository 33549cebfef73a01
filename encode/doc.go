// Package encode renders an ir tree back to Paradox script text.
//
// Output is canonical: comments are gone, indentation is tabs, and
// block/listing layout depends only on entry count and kind. A tree
// encoded by this package parses back to a structurally equal tree.
package encode
