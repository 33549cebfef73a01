// Package ir defines the tree representation of parsed Paradox script.
//
// The node kinds form a small closed set. A parsed file is a root
// [BlockType] node; blocks hold their expressions as parallel
// Fields/Values slices, so the i-th expression of a block is the pair
// (Fields[i], Values[i]). Entry order is significant and preserved,
// and every node is owned by exactly one parent.
package ir
