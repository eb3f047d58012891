// Package syntax adapts the tree-sitter Python grammar to a small, immutable
// tree of [Node] values suited to static analysis of settings modules.
//
// [Parse] runs the parser once per call and converts the concrete syntax
// tree into nodes tagged with a [Kind]. Assignments, calls, keyword
// arguments, names, attributes, literals and sequence displays each get a
// dedicated kind with the fields an analyzer needs. Every other construct
// becomes [Other] and keeps its children, including punctuation tokens, so
// it can still be traversed and printed.
//
// Literal nodes carry canonical text: strings are decoded (escapes, raw
// prefixes, implicit concatenation), integers are rendered in base 10 and
// floats as Python's repr would print them.
//
// [Source] prints any subtree back to normalized source text. Whitespace is
// collapsed, comments are dropped and strings are re-quoted, so expressions
// that differ only in layout print identically.
//
// Comments never appear in the converted tree.
package syntax
