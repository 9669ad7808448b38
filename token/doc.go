// Package token tokenizes block-YAML text for lossless parsing.
//
// Unlike a conventional lexer, every token carries the raw bytes that
// preceded it (whitespace, line breaks, comments) so that the token stream
// concatenates back to the exact input.
package token
