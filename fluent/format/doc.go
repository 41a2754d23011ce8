// Package format renders arbitrary values for assertion failure messages.
//
// It favors the notation test authors write in source: quoted strings,
// bracketed comma-separated sequences, sorted maps. It is not a general
// pretty-printer; structured values fall back to a go-spew dump.
package format
