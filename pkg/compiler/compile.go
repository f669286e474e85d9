// Package compiler wires the three pipeline stages together: lexical
// analysis, recursive-descent parsing and syntax-directed C++
// emission. Every Compile call gets its own stage state, so runs over
// independent inputs are safe in parallel.
package compiler

import (
	"github.com/agenthands/pseudoc/pkg/compiler/emitter"
	"github.com/agenthands/pseudoc/pkg/compiler/lexer"
	"github.com/agenthands/pseudoc/pkg/compiler/parser"
)

// Compile translates pseudocode source into C++ source text. The only
// error it can return is the parser's syntax error; lexing and
// emission are total, and malformed input otherwise comes out as a
// best-effort translation.
func Compile(source string) (string, error) {
	tokens := lexer.Scan(source)

	prog, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}

	return emitter.New().Emit(prog), nil
}
