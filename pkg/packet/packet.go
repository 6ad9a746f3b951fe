// Package packet is the public entry point of the library: parse JavaScript
// source into a syntax tree, scan it into tokens, or print a tree back to
// source text.
package packet

import (
	"github.com/jacobjonsson/packet/internal/lexer"
	"github.com/jacobjonsson/packet/internal/parser"
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/printer"
	"github.com/jacobjonsson/packet/pkg/source"
	"github.com/jacobjonsson/packet/pkg/token"
)

// Parse runs the full front end over the given text. The returned
// diagnostics contain every reported message; parsing halts on the first
// error, so the program may be partial when diagnostics are non-empty.
func Parse(contents string) (*ast.Program, []logger.Message) {
	src := source.New("<input>", contents)
	sink := &logger.Recorder{}
	program, _ := ParseSource(src, sink)
	return program, sink.Messages
}

// ParseSource parses with an explicit source and sink. Errors have already
// been reported to the sink when the returned error is non-nil.
func ParseSource(src *source.Source, sink logger.Sink) (*ast.Program, error) {
	p, err := parser.New(src, sink)
	if err != nil {
		return &ast.Program{}, err
	}
	return p.ParseProgram()
}

// ScanAll tokenises the text with the default scanner mode and returns the
// tokens up to the end of input. The regexp and template-span re-entry
// modes are parser-driven and do not occur here.
func ScanAll(contents string) ([]token.Token, error) {
	src := source.New("<input>", contents)
	sink := &logger.Recorder{}
	lex := lexer.New(src, sink)

	var tokens []token.Token
	for {
		if err := lex.Next(); err != nil {
			return tokens, err
		}
		if lex.Token().Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, lex.Token())
	}
}

// Print serialises a program back to JavaScript source text.
func Print(program *ast.Program) string {
	return printer.Print(program)
}
