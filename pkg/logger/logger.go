// Package logger is the diagnostic sink for the scanner and the parser.
// The sink is borrowed by both and outlives them; implementations must not
// retain the source beyond the call.
package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jacobjonsson/packet/pkg/source"
	"github.com/jacobjonsson/packet/pkg/span"
)

// Severity ranks a diagnostic message.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

// Location is a resolved message position.
type Location struct {
	Line     int
	Column   int
	Length   int
	LineText string
}

// Message is a single recorded diagnostic.
type Message struct {
	Severity Severity
	Text     string
	Location Location
}

// Sink receives diagnostics from the front end.
type Sink interface {
	// Report records a message anchored to a region of src.
	Report(src *source.Source, loc span.Span, text string, severity Severity)
	// HasErrors reports whether any Error-severity message was recorded.
	HasErrors() bool
}

func locate(src *source.Source, loc span.Span) Location {
	pos := src.PositionFor(loc.Start)
	return Location{
		Line:     pos.Line,
		Column:   pos.Column,
		Length:   loc.Len(),
		LineText: pos.LineText,
	}
}

// Recorder is a sink that collects messages in order. Used by tests and by
// the library facade.
type Recorder struct {
	Messages []Message
	errors   int
}

func (r *Recorder) Report(src *source.Source, loc span.Span, text string, severity Severity) {
	if severity == Error {
		r.errors++
	}
	r.Messages = append(r.Messages, Message{
		Severity: severity,
		Text:     text,
		Location: locate(src, loc),
	})
}

func (r *Recorder) HasErrors() bool {
	return r.errors > 0
}

// Pretty is a sink that writes human-readable diagnostics:
//
//	>[line:col] Error: message
//	  line | text of the offending line
//	                 ^^^^
type Pretty struct {
	Out    io.Writer
	errors int
}

var (
	severityColor = color.New(color.FgRed, color.Bold)
	messageColor  = color.New(color.Bold)
	gutterColor   = color.New(color.FgBlue)
)

func (p *Pretty) Report(src *source.Source, loc span.Span, text string, severity Severity) {
	if severity == Error {
		p.errors++
	}
	l := locate(src, loc)

	fmt.Fprintf(p.Out, ">[%d:%d] %s: %s\n", l.Line, l.Column, severityColor.Sprint(severity), messageColor.Sprint(text))

	gutter := fmt.Sprintf("  %d | ", l.Line)
	fmt.Fprintf(p.Out, "%s%s\n", gutterColor.Sprint(gutter), l.LineText)

	caretLen := l.Length
	if caretLen < 1 {
		caretLen = 1
	}
	if max := len(l.LineText) - l.Column; caretLen > max && max > 0 {
		caretLen = max
	}
	pad := strings.Repeat(" ", len(gutter)+l.Column)
	fmt.Fprintf(p.Out, "%s%s\n", pad, severityColor.Sprint(strings.Repeat("^", caretLen)))
}

func (p *Pretty) HasErrors() bool {
	return p.errors > 0
}
