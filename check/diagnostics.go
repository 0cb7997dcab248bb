package check

import (
	"fmt"
	"io"
)

// Severity classifies a Diagnostic. Info diagnostics are stage banners and
// "fixed" confirmations; Error diagnostics name a specific corruption and
// the repair applied to it.
type Severity int

const (
	Info Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "INFO"
}

// Diagnostic is one event in the engine's diagnostic stream (spec.md §1:
// "the engine emits a stream of diagnostic events"). Formatting and
// destination are an external collaborator's concern, not the engine's.
type Diagnostic struct {
	Severity Severity
	Stage    string
	Message  string
}

// Emitter receives Diagnostic events as checks produce them.
type Emitter interface {
	Emit(d Diagnostic)
}

// Collector gathers every Diagnostic it receives, in order. Used in tests
// and to build the CSV report.
type Collector struct {
	Items []Diagnostic
}

func (c *Collector) Emit(d Diagnostic) {
	c.Items = append(c.Items, d)
}

// WriterEmitter formats diagnostics as plain text lines, one per event,
// matching the original tool's printf-based transcript.
type WriterEmitter struct {
	W io.Writer
}

func (w WriterEmitter) Emit(d Diagnostic) {
	if d.Severity == Error {
		fmt.Fprintf(w.W, "ERROR: %s\n", d.Message)
		return
	}
	fmt.Fprintln(w.W, d.Message)
}

// teeEmitter forwards every Diagnostic to inner (which may be nil) while
// also appending it to items, so Run can hand the caller a live transcript
// and still return the full list in Result.
type teeEmitter struct {
	inner Emitter
	items *[]Diagnostic
}

func (t teeEmitter) Emit(d Diagnostic) {
	*t.items = append(*t.items, d)
	if t.inner != nil {
		t.inner.Emit(d)
	}
}

func emitError(emit Emitter, stage, format string, args ...any) {
	emit.Emit(Diagnostic{Severity: Error, Stage: stage, Message: fmt.Sprintf(format, args...)})
}

func emitInfo(emit Emitter, stage, message string) {
	emit.Emit(Diagnostic{Severity: Info, Stage: stage, Message: message})
}
