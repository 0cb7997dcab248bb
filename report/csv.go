// Package report exports a vsfsck diagnostic transcript to CSV, for
// consumers that want a durable record of a run rather than (or in
// addition to) the stdout transcript. It is purely additive: nothing here
// changes the engine's behavior or invariants.
package report

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/dargueta/vsfsck/check"
)

// Row is one diagnostic event, shaped for gocsv marshaling.
type Row struct {
	Stage    string `csv:"stage"`
	Severity string `csv:"severity"`
	Message  string `csv:"message"`
}

// WriteCSV marshals diags to w as CSV, one row per diagnostic in the order
// they were emitted.
func WriteCSV(w io.Writer, diags []check.Diagnostic) error {
	rows := make([]Row, len(diags))
	for i, d := range diags {
		rows[i] = Row{
			Stage:    d.Stage,
			Severity: d.Severity.String(),
			Message:  d.Message,
		}
	}
	return gocsv.Marshal(rows, w)
}
