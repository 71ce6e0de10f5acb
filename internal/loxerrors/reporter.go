package loxerrors

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w      io.Writer
	styles *reporterStyles
}

type reporterStyles struct {
	label lipgloss.Style
	fatal lipgloss.Style
	hint  lipgloss.Style
}

// NewErrReporter returns a reporter writing plain diagnostics to w.
func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// NewStyledErrReporter returns a reporter that colors the level labels.
// The color profile is detected from w, so non-terminal writers get plain text.
func NewStyledErrReporter(w io.Writer) *errReporter {
	r := lipgloss.NewRenderer(w)
	return &errReporter{
		w: w,
		styles: &reporterStyles{
			label: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			fatal: r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			hint:  r.NewStyle().Faint(true),
		},
	}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	for _, err := range Flatten(err) {
		fmt.Fprintf(e.w, "%s %v\n", e.render("FATAL", func(s *reporterStyles) lipgloss.Style { return s.fatal }), err)
	}
}

// ReportError implements ErrReporter.
//
// Joined errors are reported one per line.
func (e *errReporter) ReportError(err error) {
	for _, err := range Flatten(err) {
		fmt.Fprintf(e.w, "%s %v\n", e.render("ERROR", func(s *reporterStyles) lipgloss.Style { return s.label }), err)

		var rt *RuntimeError
		if errors.As(err, &rt) && rt.Suggestion != "" {
			hint := fmt.Sprintf("  did you mean '%s'?", rt.Suggestion)
			fmt.Fprintln(e.w, e.render(hint, func(s *reporterStyles) lipgloss.Style { return s.hint }))
		}
	}
}

func (e *errReporter) render(text string, style func(*reporterStyles) lipgloss.Style) string {
	if e.styles == nil {
		return text
	}
	return style(e.styles).Render(text)
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, err error) {
	NewErrReporter(w).ReportPanic(err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, err error) {
	NewErrReporter(w).ReportError(err)
}

var _ ErrReporter = (*errReporter)(nil)
