// Package logging provides the styled console output used by every
// operation: single-line steps, warnings and failures, no stack traces.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	cmdStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Console writes styled progress lines for long-running operations.
type Console struct {
	out io.Writer
	err io.Writer
}

// NewConsole returns a console writing to stdout/stderr.
func NewConsole() *Console {
	return &Console{out: os.Stdout, err: os.Stderr}
}

// NewConsoleWriter returns a console writing to the given writers.
func NewConsoleWriter(out, errOut io.Writer) *Console {
	return &Console{out: out, err: errOut}
}

// Step announces the beginning of an operation phase.
func (c *Console) Step(format string, args ...any) {
	fmt.Fprintln(c.out, stepStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints a plain progress line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Command echoes an external command line before it runs.
func (c *Console) Command(cmd string) {
	fmt.Fprintln(c.out, cmdStyle.Render("$ "+cmd))
}

// Success reports an operation that completed.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warn reports a recoverable condition.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.err, warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Fail reports the failed step on a single line.
func (c *Console) Fail(format string, args ...any) {
	fmt.Fprintln(c.err, failStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}
