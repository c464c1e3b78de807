// Package cli holds the terminal output of the axonscan command.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
)

// Diagnostics writes leveled, optionally colored output for humans
type Diagnostics struct {
	level    DiagnosticLevel
	output   io.Writer
	errorOut io.Writer
	indent   int

	red, yellow, blue, green, gray, cyan *color.Color
}

// NewDiagnostics creates diagnostics writing to output and errorOut
func NewDiagnostics(level DiagnosticLevel, output, errorOut io.Writer) *Diagnostics {
	d := &Diagnostics{
		level:    level,
		output:   output,
		errorOut: errorOut,
		red:      color.New(color.FgRed, color.Bold),
		yellow:   color.New(color.FgYellow),
		blue:     color.New(color.FgBlue),
		green:    color.New(color.FgGreen),
		gray:     color.New(color.FgHiBlack),
		cyan:     color.New(color.FgCyan, color.Bold),
	}
	d.SetColors(shouldUseColors())
	return d
}

// NewStdDiagnostics writes to the process's stdout and stderr
func NewStdDiagnostics(level DiagnosticLevel) *Diagnostics {
	return NewDiagnostics(level, os.Stdout, os.Stderr)
}

// SetColors forces colored output on or off
func (d *Diagnostics) SetColors(enabled bool) {
	for _, c := range []*color.Color{d.red, d.yellow, d.blue, d.green, d.gray, d.cyan} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Error outputs error messages (always shown unless silent)
func (d *Diagnostics) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage(d.errorOut, "ERROR", d.red, format, args...)
	}
}

// Warn outputs warning messages
func (d *Diagnostics) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.writeMessage(d.errorOut, "WARN", d.yellow, format, args...)
	}
}

// Info outputs informational messages
func (d *Diagnostics) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "INFO", d.blue, format, args...)
	}
}

// Success outputs success messages with emphasis
func (d *Diagnostics) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "OK", d.green, format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *Diagnostics) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage(d.output, "VERBOSE", d.gray, format, args...)
	}
}

// Section creates a prominent section header
func (d *Diagnostics) Section(title string) {
	if d.level >= DiagnosticInfo {
		d.cyan.Fprintf(d.output, "%s%s\n", d.getIndent(), title)
	}
}

// Subsection creates a subsection header
func (d *Diagnostics) Subsection(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s%s\n", d.getIndent(), title)
	}
}

// List outputs a bulleted list item
func (d *Diagnostics) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s- %s\n", d.getIndent(), fmt.Sprintf(format, args...))
	}
}

// Hints writes suggestions below an error
func (d *Diagnostics) Hints(hints []string) {
	if d.level < DiagnosticError || len(hints) == 0 {
		return
	}
	for _, h := range hints {
		d.gray.Fprintf(d.errorOut, "%s  hint: %s\n", d.getIndent(), h)
	}
}

// Indent increases the indentation level
func (d *Diagnostics) Indent() {
	d.indent++
}

// Unindent decreases the indentation level
func (d *Diagnostics) Unindent() {
	if d.indent > 0 {
		d.indent--
	}
}

// Summary outputs a final summary with statistics in key order
func (d *Diagnostics) Summary(title string, stats map[string]string) {
	if d.level < DiagnosticInfo {
		return
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(d.output, "\n%s\n", title)
	for _, k := range keys {
		fmt.Fprintf(d.output, "   %s: %s\n", k, stats[k])
	}
}

func (d *Diagnostics) writeMessage(w io.Writer, level string, c *color.Color, format string, args ...interface{}) {
	var b strings.Builder
	b.WriteString(d.getIndent())
	b.WriteString(c.Sprintf("[%s]", level))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf(format, args...))
	b.WriteString("\n")
	fmt.Fprint(w, b.String())
}

func (d *Diagnostics) getIndent() string {
	return strings.Repeat("  ", d.indent)
}

// shouldUseColors determines if colors should be used
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return !color.NoColor
}
