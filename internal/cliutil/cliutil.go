// Package cliutil renders diagnostics.Diagnostic values for a terminal,
// grounded on funvibe-funxy's terminal-color detection
// (internal/evaluator/builtins_term.go's detectColorLevel, built on
// github.com/mattn/go-isatty), generalized here from funxy's REPL output
// buffering to one-shot diagnostic formatting.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/soypat/fortran-asr/internal/diagnostics"
)

// ColorMode selects whether diagnostics are rendered with ANSI color.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a config.CLIConfig.Color string to a ColorMode.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// IsTerminal reports whether f is attached to an interactive terminal,
// following the teacher's IsTerminal-or-IsCygwinTerminal check so Windows
// consoles (ConEmu, mintty) are still detected as a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// shouldColor resolves mode against out and the NO_COLOR convention
// (https://no-color.org/, the same convention the teacher's
// detectColorLevel honors).
func shouldColor(mode ColorMode, out *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return IsTerminal(out)
	}
}

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiReset  = "\x1b[0m"
)

func severityColor(sev diagnostics.Severity) string {
	switch sev {
	case diagnostics.SeverityWarning:
		return ansiYellow
	case diagnostics.SeverityInternal:
		return ansiCyan
	default:
		return ansiRed
	}
}

// WriteDiagnostics renders each diagnostic as one line to out, colored
// when mode/out call for it.
func WriteDiagnostics(out *os.File, mode ColorMode, diags []*diagnostics.Diagnostic) {
	color := shouldColor(mode, out)
	var b strings.Builder
	for _, d := range diags {
		if color {
			fmt.Fprintf(&b, "%s%s%s: %s\n", severityColor(d.Severity), d.Position.String(), ansiReset, d.Message)
		} else {
			fmt.Fprintf(&b, "%s: %s: %s\n", d.Position.String(), d.Severity, d.Message)
		}
	}
	io.WriteString(out, b.String())
}
