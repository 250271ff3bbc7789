package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// ANSI escape sequences for terminal output. Everything funnels through
// colorize so --no-color switches the whole CLI to plain text.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + colorReset
}

// stderrLine prints a prefixed, colorized status line. Status output goes to
// stderr so stdout stays clean for data (JSON, rendered markdown).
func stderrLine(color, prefix, format string, args ...any) {
	fmt.Fprintln(os.Stderr, colorize(color, prefix+fmt.Sprintf(format, args...)))
}

func printSuccess(format string, args ...any) {
	stderrLine(colorGreen, "✓ ", format, args...)
}

func printError(format string, args ...any) {
	stderrLine(colorRed, "✗ ", format, args...)
}

func printWarning(format string, args ...any) {
	stderrLine(colorYellow, "⚠ ", format, args...)
}

func printStep(format string, args ...any) {
	stderrLine(colorCyan, "→ ", format, args...)
}

// printStatus writes a labeled value to stdout.
func printStatus(label string, format string, args ...any) {
	val := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stdout, "  %s %s\n", colorize(colorBold, label+":"), val)
}

// renderMarkdown pretty-prints AI responses for the terminal. Falls back to
// the raw text when rendering is unavailable or colors are disabled.
func renderMarkdown(md string) string {
	if noColor {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
