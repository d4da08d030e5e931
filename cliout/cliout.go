// Package cliout provides structured output formatting for CLI commands.
// It supports human-readable text and JSON output with consistent styling
// using ANSI colors and Unicode symbols, falling back to ASCII where the
// terminal cannot display Unicode.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIDot     = "*"
)

var (
	// mu protects the global state variables below
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !term.IsTerminal(int(os.Stdout.Fd()))
)

// supportsUnicode detects if the terminal supports Unicode symbols
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS == "windows" {
		// Windows Terminal, VS Code terminal, and PowerShell support Unicode
		if os.Getenv("WT_SESSION") != "" {
			return true
		}
		if os.Getenv("TERM_PROGRAM") == "vscode" {
			return true
		}
		if os.Getenv("PSModulePath") != "" {
			return true
		}
		if os.Getenv("TERM") != "" {
			return true
		}
		// Old Windows Console/CMD gets ASCII
		return false
	}
	return true
}

// getSymbol returns the appropriate symbol based on Unicode support
func getSymbol(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// colorize wraps text in a color code unless colors are disabled.
func colorize(color, text string) string {
	mu.RLock()
	disabled := noColor
	mu.RUnlock()
	if disabled {
		return text
	}
	return color + text + Reset
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format: JSON marshals the data
// object, default runs the formatter function.
func Print(data interface{}, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Label prints an aligned "name: value" row.
func Label(name, value string) {
	fmt.Printf("  %s %s\n", colorize(Gray, name+":"), value)
}

// Success prints a message with a check mark.
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Green, getSymbol(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Failure prints a message with a cross mark.
func Failure(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Red, getSymbol(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a message with a warning sign.
func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Yellow, getSymbol(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints a message with an info sign.
func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Cyan, getSymbol(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Item prints a bulleted list item.
func Item(format string, args ...interface{}) {
	fmt.Printf("  %s %s\n", getSymbol(SymbolDot, ASCIIDot), fmt.Sprintf(format, args...))
}
