package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	isTTY   bool
	verbose bool

	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr

	cyan   = lipgloss.Color("6")
	green  = lipgloss.Color("2")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	// Styles - exported for use in other packages
	Primary = lipgloss.NewStyle().Foreground(cyan)
	Success = lipgloss.NewStyle().Foreground(green)
	Error   = lipgloss.NewStyle().Foreground(red)
	Warning = lipgloss.NewStyle().Foreground(yellow)
	Dim     = lipgloss.NewStyle().Foreground(dim)
	Bold    = lipgloss.NewStyle().Bold(true)
)

func init() {
	isTTY = term.IsTerminal(int(os.Stdout.Fd()))
	if !isTTY {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SetOutput redirects progress output and error output. Passing a non-file
// writer also disables the TTY-only behaviour (colors, spinner).
func SetOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		isTTY = true
		return
	}
	isTTY = false
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Out returns the writer used for regular output.
func Out() io.Writer {
	return out
}

// ErrOut returns the writer used for errors and warnings.
func ErrOut() io.Writer {
	return errOut
}

// SetVerbose enables/disables verbose mode
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

// IsTTY returns whether stdout is a terminal
func IsTTY() bool {
	return isTTY
}

// Step prints a step indicator: [1/3] Reading manifest
func Step(num, total int, msg string) {
	prefix := Dim.Render(fmt.Sprintf("[%d/%d]", num, total))
	fmt.Fprintf(out, "%s %s\n", prefix, msg)
}

// Detail prints indented secondary info with arrow
func Detail(msg string) {
	fmt.Fprintf(out, "  %s %s\n", Dim.Render("→"), msg)
}

// Verbose prints a message only in verbose mode (indented, dim)
func Verbose(msg string) {
	if verbose {
		fmt.Fprintf(out, "  %s %s\n", Dim.Render("→"), Dim.Render(msg))
	}
}

// Verbosef prints a formatted message only in verbose mode
func Verbosef(format string, a ...any) {
	Verbose(fmt.Sprintf(format, a...))
}

// SuccessMsg prints a success message with checkmark
func SuccessMsg(msg string) {
	fmt.Fprintf(out, "%s %s\n", Success.Render("✓"), msg)
}

// ErrorMsg prints an error to stderr with optional hints
func ErrorMsg(title string, err error, hints ...string) {
	fmt.Fprintf(errOut, "%s %s\n", Error.Render("✗"), title)
	if err != nil {
		fmt.Fprintf(errOut, "  %s\n", Dim.Render(err.Error()))
	}
	for _, hint := range hints {
		fmt.Fprintf(errOut, "  %s %s\n", Dim.Render("Hint:"), hint)
	}
}

// WarnMsg prints a warning message to stderr
func WarnMsg(msg string) {
	fmt.Fprintf(errOut, "%s %s\n", Warning.Render("!"), msg)
}

// FormatDuration formats duration nicely (e.g., "234ms" or "1.2s")
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes nicely (e.g., "890B", "1.2KB" or "3.4MB")
func FormatBytes(b int64) string {
	switch {
	case b < 1024:
		return fmt.Sprintf("%dB", b)
	case b < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(b)/(1024*1024))
	}
}

func Println(a ...any) {
	fmt.Fprintln(out, a...)
}

func Printf(format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
