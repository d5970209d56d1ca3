package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI escape sequences for terminal output.
const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiCyan  = "\033[36m"
	ansiDim   = "\033[2m"
	ansiBold  = "\033[1m"
)

// colorEnabled is off when NO_COLOR is set.
var colorEnabled = os.Getenv("NO_COLOR") == ""

// DisableColors disables ANSI color output.
func DisableColors() { colorEnabled = false }

// EnableColors enables ANSI color output.
func EnableColors() { colorEnabled = true }

func paint(text string, codes ...string) string {
	if !colorEnabled || len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + ansiReset
}

// Format returns the error formatted for terminal display:
//
//	ERROR H040: Root element not found [lifecycle]
//
//	  no element matches "#app"
//
//	  Hint: Check the selector passed to app.New
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	head := "ERROR: "
	if e.Code != "" {
		head = "ERROR " + e.Code + ": "
	}
	b.WriteString(paint(head, ansiRed, ansiBold))
	b.WriteString(paint(e.Message, ansiBold))
	if e.Category != "" {
		b.WriteString(paint(" ["+string(e.Category)+"]", ansiDim))
	}
	b.WriteString("\n\n")

	block := func(label, text string) {
		if text == "" {
			return
		}
		for i, line := range wrapText(text, 70) {
			b.WriteString("  ")
			if i == 0 && label != "" {
				b.WriteString(paint(label, ansiCyan))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	block("", e.Detail)
	if e.Wrapped != nil {
		block("Cause: ", e.Wrapped.Error())
	}
	block("Hint: ", e.Suggestion)

	return b.String()
}

// FormatCompact returns the error on one line.
func (e *Error) FormatCompact() string {
	s := e.Message
	if e.Code != "" {
		s = e.Code + ": " + s
	}
	if e.Detail != "" {
		s += " (" + e.Detail + ")"
	}
	return s
}

// wrapText breaks text into lines of at most width bytes, splitting on
// whitespace. A single word longer than width keeps its own line.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{words[0]}
	for _, w := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(w) > width {
			lines = append(lines, w)
			continue
		}
		*last += " " + w
	}
	return lines
}

// PrintError writes err to w, using Format for coded errors.
func PrintError(w io.Writer, err error) {
	var he *Error
	if As(err, &he) {
		fmt.Fprint(w, he.Format())
		return
	}
	fmt.Fprintf(w, "\n%s%s\n\n", paint("ERROR: ", ansiRed, ansiBold), err.Error())
}
