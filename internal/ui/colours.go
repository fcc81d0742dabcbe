package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

var (
	Green   = color.New(color.FgGreen)
	Red     = color.New(color.FgRed)
	Yellow  = color.New(color.FgYellow)
	Cyan    = color.New(color.FgCyan)
	Magenta = color.New(color.FgMagenta)
	Gray    = color.New(color.FgHiBlack)

	Heading = color.New(color.Bold, color.Underline)

	RedInverse = color.New(color.ReverseVideo, color.FgRed)
)

var scopeColors = map[scope.Scope]*color.Color{
	scope.Candidate: Green,
	scope.Recruiter: Cyan,
	scope.Admin:     Magenta,
}

// DisableColour turns colour off for every writer, as in production.
func DisableColour() {
	color.NoColor = true
}

// ScopeLabel renders s in its scope colour.
func ScopeLabel(s scope.Scope) string {
	c, ok := scopeColors[s]
	if !ok {
		return s.String()
	}
	return c.Sprint(s.String())
}

func Success(w io.Writer, format string, args ...any) {
	_, _ = Green.Fprintln(w, fmt.Sprintf(format, args...))
}

func Failure(w io.Writer, format string, args ...any) {
	_, _ = Red.Fprintln(w, fmt.Sprintf(format, args...))
}

func Notice(w io.Writer, format string, args ...any) {
	_, _ = Yellow.Fprintln(w, fmt.Sprintf(format, args...))
}

// Title prints a section heading followed by a blank line.
func Title(w io.Writer, title string) {
	_, _ = Heading.Fprintln(w, title)
	_, _ = fmt.Fprintln(w)
}
