package ui

import (
	"bytes"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

// Table aligns tab separated rows. A scope name leading a row is coloured
// after alignment so escape bytes never widen its column.
type Table struct {
	out io.Writer
	buf bytes.Buffer
	tw  *tabwriter.Writer
}

func NewTable(out io.Writer) *Table {
	t := &Table{out: out}
	t.tw = tabwriter.NewWriter(&t.buf, 0, 4, 2, ' ', 0)
	return t
}

func (t *Table) Write(p []byte) (int, error) {
	return t.tw.Write(p)
}

func (t *Table) Flush() error {
	if err := t.tw.Flush(); err != nil {
		return err
	}
	defer t.buf.Reset()

	for _, line := range strings.SplitAfter(t.buf.String(), "\n") {
		if line == "" {
			continue
		}
		if _, err := io.WriteString(t.out, colourLeadingScope(line)); err != nil {
			return err
		}
	}
	return nil
}

func colourLeadingScope(line string) string {
	for _, s := range scope.All {
		rest, ok := strings.CutPrefix(line, s.String())
		if ok && (rest == "" || rest[0] == ' ' || rest[0] == '\n') {
			return ScopeLabel(s) + rest
		}
	}
	return line
}
