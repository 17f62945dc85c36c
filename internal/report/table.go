// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     report
// Description: Fixed-width text tables and summary blocks
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is one left-justified table column. Cells shorter than Width are
// padded with spaces, longer cells are not cut.
type Column struct {
	Title string
	Width int
}

// Table collects rows and writes them below a styled header and a dashed
// rule.
type Table struct {
	columns []Column
	rule    int
	rows    [][]string
}

// NewTable creates a table whose rule under the header is ruleWidth dashes.
func NewTable(ruleWidth int, columns ...Column) *Table {
	return &Table{columns: columns, rule: ruleWidth}
}

// AddRow appends one row. Missing cells are left empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w. Header styling is dropped when w is not a
// terminal.
func (t *Table) Render(w io.Writer) error {
	st := newStyles(w)
	var b strings.Builder
	t.write(&b, st)
	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Table) write(b *strings.Builder, st styles) {
	var header strings.Builder
	for _, c := range t.columns {
		header.WriteString(ljust(c.Title, c.Width))
	}
	b.WriteString(st.header.Render(header.String()))
	b.WriteByte('\n')
	b.WriteString(st.rule.Render(strings.Repeat("-", t.rule)))
	b.WriteByte('\n')

	for _, row := range t.rows {
		for i, c := range t.columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// The last cell is not padded.
			if i == len(t.columns)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(ljust(cell, c.Width))
		}
		b.WriteByte('\n')
	}
}

// Summary is a block of label/value lines printed above a table.
type Summary struct {
	labelWidth int
	lines      [][2]string
}

// NewSummary creates a summary whose labels are padded to labelWidth.
func NewSummary(labelWidth int) *Summary {
	return &Summary{labelWidth: labelWidth}
}

// Add appends one line.
func (s *Summary) Add(label, value string) {
	s.lines = append(s.lines, [2]string{label, value})
}

// Render writes the block followed by an empty line.
func (s *Summary) Render(w io.Writer) error {
	st := newStyles(w)
	var b strings.Builder
	s.write(&b, st)
	_, err := io.WriteString(w, b.String())
	return err
}

func (s *Summary) write(b *strings.Builder, st styles) {
	for _, line := range s.lines {
		b.WriteString(st.label.Render(ljust(line[0], s.labelWidth)))
		b.WriteString(line[1])
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// ljust pads s with spaces to width runes.
func ljust(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	header lipgloss.Style
	rule   lipgloss.Style
	label  lipgloss.Style
}

// newStyles binds the styles to w so the color profile follows the actual
// output and not os.Stdout.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(colorPrimary),
		rule:   r.NewStyle().Foreground(colorMuted),
		label:  r.NewStyle().Bold(true),
	}
}
