// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     prompt
// Description: Line-based prompter for pipes and plain terminals
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter writes each question to out and reads one line from in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter. End of input counts as an empty answer, so a
// short pipe falls back to the defaults of the remaining questions.
func (p *LinePrompter) Ask(questions []Question) ([]string, error) {
	answers := make([]string, 0, len(questions))
	for _, q := range questions {
		if _, err := io.WriteString(p.out, q.Text()); err != nil {
			return nil, err
		}
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read answer for %q: %w", q.Label, err)
		}
		answers = append(answers, strings.TrimRight(line, "\r\n"))
	}
	return answers, nil
}
