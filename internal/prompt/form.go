// ============================================================================
// fincalc - Finanzmathematik auf der Kommandozeile
// ============================================================================
//
// Package:     prompt
// Description: Terminal form prompter (bubbletea)
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormPrompter shows all questions at once as a terminal form.
type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewFormPrompter creates a FormPrompter.
func NewFormPrompter(in io.Reader, out io.Writer) *FormPrompter {
	return &FormPrompter{in: in, out: out}
}

// Ask implements Prompter.
func (p *FormPrompter) Ask(questions []Question) ([]string, error) {
	prog := tea.NewProgram(newFormModel(questions), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("run form: %w", err)
	}
	m := final.(formModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.answers(), nil
}

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).MarginTop(1)
)

type formModel struct {
	questions []Question
	inputs    []textinput.Model
	focus     int
	done      bool
	aborted   bool
}

func newFormModel(questions []Question) formModel {
	inputs := make([]textinput.Model, len(questions))
	for i, q := range questions {
		ti := textinput.New()
		ti.Placeholder = q.Default
		ti.CharLimit = 64
		ti.Width = 30
		ti.Prompt = "> "
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return formModel{questions: questions, inputs: inputs}
}

// Init implements tea.Model
func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		if m.focus == len(m.inputs)-1 || len(m.inputs) == 0 {
			m.done = true
			return m, tea.Quit
		}
		return m.moveFocus(1), nil

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) moveFocus(delta int) formModel {
	if len(m.inputs) == 0 {
		return m
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// View implements tea.Model
func (m formModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	for i, q := range m.questions {
		style := labelStyle
		if i == m.focus {
			style = focusedStyle
		}
		b.WriteString(style.Render(q.Label))
		b.WriteByte('\n')
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("tab: next field  enter: confirm  esc: cancel"))
	b.WriteByte('\n')
	return b.String()
}

func (m formModel) answers() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}
