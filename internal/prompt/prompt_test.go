package prompt

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mortgageQuestions = []Question{
	{Label: "Enter the Property Cost", Default: "2000000"},
	{Label: "Enter the Down Payment Percentage", Default: "15%"},
	{Label: "Enter the interest rate percentage", Default: "4%"},
}

func TestQuestion_Text(t *testing.T) {
	assert.Equal(t, "Enter the Property Cost (Default 2000000): ", mortgageQuestions[0].Text())
	assert.Equal(t, "Years: ", Question{Label: "Years"}.Text())
}

func TestLinePrompter_Ask(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"all answered", "1500000\n20\n3,5\n", []string{"1500000", "20", "3,5"}},
		{"empty lines use defaults", "\n\n\n", []string{"", "", ""}},
		{"windows line endings", "1\r\n2\r\n3\r\n", []string{"1", "2", "3"}},
		{"short input", "1500000\n", []string{"1500000", "", ""}},
		{"no trailing newline", "1\n2\n3", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Ask(mortgageQuestions)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Enter the interest rate percentage (Default 4%): ")
		})
	}
}

func TestNew_NonTerminalFallsBackToLines(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{}, true)
	_, ok := p.(*LinePrompter)
	assert.True(t, ok)
	assert.False(t, IsTerminal(strings.NewReader("")))
}

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func press(m tea.Model, k tea.KeyType) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestFormModel_FillAndSubmit(t *testing.T) {
	var m tea.Model = newFormModel(mortgageQuestions)

	m = typeText(m, "1500000")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "3,5")
	m, cmd := press(m, tea.KeyEnter)

	require.NotNil(t, cmd)
	fm := m.(formModel)
	assert.True(t, fm.done)
	assert.False(t, fm.aborted)
	assert.Equal(t, []string{"1500000", "", "3,5"}, fm.answers())
	assert.Empty(t, fm.View())
}

func TestFormModel_Abort(t *testing.T) {
	var m tea.Model = newFormModel(mortgageQuestions)
	m = typeText(m, "1")
	m, cmd := press(m, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.True(t, m.(formModel).aborted)
}

func TestFormModel_FocusWraps(t *testing.T) {
	var m tea.Model = newFormModel(mortgageQuestions)
	m, _ = press(m, tea.KeyShiftTab)
	assert.Equal(t, 2, m.(formModel).focus)

	view := m.View()
	assert.Contains(t, view, "Enter the Property Cost")
	assert.Contains(t, view, "esc: cancel")
}
