package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/linkr/internal/core"
)

type tokenFormSubmittedMsg struct{ form core.TokenForm }

type tokenFormCancelledMsg struct{}

// addTokenModel is the new-token modal form. The secret input is masked
// and its buffer is dropped as soon as the form leaves the screen.
type addTokenModel struct {
	focusIndex int
	inputs     []textinput.Model
	fieldErr   string
}

const (
	tokenFieldName = iota
	tokenFieldSecret
)

func newAddTokenModel() addTokenModel {
	m := addTokenModel{
		inputs: make([]textinput.Model, 2),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case tokenFieldName:
			t.Placeholder = "token name"
			t.CharLimit = 128
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case tokenFieldSecret:
			t.Placeholder = "ghp_..."
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}

		m.inputs[i] = t
	}

	return m
}

func (m addTokenModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m addTokenModel) Update(msg tea.Msg) (addTokenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return tokenFormCancelledMsg{} }

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if strings.TrimSpace(m.inputs[tokenFieldName].Value()) == "" {
					m.fieldErr = "name is required"

					return m, nil
				}

				if strings.TrimSpace(m.inputs[tokenFieldSecret].Value()) == "" {
					m.fieldErr = "token is required"

					return m, nil
				}

				m.fieldErr = ""

				form := core.TokenForm{
					Name:   m.inputs[tokenFieldName].Value(),
					Secret: m.inputs[tokenFieldSecret].Value(),
				}

				return m, func() tea.Msg { return tokenFormSubmittedMsg{form: form} }
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}

				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *addTokenModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m addTokenModel) View() string {
	s := headerStyle.Render("Add GitHub Token") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Name:"), m.inputs[tokenFieldName].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Token:"), m.inputs[tokenFieldSecret].View())

	if m.fieldErr != "" {
		s += bannerStyle.Render(" "+m.fieldErr) + "\n"
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)
	s += helpStyleForm.Render(" tab/shift+tab: navigate • enter: submit • esc: cancel")

	return s
}
