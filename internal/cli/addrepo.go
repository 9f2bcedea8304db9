package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/linkr/internal/core"
)

const fmtField = " %s\n %s\n\n"

var (
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = focusedStyle
	noStyle       = lipgloss.NewStyle()
	helpStyleForm = blurredStyle

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

// repoFormSubmittedMsg carries the filled form back to the dashboard.
type repoFormSubmittedMsg struct{ form core.RepoLinkForm }

type repoFormCancelledMsg struct{}

// addRepoModel is the new-repository modal form. Validation beyond
// "URL present" happens in core when the form is submitted; the modal only
// refuses to submit an empty URL.
type addRepoModel struct {
	focusIndex int
	inputs     []textinput.Model
	fieldErr   string
}

const (
	repoFieldURL = iota
	repoFieldName
	repoFieldDescription
	repoFieldType
)

func newAddRepoModel() addRepoModel {
	m := addRepoModel{
		inputs: make([]textinput.Model, 4),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 512

		switch i {
		case repoFieldURL:
			t.Placeholder = "https://github.com/owner/repo"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case repoFieldName:
			t.Placeholder = "display name (optional)"
			t.CharLimit = 128
		case repoFieldDescription:
			t.Placeholder = "description (optional)"
		case repoFieldType:
			t.Placeholder = "source-control, design, documentation or other"
			t.CharLimit = 32
		}

		m.inputs[i] = t
	}

	return m
}

func (m addRepoModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m addRepoModel) Update(msg tea.Msg) (addRepoModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return repoFormCancelledMsg{} }

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if strings.TrimSpace(m.inputs[repoFieldURL].Value()) == "" {
					m.fieldErr = "URL is required"

					return m, nil
				}

				m.fieldErr = ""

				form := core.RepoLinkForm{
					URL:         m.inputs[repoFieldURL].Value(),
					Name:        m.inputs[repoFieldName].Value(),
					Description: m.inputs[repoFieldDescription].Value(),
					Type:        m.inputs[repoFieldType].Value(),
				}

				return m, func() tea.Msg { return repoFormSubmittedMsg{form: form} }
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

func (m *addRepoModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m addRepoModel) View() string {
	s := headerStyle.Render("Add Repository") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("URL:"), m.inputs[repoFieldURL].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Name:"), m.inputs[repoFieldName].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Description:"), m.inputs[repoFieldDescription].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Type:"), m.inputs[repoFieldType].View())

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
