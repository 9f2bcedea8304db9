package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/linkr/internal/database"
	"github.com/inovacc/linkr/internal/model"
)

// ConfigureModel is the settings wizard run by `linkr configure`.
type ConfigureModel struct {
	focusIndex int
	inputs     []textinput.Model
	db         database.Store
	Saved      bool
	Err        error
}

func NewConfigureModel() (ConfigureModel, error) {
	db := database.GetDB()

	cfg, err := db.GetConfig()
	if err != nil {
		return ConfigureModel{}, err
	}

	m := ConfigureModel{
		inputs: make([]textinput.Model, 3),
		db:     db,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case 0:
			t.Placeholder = "http://localhost:3000"
			t.SetValue(cfg.ServerURL)
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "default project id"
			t.SetValue(cfg.DefaultProject)
		case 2:
			t.Placeholder = strconv.Itoa(model.DefaultCommitPageSize)
			t.CharLimit = 4
			t.SetValue(strconv.Itoa(cfg.CommitPageSize))
		}

		m.inputs[i] = t
	}

	return m, nil
}

func (m *ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true
		return m, tea.Quit
	case errMsg:
		m.Err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveConfig
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

func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *ConfigureModel) View() string {
	if m.Saved {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render("\n  ✓ Configuration saved successfully!\n\n")
	}

	if m.Err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	s := headerStyle.Render("Configure Linkr Settings") + "\n"
	s += blurredStyle.Render("Edit the fields below and press Tab to navigate") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Server URL:"), m.inputs[0].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Default Project:"), m.inputs[1].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Commit Page Size:"), m.inputs[2].View())

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n\n %s\n\n", *button)
	s += helpStyleForm.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

func (m *ConfigureModel) saveConfig() tea.Msg {
	pageSize, err := strconv.Atoi(m.inputs[2].Value())
	if err != nil || pageSize <= 0 {
		pageSize = model.DefaultCommitPageSize
	}

	cfg := &model.Config{
		ServerURL:      m.inputs[0].Value(),
		DefaultProject: m.inputs[1].Value(),
		CommitPageSize: pageSize,
	}

	if err := m.db.SaveConfig(cfg); err != nil {
		return errMsg{err}
	}

	return successMsg{}
}

type successMsg struct{}
type errMsg struct{ err error }
