package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type targetKind int

const (
	targetRepo targetKind = iota
	targetToken
)

// deleteTarget pins the confirmation to a specific row. The id keeps a
// stale confirmation from deleting whatever happens to be selected when
// the answer arrives.
type deleteTarget struct {
	kind  targetKind
	id    int64
	label string
}

type confirmAnsweredMsg struct {
	confirmed bool
	target    deleteTarget
}

type confirmModel struct {
	target deleteTarget
}

func newConfirmModel(target deleteTarget) confirmModel {
	return confirmModel{target: target}
}

func (m confirmModel) Update(msg tea.Msg) (confirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		return m, func() tea.Msg {
			return confirmAnsweredMsg{confirmed: true, target: m.target}
		}

	case "n", "N", "esc", "ctrl+c":
		return m, func() tea.Msg {
			return confirmAnsweredMsg{confirmed: false, target: m.target}
		}
	}

	return m, nil
}

func (m confirmModel) View() string {
	noun := "repository"
	if m.target.kind == targetToken {
		noun = "token"
	}

	s := headerStyle.Render("Confirm Delete") + "\n\n"
	s += fmt.Sprintf(" Delete %s %q?\n\n", noun, m.target.label)
	s += helpStyleForm.Render(" y: delete • n/esc: cancel")

	return s
}
