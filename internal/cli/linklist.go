package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/model"
)

type linkItem struct {
	link model.RepoLink
}

func (i linkItem) Title() string {
	marker := "○"
	if i.link.Active() {
		marker = "●"
	}

	return fmt.Sprintf("%s %s", marker, i.link.Label)
}

func (i linkItem) Description() string {
	desc := i.link.URL

	if i.link.Type != "" {
		desc = fmt.Sprintf("%s | %s", desc, i.link.Type)
	}

	if i.link.Record == nil {
		desc = fmt.Sprintf("%s | read-only", desc)
	}

	return desc
}

func (i linkItem) FilterValue() string {
	return i.link.Label
}

func linkItems(links []model.RepoLink) []list.Item {
	items := make([]list.Item, len(links))
	for i, l := range links {
		items[i] = linkItem{link: l}
	}

	return items
}

type tokenItem struct {
	token model.GitHubToken
}

func (i tokenItem) Title() string {
	marker := "○"
	if i.token.Active {
		marker = "●"
	}

	return fmt.Sprintf("%s %s", marker, i.token.Name)
}

func (i tokenItem) Description() string {
	desc := fmt.Sprintf("added %s", i.token.CreatedAt.Format("2006-01-02"))

	if i.token.CreatedBy != "" {
		desc = fmt.Sprintf("%s by %s", desc, i.token.CreatedBy)
	}

	return desc
}

func (i tokenItem) FilterValue() string {
	return i.token.Name
}

func tokenItems(tokens []model.GitHubToken) []list.Item {
	items := make([]list.Item, len(tokens))
	for i, t := range tokens {
		items[i] = tokenItem{token: t}
	}

	return items
}

// renderActiveToken summarizes which token the feed is using.
func renderActiveToken(state core.TokensState) string {
	if state.Active == nil {
		return dimStyle.Render("No active token. Commits from private repositories will not load.")
	}

	return dimStyle.Render(fmt.Sprintf("Active token: %s", state.Active.Name))
}
