package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/model"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// pane identifies which dashboard region has keyboard focus.
type pane int

const (
	paneLinks pane = iota
	paneTokens
	paneFeed
)

// mode identifies what the dashboard is currently hosting.
type mode int

const (
	modeBrowse mode = iota
	modeAddRepo
	modeAddToken
	modeConfirm
)

// Load-completion messages. Each list has its own message so a reload of
// one never disturbs the others.
type linksLoadedMsg struct{ state core.LinksState }

type tokensLoadedMsg struct{ state core.TokensState }

type commitsLoadedMsg struct{ state core.FeedState }

// tokensInvalidatedMsg signals that the token list is stale and must be
// refetched. Emitted after any token mutation.
type tokensInvalidatedMsg struct{}

// linksInvalidatedMsg signals that the repository list is stale. Repository
// mutations also invalidate the commit feed, since the feed aggregates over
// the linked repositories.
type linksInvalidatedMsg struct{}

// mutationFailedMsg carries a mutation error into the banner.
type mutationFailedMsg struct{ err error }

// DashboardModel is the page controller: it owns the project identifier,
// the three view states, and whichever modal is open.
type DashboardModel struct {
	service  *core.Service
	project  string
	pageSize int

	links        core.LinksState
	tokens       core.TokensState
	feed         core.FeedState
	tokensLoaded bool

	linkList  list.Model
	tokenList list.Model

	focus   pane
	mode    mode
	spinner spinner.Model

	addRepo  addRepoModel
	addToken addTokenModel
	confirm  confirmModel

	banner   string
	width    int
	height   int
	quitting bool
}

// NewDashboard builds the dashboard for a project. The lists start empty;
// Init schedules the three loads.
func NewDashboard(service *core.Service, project string, pageSize int) DashboardModel {
	if pageSize <= 0 {
		pageSize = model.DefaultCommitPageSize
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ll := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	ll.Title = "Repositories"
	ll.SetShowStatusBar(false)
	ll.SetFilteringEnabled(false)

	tl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	tl.Title = "GitHub Tokens"
	tl.SetShowStatusBar(false)
	tl.SetFilteringEnabled(false)

	return DashboardModel{
		service:   service,
		project:   project,
		pageSize:  pageSize,
		linkList:  ll,
		tokenList: tl,
		spinner:   s,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadLinks,
		m.loadTokens,
		m.loadCommits,
	)
}

// SetProject switches the dashboard to another project and drops every
// loaded state, including the loaded-from-API marker.
func (m DashboardModel) SetProject(project string) (DashboardModel, tea.Cmd) {
	m.project = project
	m.links = core.LinksState{}
	m.tokens = core.TokensState{}
	m.feed = core.FeedState{}
	m.tokensLoaded = false
	m.banner = ""
	m.linkList.SetItems(nil)
	m.tokenList.SetItems(nil)

	return m, tea.Batch(m.loadLinks, m.loadTokens, m.loadCommits)
}

func (m DashboardModel) loadLinks() tea.Msg {
	return linksLoadedMsg{state: m.service.LoadRepoLinks(context.Background(), m.project)}
}

func (m DashboardModel) loadTokens() tea.Msg {
	return tokensLoadedMsg{state: m.service.LoadTokens(context.Background(), m.project)}
}

func (m DashboardModel) loadCommits() tea.Msg {
	projectID, err := core.ParseProjectID(m.project)
	if err != nil {
		return commitsLoadedMsg{}
	}

	return commitsLoadedMsg{state: m.service.LoadCommits(context.Background(), projectID, m.pageSize)}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.linkList.SetSize(msg.Width-h, (msg.Height-v)/2)
		m.tokenList.SetSize(msg.Width-h, (msg.Height-v)/2)

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case linksLoadedMsg:
		m.links = msg.state
		m.linkList.SetItems(linkItems(msg.state.Links))

		return m, nil

	case tokensLoadedMsg:
		// A failed first load leaves the pane quietly empty; the failure is
		// already logged. Later failures are shown, since the user then has
		// stale data on screen.
		if msg.state.Err != "" && !m.tokensLoaded {
			msg.state.Err = ""
		}

		if msg.state.Err == "" {
			m.tokensLoaded = true
		}

		m.tokens = msg.state
		m.tokenList.SetItems(tokenItems(msg.state.Tokens))

		return m, nil

	case commitsLoadedMsg:
		m.feed = msg.state

		return m, nil

	case linksInvalidatedMsg:
		m.banner = ""
		// A successful create is what closes the add-repository modal.
		if m.mode == modeAddRepo {
			m.mode = modeBrowse
		}

		return m, tea.Batch(m.loadLinks, m.loadCommits)

	case tokensInvalidatedMsg:
		m.banner = ""
		if m.mode == modeAddToken {
			m.mode = modeBrowse
		}

		return m, tea.Batch(m.loadTokens, m.loadCommits)

	case mutationFailedMsg:
		// Create failures stay inside the open modal with the form buffer
		// intact, so the user can edit and resubmit.
		switch m.mode {
		case modeAddRepo:
			m.addRepo.fieldErr = msg.err.Error()
		case modeAddToken:
			m.addToken.fieldErr = msg.err.Error()
		default:
			m.banner = msg.err.Error()
		}

		return m, nil

	case repoFormSubmittedMsg:
		return m, m.createRepo(msg.form)

	case repoFormCancelledMsg:
		m.mode = modeBrowse

		return m, nil

	case tokenFormSubmittedMsg:
		return m, m.createToken(msg.form)

	case tokenFormCancelledMsg:
		m.mode = modeBrowse

		return m, nil

	case confirmAnsweredMsg:
		m.mode = modeBrowse
		if !msg.confirmed {
			return m, nil
		}

		return m, m.deleteTarget(msg.target)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.routeToModal(msg)
}

// routeToModal forwards non-key messages (cursor blinks and the like) to
// whichever modal is open.
func (m DashboardModel) routeToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.mode {
	case modeAddRepo:
		m.addRepo, cmd = m.addRepo.Update(msg)
	case modeAddToken:
		m.addToken, cmd = m.addToken.Update(msg)
	}

	return m, cmd
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals swallow all keys while open.
	switch m.mode {
	case modeAddRepo:
		var cmd tea.Cmd

		m.addRepo, cmd = m.addRepo.Update(msg)

		return m, cmd

	case modeAddToken:
		var cmd tea.Cmd

		m.addToken, cmd = m.addToken.Update(msg)

		return m, cmd

	case modeConfirm:
		var cmd tea.Cmd

		m.confirm, cmd = m.confirm.Update(msg)

		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true

		return m, tea.Quit

	case "tab":
		m.focus = (m.focus + 1) % 3

		return m, nil

	case "shift+tab":
		m.focus = (m.focus + 2) % 3

		return m, nil

	case "r":
		return m, tea.Batch(m.loadLinks, m.loadTokens, m.loadCommits)

	case "a":
		switch m.focus {
		case paneLinks:
			m.mode = modeAddRepo
			m.addRepo = newAddRepoModel()

			return m, m.addRepo.Init()

		case paneTokens:
			m.mode = modeAddToken
			m.addToken = newAddTokenModel()

			return m, m.addToken.Init()
		}

		return m, nil

	case "enter", " ":
		return m.toggleSelected()

	case "d":
		return m.confirmDeleteSelected()
	}

	return m.updateFocusedList(msg)
}

func (m DashboardModel) updateFocusedList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case paneLinks:
		m.linkList, cmd = m.linkList.Update(msg)
	case paneTokens:
		m.tokenList, cmd = m.tokenList.Update(msg)
	}

	return m, cmd
}

func (m DashboardModel) toggleSelected() (tea.Model, tea.Cmd) {
	switch m.focus {
	case paneLinks:
		item, ok := m.linkList.SelectedItem().(linkItem)
		if !ok || item.link.Record == nil {
			return m, nil
		}

		return m, m.toggleRepo(item.link)

	case paneTokens:
		item, ok := m.tokenList.SelectedItem().(tokenItem)
		if !ok {
			return m, nil
		}

		return m, m.toggleToken(item.token)
	}

	return m, nil
}

func (m DashboardModel) confirmDeleteSelected() (tea.Model, tea.Cmd) {
	switch m.focus {
	case paneLinks:
		item, ok := m.linkList.SelectedItem().(linkItem)
		if !ok {
			return m, nil
		}

		m.mode = modeConfirm
		m.confirm = newConfirmModel(deleteTarget{
			kind:  targetRepo,
			id:    item.link.ID,
			label: item.link.Label,
		})

	case paneTokens:
		item, ok := m.tokenList.SelectedItem().(tokenItem)
		if !ok {
			return m, nil
		}

		m.mode = modeConfirm
		m.confirm = newConfirmModel(deleteTarget{
			kind:  targetToken,
			id:    item.token.ID,
			label: item.token.Name,
		})
	}

	return m, nil
}

// Mutation commands. Each one runs against the backend and, on success,
// emits the invalidation message for the lists it made stale.

func (m DashboardModel) createRepo(form core.RepoLinkForm) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.service.CreateRepoLink(context.Background(), m.project, form); err != nil {
			return mutationFailedMsg{err: err}
		}

		return linksInvalidatedMsg{}
	}
}

func (m DashboardModel) toggleRepo(link model.RepoLink) tea.Cmd {
	return func() tea.Msg {
		if err := m.service.ToggleRepoLink(context.Background(), link); err != nil {
			return mutationFailedMsg{err: err}
		}

		return linksInvalidatedMsg{}
	}
}

func (m DashboardModel) createToken(form core.TokenForm) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.service.CreateToken(context.Background(), m.project, form); err != nil {
			return mutationFailedMsg{err: err}
		}

		return tokensInvalidatedMsg{}
	}
}

func (m DashboardModel) toggleToken(token model.GitHubToken) tea.Cmd {
	return func() tea.Msg {
		if err := m.service.ToggleToken(context.Background(), token); err != nil {
			return mutationFailedMsg{err: err}
		}

		return tokensInvalidatedMsg{}
	}
}

func (m DashboardModel) deleteTarget(t deleteTarget) tea.Cmd {
	return func() tea.Msg {
		switch t.kind {
		case targetRepo:
			if err := m.service.DeleteRepoLink(context.Background(), t.id); err != nil {
				return mutationFailedMsg{err: err}
			}

			return linksInvalidatedMsg{}

		case targetToken:
			if err := m.service.DeleteToken(context.Background(), t.id); err != nil {
				return mutationFailedMsg{err: err}
			}

			return tokensInvalidatedMsg{}
		}

		return nil
	}
}

func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeAddRepo:
		return docStyle.Render(m.addRepo.View())
	case modeAddToken:
		return docStyle.Render(m.addToken.View())
	case modeConfirm:
		return docStyle.Render(m.confirm.View())
	}

	s := headerStyle.Render(fmt.Sprintf("Project %s", m.project)) + "\n"

	if m.banner != "" {
		s += bannerStyle.Render(m.banner) + "\n"
	}

	switch m.focus {
	case paneLinks:
		if !m.links.FromAPI && m.links.Err == "" {
			s += "\n" + m.spinner.View() + " Loading repositories..."
		} else {
			s += "\n" + m.linkList.View()
		}

		if m.links.Err != "" {
			s += "\n" + bannerStyle.Render(m.links.Err)
		}
	case paneTokens:
		s += "\n" + m.tokenList.View()
		s += "\n" + renderActiveToken(m.tokens)
		if m.tokens.Err != "" {
			s += "\n" + bannerStyle.Render(m.tokens.Err)
		}
	case paneFeed:
		s += "\n" + headerStyle.Render("Recent Commits") + "\n"
		s += renderFeed(m.feed, time.Now())
	}

	s += "\n" + dimStyle.Render("tab: switch pane • a: add • enter: toggle • d: delete • r: refresh • q: quit")

	return docStyle.Render(s)
}
