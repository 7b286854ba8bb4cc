package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/salesops/salesdesk/internal/api"
	"github.com/salesops/salesdesk/internal/dashboard"
	"github.com/salesops/salesdesk/internal/session"
	"github.com/salesops/salesdesk/pkg/models"
)

type page int

const (
	pageDashboard page = iota
	pageChat
	pageAbout
)

var pageNames = map[page]string{
	pageDashboard: "Dashboard",
	pageChat:      "NLP Chat",
	pageAbout:     "About",
}

const sidebarWidth = 30

const aboutText = `Salesdesk – Sales Team Automation ERP

Version: 1.0.0

A terminal client for managing sales teams, projects,
employees, and payments.

Key Features
  - Sales project management per client
  - Role-based dashboards for managers and executives
  - Payment tracking with weekly and pending views
  - NLP automation: natural language to database actions

Example Commands
  - "Google ka iss week ka 1.2 lakh payment aa gaya"
  - "Ramesh is assigned to Google project"
  - "Google project active karo"
  - "Dharmendra ke sare active project dikhado"

Getting Started
  1. Ensure the API server is running
  2. Select a user with 'u'
  3. Navigate with 1/2/3 or tab`

type healthStatus struct {
	checked   bool
	connected bool
	version   string
}

type model struct {
	ctx    context.Context
	client *api.Client
	store  *session.Store

	page page

	users    []models.UserRef
	userIdx  int
	usersErr string

	health healthStatus

	snapshot    *models.DashboardSnapshot
	dashErr     string
	loadingDash bool

	console   Console
	indicator *LoadingIndicator

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newModel(client *api.Client, store *session.Store) model {
	return model{
		ctx:         context.Background(),
		client:      client,
		store:       store,
		page:        pageDashboard,
		console:     NewConsole(),
		indicator:   NewLoadingIndicator("Loading dashboard..."),
		loadingDash: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		loadUsersCmd(m.ctx, m.client),
		checkHealthCmd(m.ctx, m.client),
		loadDashboardCmd(m.ctx, m.client, m.store.ActiveRole(), m.store.ActiveUserID()),
		tickCmd(),
	)
}

func (m model) loading() bool {
	return m.loadingDash || m.console.Pending()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		mainWidth := msg.Width - sidebarWidth - 1
		if mainWidth < 20 {
			mainWidth = 20
		}
		viewHeight := msg.Height - 3

		if !m.ready {
			m.viewport = viewport.New(mainWidth, viewHeight)
			m.ready = true
		} else {
			m.viewport.Width = mainWidth
			m.viewport.Height = viewHeight
		}
		m.updateViewport()

	case TickMsg:
		if m.loading() {
			m.indicator.Tick()
			m.updateViewport()
			cmds = append(cmds, tickCmd())
		}

	case UsersLoadedMsg:
		if msg.Err != "" {
			// User switching stays disabled for this render pass only.
			m.usersErr = msg.Err
			m.users = nil
		} else {
			m.usersErr = ""
			m.users = msg.Users
			cmds = append(cmds, m.adoptUsers()...)
		}
		m.updateViewport()

	case HealthLoadedMsg:
		m.health = healthStatus{checked: true, connected: msg.Connected, version: msg.Version}
		m.updateViewport()

	case DashboardLoadedMsg:
		m.loadingDash = false
		m.snapshot = msg.Snapshot
		m.dashErr = msg.Err
		m.updateViewport()

	case CommandSettledMsg:
		if m.console.Settle(msg) {
			m.store.Append(msg.Record)
		}
		m.updateViewport()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Scroll the main pane outside the chat page.
	if m.page != pageChat {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// adoptUsers re-derives the active identity from the freshly observed list.
// The default id 1 is replaced by the first listed user when absent.
func (m *model) adoptUsers() []tea.Cmd {
	if len(m.users) == 0 {
		return nil
	}
	prevID, prevRole := m.store.ActiveUserID(), m.store.ActiveRole()

	idx := 0
	for i, u := range m.users {
		if u.ID == prevID {
			idx = i
			break
		}
	}
	m.userIdx = idx
	m.store.SetActiveUser(m.users[idx])

	if m.page == pageDashboard &&
		(m.store.ActiveUserID() != prevID || m.store.ActiveRole() != prevRole) {
		return []tea.Cmd{m.refreshDashboard()}
	}
	return nil
}

func (m *model) refreshDashboard() tea.Cmd {
	m.loadingDash = true
	m.dashErr = ""
	m.snapshot = nil
	m.indicator.SetMessage("Loading dashboard...")
	m.updateViewport()
	return tea.Batch(
		loadDashboardCmd(m.ctx, m.client, m.store.ActiveRole(), m.store.ActiveUserID()),
		tickCmd(),
	)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.page == pageChat {
		return m.handleChatKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "1":
		return m.gotoPage(pageDashboard)
	case "2":
		return m.gotoPage(pageChat)
	case "3":
		return m.gotoPage(pageAbout)
	case "tab":
		return m.gotoPage((m.page + 1) % 3)

	case "u":
		if len(m.users) > 1 {
			m.userIdx = (m.userIdx + 1) % len(m.users)
			m.store.SetActiveUser(m.users[m.userIdx])
			if m.page == pageDashboard {
				cmd := m.refreshDashboard()
				return m, cmd
			}
			m.updateViewport()
		}

	case "r":
		cmds := []tea.Cmd{
			loadUsersCmd(m.ctx, m.client),
			checkHealthCmd(m.ctx, m.client),
		}
		if m.page == pageDashboard {
			cmds = append(cmds, m.refreshDashboard())
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.gotoPage(pageDashboard)
	case "tab":
		return m.gotoPage((m.page + 1) % 3)
	case "enter":
		cmd := m.console.Submit(m.ctx, m.client, m.store.ActiveUserID())
		m.updateViewport()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, tickCmd())
	}

	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	m.updateViewport()
	return m, cmd
}

func (m model) gotoPage(target page) (tea.Model, tea.Cmd) {
	m.page = target
	if target == pageDashboard {
		// A dashboard view request always produces a fresh snapshot.
		cmd := m.refreshDashboard()
		return m, cmd
	}
	m.updateViewport()
	return m, nil
}

func (m *model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMain())
}

func (m model) renderMain() string {
	switch m.page {
	case pageChat:
		return m.console.View(m.store, m.indicator)
	case pageAbout:
		return aboutText
	default:
		return m.renderDashboard()
	}
}

func (m model) renderDashboard() string {
	var sb strings.Builder

	title := "Manager Dashboard"
	projectsHeading := "All Projects"
	if m.store.ActiveRole() != models.RoleManager {
		title = "Executive Dashboard"
		projectsHeading = "My Projects"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sb.WriteString(titleStyle.Render(title) + "\n\n")

	if m.loadingDash {
		sb.WriteString(m.indicator.View())
		return sb.String()
	}

	if m.dashErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		sb.WriteString(errStyle.Render("Error loading dashboard: "+m.dashErr) + "\n")
		return sb.String()
	}

	if m.snapshot == nil {
		return sb.String()
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	sb.WriteString(headerStyle.Render("Key Metrics") + "\n")
	sb.WriteString(dashboard.RenderStatistics(m.snapshot.Statistics) + "\n")
	sb.WriteString(headerStyle.Render(projectsHeading) + "\n")
	sb.WriteString(dashboard.RenderProjects(m.snapshot.Projects))

	return sb.String()
}

func (m model) renderSidebar() string {
	var sb strings.Builder

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	sb.WriteString(sectionStyle.Render("User Profile") + "\n")
	switch {
	case m.usersErr != "":
		sb.WriteString(dimStyle.Render("Could not load users") + "\n")
	case len(m.users) == 0:
		sb.WriteString(dimStyle.Render("Loading users...") + "\n")
	default:
		for i, u := range m.users {
			line := fmt.Sprintf("  %s (%s)", u.Name, u.Role)
			if i == m.userIdx {
				line = fmt.Sprintf("> %s (%s)", u.Name, u.Role)
				sb.WriteString(activeStyle.Render(line) + "\n")
				continue
			}
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString("\n" + sectionStyle.Render("Navigation") + "\n")
	for p := pageDashboard; p <= pageAbout; p++ {
		if p == m.page {
			sb.WriteString(activeStyle.Render("> "+pageNames[p]) + "\n")
			continue
		}
		sb.WriteString("  " + pageNames[p] + "\n")
	}

	sb.WriteString("\n" + sectionStyle.Render("Server Status") + "\n")
	switch {
	case !m.health.checked:
		sb.WriteString(dimStyle.Render("Checking...") + "\n")
	case m.health.connected:
		sb.WriteString(fmt.Sprintf("✅ Connected (v%s)\n", m.health.version))
	default:
		sb.WriteString("❌ Cannot connect to API server\n")
	}

	return sb.String()
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	viewHeight := m.height - 3
	sidebarStyle := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(viewHeight)
	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Height(viewHeight)

	divider := strings.Builder{}
	for i := 0; i < viewHeight; i++ {
		divider.WriteString("│")
		if i < viewHeight-1 {
			divider.WriteString("\n")
		}
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Render(m.renderSidebar()),
		dividerStyle.Render(divider.String()),
		m.viewport.View(),
	)

	return fmt.Sprintf("%s\n%s\n%s", header, body, footer)
}

func (m model) renderHeader() string {
	title := fmt.Sprintf("Salesdesk – Sales ERP – %s", pageNames[m.page])

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))

	return style.Render(title)
}

func (m model) renderFooter() string {
	info := "1/2/3: pages • tab: next • u: switch user • r: refresh • q: quit"
	if m.page == pageChat {
		info = "enter: send • tab: next • esc: back • ctrl+c: quit"
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return style.Render(info)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Run starts the interactive client.
func Run(client *api.Client, store *session.Store) error {
	p := tea.NewProgram(
		newModel(client, store),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
