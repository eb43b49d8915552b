// Package tui provides the interactive Bubble Tea budget dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fliptrack/internal/cli"
	"github.com/theirongolddev/fliptrack/internal/model"
	"github.com/theirongolddev/fliptrack/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loadedMsg is sent when the tracking has been read from the store.
type loadedMsg struct {
	tracking *model.BudgetTracking
}

// loadErrMsg is sent when loading fails.
type loadErrMsg struct {
	err error
}

// App is the root Bubble Tea model for the budget dashboard.
type App struct {
	dbPath    string
	projectID string

	tracking *model.BudgetTracking
	err      error
	loading  bool

	spinner spinner.Model
	width   int
	height  int
}

// New builds the dashboard app for one project.
func New(dbPath, projectID string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	return App{
		dbPath:    dbPath,
		projectID: projectID,
		loading:   true,
		spinner:   sp,
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(dbPath, projectID string) error {
	p := tea.NewProgram(New(dbPath, projectID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.load)
}

// load reads the tracking from the store. Runs as a command so the UI stays
// responsive.
func (a App) load() tea.Msg {
	s, err := store.Open(a.dbPath)
	if err != nil {
		return loadErrMsg{err: err}
	}
	defer s.Close()

	tr, err := s.LoadTracking(a.projectID)
	if err != nil {
		return loadErrMsg{err: err}
	}
	return loadedMsg{tracking: tr}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "r":
			a.loading = true
			a.err = nil
			return a, tea.Batch(a.spinner.Tick, a.load)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case loadedMsg:
		a.loading = false
		a.tracking = msg.tracking
		return a, nil

	case loadErrMsg:
		a.loading = false
		a.err = msg.err
		return a, nil
	}

	return a, nil
}

func (a App) View() string {
	if a.loading {
		return fmt.Sprintf("\n  %s Loading budget...\n", a.spinner.View())
	}
	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(cli.ColorRed)
		return fmt.Sprintf("\n  %s\n\n  q to quit\n", errStyle.Render(a.err.Error()))
	}

	t := a.tracking
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	mutedStyle := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  %s", t.ProjectName)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  (%s)", t.ProjectID)))
	b.WriteString("\n\n")

	b.WriteString(a.renderTotals())
	b.WriteString("\n")
	b.WriteString(a.renderCategories())
	b.WriteString(a.renderAlerts())

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (a App) renderTotals() string {
	t := a.tracking
	labelStyle := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(cli.ColorText)

	line := func(label, value string) string {
		return fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-12s", label)),
			valueStyle.Render(value))
	}

	var b strings.Builder
	b.WriteString(line("Budget", cli.FormatMoney(t.TotalBudget)))
	b.WriteString(line("Spent", cli.FormatMoney(t.TotalSpent)))
	b.WriteString(line("Committed", cli.FormatMoney(t.TotalCommitted)))
	b.WriteString(line("Remaining", cli.FormatMoney(t.TotalRemaining)))
	b.WriteString(line("Used", cli.FormatPercent(t.PercentUsed)))
	return b.String()
}

func (a App) renderCategories() string {
	barWidth := 30
	if a.width > 0 && a.width < 90 {
		barWidth = 18
	}

	var b strings.Builder
	for _, c := range a.tracking.Categories {
		bar := cli.RenderUtilizationBar(c.PercentUsed, c.Status, barWidth)
		b.WriteString(fmt.Sprintf("  %-18s %s  %7s  %s left\n",
			c.Name, bar, cli.FormatPercent(c.PercentUsed), cli.FormatMoney(c.Remaining)))
	}
	return b.String()
}

func (a App) renderAlerts() string {
	alerts := a.tracking.Alerts
	if len(alerts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, al := range alerts {
		style := lipgloss.NewStyle().Foreground(cli.SeverityColor(al.Severity))
		b.WriteString(fmt.Sprintf("  %s\n",
			style.Render(fmt.Sprintf("[%s] %s", strings.ToUpper(string(al.Severity)), al.Message))))
	}
	return b.String()
}
