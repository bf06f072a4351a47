// Package statsui provides the Bubble Tea report browser.
package statsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordstat/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea report browser.
type Model struct {
	report model.Report
	query  string
	rows   []table.Row

	table table.Model

	filterMode  bool
	filterInput textinput.Model

	width  int
	height int
}

// NewModel constructs a browser over report.
func NewModel(report model.Report) *Model {
	m := &Model{report: report}
	m.filterInput = newFilterInput()
	m.table = table.New(
		table.WithColumns(columnsFor(report)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.table.SetStyles(tableStyles())
	m.applyQuery("")
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "/":
			m.filterMode = true
			m.filterInput.SetValue(m.query)
			m.filterInput.CursorEnd()
			return m, m.filterInput.Focus()
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	body := tableMutedStyle.Render(m.table.View())
	if len(m.rows) == 0 {
		body = "No matching words."
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.filterMode = false
		m.filterInput.Blur()
		m.applyQuery(strings.TrimSpace(m.filterInput.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) applyQuery(query string) {
	m.query = query
	m.rows = filterRows(m.report, query)
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	headerHeight := lipgloss.Height(m.renderHeader())
	footerHeight := lipgloss.Height(m.renderFooter())
	m.table.SetWidth(m.width)
	m.table.SetHeight(maxInt(1, m.height-headerHeight-footerHeight-1))
	promptWidth := lipgloss.Width(m.filterInput.Prompt)
	m.filterInput.Width = maxInt(10, m.width-promptWidth-2)
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render("wordstat")
	summary := fmt.Sprintf("Total words: %d  Distinct: %d", m.report.Sum, len(m.report.Entries))
	if m.query != "" {
		summary += fmt.Sprintf("  Filter: %q (%d shown)", m.query, len(m.rows))
	}
	return title + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.filterInput.View() + "\n" + headerStyle.Render("enter: apply  esc: cancel")
	}
	return headerStyle.Render("Scroll: up/down/pgup/pgdn  Top/bottom: g/G  Filter: /  Quit: q")
}

func newFilterInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "Filter: "
	input.Placeholder = "substring"
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func columnsFor(report model.Report) []table.Column {
	wordWidth := len("Word")
	for _, e := range report.Entries {
		if w := lipgloss.Width(e.Word); w > wordWidth {
			wordWidth = w
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Word", Width: minInt(wordWidth, 40)},
		{Title: "Count", Width: 9},
		{Title: "Percent", Width: 8},
	}
}

func filterRows(report model.Report, query string) []table.Row {
	rows := make([]table.Row, 0, len(report.Entries))
	for i, e := range report.Entries {
		if query != "" && !strings.Contains(e.Word, query) {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Word,
			fmt.Sprintf("%d", e.Count),
			fmt.Sprintf("%.2f%%", e.Percent),
		})
	}
	return rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
