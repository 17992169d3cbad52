// Package statsui provides the Bubble Tea round statistics screen.
package statsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/monclitype/internal/model"
	"github.com/verte-zerg/monclitype/internal/stats"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	targetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea statistics UI for one finished round.
type Model struct {
	summary   model.RoundSummary
	charTable table.Model

	width  int
	height int
}

// NewModel constructs a statistics UI for summary.
func NewModel(summary model.RoundSummary) *Model {
	return &Model{
		summary:   summary,
		charTable: buildCharTable(summary.Chars, 0, 8),
	}
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
		m.charTable.SetWidth(m.width)
		m.charTable.SetHeight(maxInt(1, m.height-lipgloss.Height(m.renderHeader())-2))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.charTable, cmd = m.charTable.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{m.renderHeader()}
	if len(m.summary.Chars) == 0 {
		parts = append(parts, headerStyle.Render("No character stats recorded."))
	} else {
		parts = append(parts, m.charTable.View())
	}
	parts = append(parts, headerStyle.Render("↑/↓ scroll · q/esc/enter quit"))
	return strings.Join(parts, "\n")
}

func (m *Model) renderHeader() string {
	verdict := failStyle.Render(stats.Verdict(m.summary))
	if m.summary.Passed {
		verdict = passStyle.Render(stats.Verdict(m.summary))
	}
	title := fmt.Sprintf("%s  %s", verdict, headerStyle.Render(fmt.Sprintf("round %s · ended by %s", m.summary.SessionID, m.summary.Reason)))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		targetStyle.Render(m.summary.Target),
		renderCards(m.summary, m.width),
	)
}

func renderCards(s model.RoundSummary, width int) string {
	rows := stats.SummaryRows(s)
	cards := make([]string, 0, len(rows))
	// The first two rows are the verdict and the end reason, already in the title.
	for _, row := range rows[2:] {
		cards = append(cards, metricCard(row[0], row[1]))
	}
	if width > 0 && width < 80 {
		half := len(cards) / 2
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[:half]...)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[half:]...)
		return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildCharTable(chars []model.CharStats, width, height int) table.Model {
	columns := make([]table.Column, 0, len(stats.CharHeaders))
	for _, title := range stats.CharHeaders {
		columns = append(columns, table.Column{Title: title, Width: maxInt(6, lipgloss.Width(title)+1)})
	}
	rows := make([]table.Row, 0, len(chars))
	for _, r := range stats.CharRows(chars) {
		rows = append(rows, table.Row(r))
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height)),
		table.WithFocused(true),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	t.SetStyles(charTableStyles())
	return t
}

func charTableStyles() table.Styles {
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
