// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/monclitype/internal/engine"
	"github.com/verte-zerg/monclitype/internal/session"
)

const title = "MoncliType"

// Model implements the Bubble Tea typing UI. It is the terminal host for a
// session.Controller: it feeds key presses in and renders the returned frame.
type Model struct {
	ctrl  *session.Controller
	frame session.Frame

	width  int
	height int
}

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A"))
	cursorStyle    = pendingStyle.Underline(true)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing TUI model for ctrl.
func NewModel(ctrl *session.Controller) *Model {
	return &Model{
		ctrl:  ctrl,
		frame: ctrl.Frame(),
	}
}

// Frame returns the last frame produced by the controller.
func (m *Model) Frame() session.Frame {
	return m.frame
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
		return m, nil
	case tea.KeyMsg:
		for _, in := range translateKey(msg) {
			m.frame = m.ctrl.Handle(in)
			if m.frame.Finished() {
				return m, tea.Quit
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.frame.Finished() {
		return ""
	}
	styledRunes := buildStyledRunes(m.frame.Status)
	header := titleStyle.Render(title)
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return header + "\n" + renderStyledRunes(styledRunes) + "\n" + footer
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	headerLine := lipgloss.Place(m.width, 1, lipgloss.Left, lipgloss.Center, header)
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return headerLine + "\n" + body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	status := m.frame.Status
	total := len(strings.Split(m.ctrl.Target(), " "))
	progress := 0
	if total > 0 {
		progress = int(float64(len(status.CompletedWords)) / float64(total) * 100)
	}
	segments := []string{
		fmt.Sprintf("Word %d/%d", len(status.CompletedWords)+1, total),
		fmt.Sprintf("Progress %d%%", progress),
		"Press <ESC> to exit",
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

// translateKey maps a Bubble Tea key message to controller inputs. Bubble Tea
// only reports presses, so every input is a press.
func translateKey(msg tea.KeyMsg) []session.KeyInput {
	press := func(sym engine.KeySymbol) session.KeyInput {
		return session.KeyInput{Symbol: sym, Kind: session.Press}
	}
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return []session.KeyInput{press(engine.EscapeKey())}
	case tea.KeyBackspace, tea.KeyDelete:
		return []session.KeyInput{press(engine.BackspaceKey())}
	case tea.KeySpace:
		return []session.KeyInput{press(engine.Char(' '))}
	case tea.KeyRunes:
		inputs := make([]session.KeyInput, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			inputs = append(inputs, press(engine.Char(r)))
		}
		return inputs
	default:
		return []session.KeyInput{press(engine.OtherKey())}
	}
}
