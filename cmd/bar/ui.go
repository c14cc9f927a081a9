package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hayate891/naev/pkg/mission"
	"github.com/hayate891/naev/pkg/npc"
	"github.com/hayate891/naev/pkg/state"
)

// maxBarSlots bounds the display buffers handed to the registry.
const maxBarSlots = 64

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	listStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2)

	detailStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(1).
			PaddingRight(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

// barUI is the BubbleTea model browsing the spaceport bar.
// https://github.com/charmbracelet/bubbletea
type barUI struct {
	registry *npc.Registry
	engine   *mission.Engine
	session  *state.Session
	sink     *alertSink

	descViewport viewport.Model
	selected     int
	width        int
	height       int
	ready        bool

	alertMsg  string
	statusMsg string

	names []string // bounded presentation buffer, reused across frames
}

func newBarUI(registry *npc.Registry, engine *mission.Engine, session *state.Session, sink *alertSink) barUI {
	vp := viewport.New(40, 16)
	return barUI{
		registry:     registry,
		engine:       engine,
		session:      session,
		sink:         sink,
		descViewport: vp,
		names:        make([]string, maxBarSlots),
	}
}

func (m barUI) Init() tea.Cmd {
	return nil
}

func (m barUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		detailWidth := m.width - m.width/3 - 8
		m.descViewport.Width = detailWidth
		m.descViewport.Height = m.height - 8
		m.ready = true
		m.refreshDetail()

	case tea.KeyMsg:
		if m.alertMsg != "" {
			// Any key dismisses the alert.
			m.alertMsg = ""
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshDetail()
			}
		case "down", "j":
			if m.selected < m.registry.Len()-1 {
				m.selected++
				m.refreshDetail()
			}
		case "y":
			if desc, ok := m.registry.DescriptionAt(m.selected); ok {
				if err := clipboard.WriteAll(desc); err == nil {
					m.statusMsg = "Description copied."
				}
			}
		case "enter":
			return m.approach()
		}
	}

	var cmd tea.Cmd
	m.descViewport, cmd = m.descViewport.Update(msg)
	return m, cmd
}

// approach dispatches the interaction and resyncs the view afterwards:
// the dispatch may have consumed the selected NPC or reshuffled the bar.
func (m barUI) approach() (tea.Model, tea.Cmd) {
	consumed, err := m.registry.Approach(m.selected)
	switch {
	case err == nil && consumed:
		m.statusMsg = "They push back their chair and leave the bar."
	case err == nil:
		m.statusMsg = ""
	case errors.Is(err, npc.ErrTooManyMissions):
		// The alert is already in the sink.
		m.statusMsg = ""
	default:
		m.statusMsg = err.Error()
	}

	if alert, ok := m.sink.take(); ok {
		m.alertMsg = alert
	}
	if m.selected >= m.registry.Len() && m.selected > 0 {
		m.selected = m.registry.Len() - 1
	}
	m.refreshDetail()
	return m, nil
}

func (m *barUI) refreshDetail() {
	desc, ok := m.registry.DescriptionAt(m.selected)
	if !ok {
		m.descViewport.SetContent(dimStyle.Render("The bar is empty."))
		return
	}

	var content strings.Builder
	if portrait, ok := m.registry.PortraitAt(m.selected); ok {
		content.WriteString(dimStyle.Render("["+portrait.Path()+"]") + "\n\n")
	}
	content.WriteString(wordwrap.String(desc, m.descViewport.Width-2))
	m.descViewport.SetContent(content.String())
}

func (m barUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	if m.alertMsg != "" {
		return m.renderAlert()
	}

	listWidth := m.width / 3
	detailWidth := m.width - listWidth - 6

	n := m.registry.Names(m.names)
	var list strings.Builder
	list.WriteString(titleStyle.Render("SPACEPORT BAR") + "\n\n")
	if n == 0 {
		list.WriteString(dimStyle.Render("Nobody here but the bartender."))
	}
	for i := 0; i < n; i++ {
		if i == m.selected {
			list.WriteString(selectedStyle.Render(fmt.Sprintf("▶ %s", m.names[i])))
		} else {
			list.WriteString(itemStyle.Render(fmt.Sprintf("  %s", m.names[i])))
		}
		list.WriteString("\n")
	}

	listPanel := listStyle.Width(listWidth).Height(m.height - 3).Render(list.String())
	detailPanel := detailStyle.Width(detailWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.descViewport.View(),
			"",
			dimStyle.Render(strings.Repeat("─", max(detailWidth-4, 1))),
			m.statusLine(),
		),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
}

func (m barUI) statusLine() string {
	caser := cases.Title(language.English)
	status := fmt.Sprintf("Landed: %s (%s) • Patrons: %d • Active missions: %d",
		caser.String(m.session.Spob), m.session.System,
		m.registry.Len(), len(m.engine.Active()))
	line := statusStyle.Render(status)
	if m.statusMsg != "" {
		line += "\n" + dimStyle.Render(m.statusMsg)
	}
	line += "\n" + dimStyle.Render("↑/↓ select • Enter approach • y yank description • q depart")
	return line
}

func (m barUI) renderAlert() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Notice"))
	content.WriteString("\n\n")
	content.WriteString(wordwrap.String(m.alertMsg, 44))
	content.WriteString("\n\n")
	content.WriteString(dimStyle.Render("Press any key to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}
