// Package tui implements the interactive agenda browser: one item at a time
// with its navigation footer, following prev/next links the way the agenda
// pages do.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/agendanav/internal/core/logging"
	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/internal/core/styles"
)

// Options configures a new browser.
type Options struct {
	Start      string
	Mode       nav.Mode
	MeetingDay bool
}

// Model is the bubbletea model of the agenda browser.
type Model struct {
	ctx    context.Context
	nav    *nav.Navigator
	logger zerolog.Logger
	keys   keyMap
	help   help.Model

	current    string
	mode       nav.Mode
	meetingDay bool

	footer nav.Footer
	detail string
	status string
	width  int
	height int
}

// New creates a browser positioned on opts.Start, or the first item when
// Start is empty.
func New(ctx context.Context, n *nav.Navigator, opts Options) (Model, error) {
	start := opts.Start
	if start == "" {
		first, ok := n.Index().First()
		if !ok {
			return Model{}, errors.New("agenda is empty")
		}
		start = first.Href
	}
	if _, err := n.Index().Lookup(start); err != nil {
		return Model{}, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = nav.ModeDefault
	}

	m := Model{
		ctx:        ctx,
		nav:        n,
		logger:     logging.Component("tui"),
		keys:       defaultKeyMap(),
		help:       help.New(),
		current:    start,
		mode:       mode,
		meetingDay: opts.MeetingDay,
		width:      80,
	}
	m.refresh()
	return m, nil
}

// Current returns the key of the displayed item.
func (m Model) Current() string { return m.current }

// Footer returns the footer of the displayed item.
func (m Model) Footer() nav.Footer { return m.footer }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.follow(nav.Prev)
		case key.Matches(msg, m.keys.Next):
			m.follow(nav.Next)
		case key.Matches(msg, m.keys.Mode):
			m.mode = m.mode.Cycle()
			m.refresh()
		case key.Matches(msg, m.keys.MeetingDay):
			m.meetingDay = !m.meetingDay
			m.refresh()
		case key.Matches(msg, m.keys.First):
			if first, ok := m.nav.Index().First(); ok {
				m.current = first.Href
				m.refresh()
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// follow moves to the item the footer link in dir points at. Links to a
// section listing or outside the agenda only report where they lead.
func (m *Model) follow(dir nav.Direction) {
	t := m.footer.Next
	if dir == nav.Prev {
		t = m.footer.Prev
	}

	switch {
	case !t.IsLink():
		m.status = "no " + string(dir) + " link"
		return
	case t.Kind == nav.KindExternal:
		m.status = "external link: " + t.Path
		return
	}

	if _, ok := m.nav.Index().Get(t.Key); t.Key == "" || !ok {
		m.status = "section link: " + t.Path
		return
	}

	m.logger.Debug().Ctx(logging.WithItem(m.ctx, m.current)).Str("to", t.Key).Str("path", t.Path).Msg("follow")
	m.current = t.Key
	m.refresh()
}

func (m *Model) refresh() {
	m.status = ""
	f, err := m.nav.Footer(m.ctx, m.current, m.mode, m.meetingDay)
	if err != nil {
		m.status = err.Error()
	}
	m.footer = f

	if it, ok := m.nav.Index().Get(m.current); ok {
		m.detail = renderDetail(it, m.width)
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.detail)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(styles.MutedStyle.Render(m.status))
		b.WriteString("\n")
	}

	body := b.String()
	footer := RenderFooter(m.footer, m.mode, m.meetingDay, m.width)
	helpView := m.help.View(m.keys)

	if m.height > 0 {
		pad := m.height - lipgloss.Height(body) - lipgloss.Height(footer) - lipgloss.Height(helpView)
		if pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer, helpView)
}

// Run starts the browser as a full screen program.
func Run(ctx context.Context, n *nav.Navigator, opts Options) error {
	m, err := New(ctx, n, opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
