package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alesr/pricewatch/internal/pkg/money"
	"github.com/alesr/pricewatch/internal/pkg/progress"
	"github.com/alesr/pricewatch/internal/view"
)

type fetchDoneMsg struct {
	result view.Result
}

type openDoneMsg struct {
	url string
	err error
}

type browseModel struct {
	ctrl      *view.Controller
	formatter money.Formatter
	open      urlOpener
	spinner   spinner.Model
	cards     []view.Card
	cursor    int
	offset    int
	width     int
	height    int
	started   time.Time
	notice    string
}

type Option func(*browseModel)

func WithFormatter(f money.Formatter) Option {
	return func(m *browseModel) {
		m.formatter = f
	}
}

func WithOpener(open func(url string) error) Option {
	return func(m *browseModel) {
		if open != nil {
			m.open = open
		}
	}
}

// RunBrowse starts the interactive listing browser and blocks until the user quits.
func RunBrowse(ctrl *view.Controller, opts ...Option) error {
	_, err := tea.NewProgram(newBrowseModel(ctrl, opts...)).Run()
	return err
}

func newBrowseModel(ctrl *view.Controller, opts ...Option) browseModel {
	spin := spinner.New(spinner.WithSpinner(progress.DotSpinner()))
	spin.Style = subtleStyle

	m := browseModel{
		ctrl:      ctrl,
		formatter: money.Default(),
		open:      openBrowser,
		spinner:   spin,
		width:     120,
		height:    12,
		started:   time.Now(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&m)
	}
	return m
}

func (m browseModel) Init() tea.Cmd {
	m.ctrl.Start()
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 16 {
			m.height = msg.Height - 14
		}
		if m.height < 3 {
			m.height = 3
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.ctrl.Retry() {
				return m, nil
			}
			m.started = time.Now()
			m.notice = ""
			m.cards = nil
			return m, tea.Batch(m.fetch(), m.spinner.Tick)
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "enter", "o":
			if card, ok := m.selected(); ok {
				return m, m.openURL(card.URL)
			}
		}
	case spinner.TickMsg:
		if _, loading := m.ctrl.State().(view.Loading); !loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchDoneMsg:
		state := m.ctrl.Resolve(msg.result)
		m.cards = view.Grid(state, m.formatter)
		m.cursor, m.offset = 0, 0
		return m, nil
	case openDoneMsg:
		if msg.err != nil {
			m.notice = "could not open " + msg.url + ": " + msg.err.Error()
		} else {
			m.notice = "opened " + msg.url
		}
		return m, nil
	}

	m.clampOffset()
	return m, nil
}

func (m browseModel) fetch() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return fetchDoneMsg{result: ctrl.Fetch(context.Background())}
	}
}

func (m browseModel) openURL(url string) tea.Cmd {
	open := m.open
	return func() tea.Msg {
		return openDoneMsg{url: url, err: open(url)}
	}
}

func (m browseModel) selected() (view.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cards) {
		return view.Card{}, false
	}
	return m.cards[m.cursor], true
}

func (m *browseModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.cards) {
		m.cursor = len(m.cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browseModel) clampOffset() {
	if len(m.cards) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
