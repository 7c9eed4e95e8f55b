package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"options-tracker-go/internal/models"
)

// TradeStore is the slice of the store the UI needs.
type TradeStore interface {
	Insert(trade models.Trade) (int64, error)
	ListAll() ([]models.Trade, error)
	Update(trade models.Trade) error
	Delete(id int64) error
	ReportBySymbol() ([]models.SymbolReport, error)
}

type screen int

const (
	screenMainMenu screen = iota
	screenAddTrade
	screenViewTrades
	screenEditTrade
	screenReports
)

var menuItems = []string{
	"Add New Trade",
	"View/Edit Trades",
	"View Reports",
	"Quit",
}

// Model is the top-level state of the UI: the current screen, the menu and
// trade-list cursors, the cached result sets behind the view and report
// screens, the in-progress draft and the one-line message slot. All store
// calls happen synchronously inside Update; between key events the model is
// always consistent and View can paint from it.
type Model struct {
	store TradeStore

	screen      screen
	menuCursor  int
	tradeCursor int
	trades      []models.Trade
	reports     []models.SymbolReport
	draft       Draft
	message     string

	width  int
	height int
}

// NewModel returns the UI model starting at the main menu.
func NewModel(st TradeStore) Model {
	m := Model{store: st}
	m.draft.BeginNew()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenMainMenu:
			return m.updateMainMenu(msg)
		case screenAddTrade, screenEditTrade:
			return m.updateTradeForm(msg)
		case screenViewTrades:
			return m.updateViewTrades(msg)
		case screenReports:
			return m.updateReports(msg)
		}
	}
	return m, nil
}

func (m Model) updateMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.menuCursor = (m.menuCursor + len(menuItems) - 1) % len(menuItems)
	case tea.KeyDown:
		m.menuCursor = (m.menuCursor + 1) % len(menuItems)
	case tea.KeyEnter:
		switch m.menuCursor {
		case 0:
			m.draft.BeginNew()
			m.message = ""
			m.screen = screenAddTrade
		case 1:
			trades, err := m.store.ListAll()
			if err != nil {
				m.message = err.Error()
				return m, nil
			}
			m.trades = trades
			m.tradeCursor = 0
			m.message = ""
			m.screen = screenViewTrades
		case 2:
			reports, err := m.store.ReportBySymbol()
			if err != nil {
				m.message = err.Error()
				return m, nil
			}
			m.reports = reports
			m.message = ""
			m.screen = screenReports
		case 3:
			return m, tea.Quit
		}
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateTradeForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.draft.Buffer = ""
		m.message = ""
		m.screen = screenMainMenu
	case tea.KeyTab:
		m.draft.AdvanceFocus()
	case tea.KeyShiftTab:
		m.draft.RetreatFocus()
	case tea.KeyBackspace:
		m.draft.Backspace()
	case tea.KeySpace:
		m.draft.AppendRune(' ')
		m.message = ""
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.draft.AppendRune(r)
		}
		m.message = ""
	case tea.KeyEnter:
		if m.draft.Buffer != "" {
			m.draft.CommitField()
		}
		if !m.draft.Validate() {
			m.message = "fill required fields"
			return m, nil
		}
		var err error
		if m.screen == screenEditTrade {
			err = m.store.Update(m.draft.Trade)
		} else {
			_, err = m.store.Insert(m.draft.Trade)
		}
		if err != nil {
			// Draft stays intact so the user can correct and retry.
			m.message = err.Error()
			return m, nil
		}
		m.message = ""
		m.screen = screenMainMenu
	}
	return m, nil
}

func (m Model) updateViewTrades(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.message = ""
		m.screen = screenMainMenu
	case tea.KeyUp:
		if len(m.trades) > 0 {
			m.tradeCursor = (m.tradeCursor + len(m.trades) - 1) % len(m.trades)
		}
	case tea.KeyDown:
		if len(m.trades) > 0 {
			m.tradeCursor = (m.tradeCursor + 1) % len(m.trades)
		}
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "e":
			if len(m.trades) > 0 {
				m.draft.BeginEdit(m.trades[m.tradeCursor])
				m.message = ""
				m.screen = screenEditTrade
			}
		case "d":
			m = m.deleteCurrentTrade()
		}
	}
	return m, nil
}

// deleteCurrentTrade removes the selected row, reloads the list and keeps
// the cursor on a valid index.
func (m Model) deleteCurrentTrade() Model {
	if len(m.trades) == 0 {
		return m
	}
	trade := m.trades[m.tradeCursor]
	if trade.ID == nil {
		return m
	}
	if err := m.store.Delete(*trade.ID); err != nil {
		m.message = err.Error()
		return m
	}
	trades, err := m.store.ListAll()
	if err != nil {
		m.message = err.Error()
		m.trades = nil
		m.tradeCursor = 0
		return m
	}
	m.trades = trades
	if len(m.trades) == 0 {
		m.tradeCursor = 0
	} else if m.tradeCursor >= len(m.trades) {
		m.tradeCursor = len(m.trades) - 1
	}
	return m
}

func (m Model) updateReports(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.message = ""
		m.screen = screenMainMenu
	}
	return m, nil
}
