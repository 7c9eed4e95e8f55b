package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Underline(true)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("36")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)
)

// View projects the model onto the terminal: a title strip, the body of the
// current screen and a help strip that the message slot replaces when set.
// It reads the model and nothing else.
func (m Model) View() string {
	var body, help string

	switch m.screen {
	case screenMainMenu:
		body = m.viewMainMenu()
		help = "up/down: select  enter: open  q: quit"
	case screenAddTrade:
		body = m.viewTradeForm("Add New Trade")
		help = "tab/shift+tab: next/prev field  enter: save  esc: cancel"
	case screenEditTrade:
		body = m.viewTradeForm("Edit Trade")
		help = "tab/shift+tab: next/prev field  enter: save  esc: cancel"
	case screenViewTrades:
		body = m.viewTrades()
		help = "up/down: select  e: edit  d: delete  esc: back"
	case screenReports:
		body = m.viewReports()
		help = "esc: back"
	}

	footer := helpStyle.Render(help)
	if m.message != "" {
		footer = messageStyle.Render(m.message)
	}

	return titleStyle.Render("Stock Options Tracker") + "\n\n" + body + "\n" + footer
}

func (m Model) viewMainMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		if i == m.menuCursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) viewTradeForm(heading string) string {
	var b strings.Builder
	b.WriteString(heading + "\n\n")
	for f := FieldSymbol; f < numFields; f++ {
		label := fmt.Sprintf("%-20s", f.Label()+":")
		value := m.fieldValue(f)
		if f == m.draft.Focus {
			if m.draft.Buffer != "" {
				value = m.draft.Buffer
			}
			b.WriteString(focusedLabelStyle.Render(label) + value + focusedLabelStyle.Render("_"))
		} else {
			b.WriteString(label + value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// fieldValue renders the committed value of a field. Zero amounts show as
// blank, the way an empty form starts out.
func (m Model) fieldValue(f Field) string {
	t := m.draft.Trade
	switch f {
	case FieldSymbol:
		return t.Symbol
	case FieldTradeType:
		return t.TradeType.String()
	case FieldAction:
		return t.Action.String()
	case FieldPrice:
		if t.Price == 0 {
			return ""
		}
		return fmt.Sprintf("%.2f", t.Price)
	case FieldQuantity:
		if t.Quantity == 0 {
			return ""
		}
		return fmt.Sprintf("%.2f", t.Quantity)
	case FieldDate:
		return t.Date
	case FieldFees:
		if t.Fees == 0 {
			return ""
		}
		return fmt.Sprintf("%.2f", t.Fees)
	case FieldComment:
		return t.Comment
	default:
		return ""
	}
}

func (m Model) viewTrades() string {
	if len(m.trades) == 0 {
		return "No trades found\n"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-8s %-7s %-6s %10s %9s %-10s %8s",
		"id", "symbol", "type", "action", "price", "qty", "date", "fees")))
	b.WriteByte('\n')
	for i, t := range m.trades {
		id := int64(0)
		if t.ID != nil {
			id = *t.ID
		}
		row := fmt.Sprintf("%-6d %-8s %-7s %-6s %10.2f %9.2f %-10s %8.2f",
			id, t.Symbol, t.TradeType, t.Action, t.Price, t.Quantity, t.Date, t.Fees)
		if i == m.tradeCursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) viewReports() string {
	if len(m.reports) == 0 {
		return "No trades found\n"
	}
	var b strings.Builder
	b.WriteString("Profit/Loss Report by Symbol\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %14s %8s", "symbol", "profit/loss", "trades")))
	b.WriteByte('\n')
	for _, r := range m.reports {
		b.WriteString(fmt.Sprintf("%-12s %14.2f %8d\n", r.Symbol, r.ProfitLoss, r.TradeCount))
	}
	return b.String()
}
