package tui

import (
	"strconv"
	"strings"

	"options-tracker-go/internal/models"
)

// Field identifies one editable slot of the trade form.
type Field int

const (
	FieldSymbol Field = iota
	FieldTradeType
	FieldAction
	FieldPrice
	FieldQuantity
	FieldDate
	FieldFees
	FieldComment

	numFields
)

// Label returns the form label shown next to the field.
func (f Field) Label() string {
	switch f {
	case FieldSymbol:
		return "Symbol"
	case FieldTradeType:
		return "Type (stock/option)"
	case FieldAction:
		return "Action (buy/sell)"
	case FieldPrice:
		return "Price"
	case FieldQuantity:
		return "Quantity"
	case FieldDate:
		return "Date (YYYY-MM-DD)"
	case FieldFees:
		return "Fees"
	case FieldComment:
		return "Comment"
	default:
		return ""
	}
}

// Draft holds the trade being entered or edited, the focused field and the
// raw text buffer for that field. Typed input lands in the buffer and only
// reaches the trade through CommitField. The draft knows nothing about the
// store.
type Draft struct {
	Trade  models.Trade
	Focus  Field
	Buffer string
}

// BeginNew resets the draft to the default trade with focus on the symbol.
func (d *Draft) BeginNew() {
	d.Trade = models.NewTrade()
	d.Focus = FieldSymbol
	d.Buffer = ""
}

// BeginEdit loads a persisted trade for editing with focus on the symbol.
func (d *Draft) BeginEdit(trade models.Trade) {
	d.Trade = trade
	d.Focus = FieldSymbol
	d.Buffer = ""
}

// AppendRune appends one typed character to the buffer.
func (d *Draft) AppendRune(r rune) {
	d.Buffer += string(r)
}

// Backspace removes the last character from the buffer, if any.
func (d *Draft) Backspace() {
	if len(d.Buffer) > 0 {
		runes := []rune(d.Buffer)
		d.Buffer = string(runes[:len(runes)-1])
	}
}

// CommitField parses the buffer into the focused field. Symbol, date and
// comment always accept; the enum and numeric fields silently reject bad
// input, leaving both the field and the buffer untouched so the caller can
// tell the value did not take. On success the buffer is cleared.
func (d *Draft) CommitField() {
	switch d.Focus {
	case FieldSymbol:
		d.Trade.Symbol = strings.ToUpper(strings.TrimSpace(d.Buffer))
		d.Buffer = ""
	case FieldTradeType:
		if t, err := models.ParseTradeType(d.Buffer); err == nil {
			d.Trade.TradeType = t
			d.Buffer = ""
		}
	case FieldAction:
		if a, err := models.ParseAction(d.Buffer); err == nil {
			d.Trade.Action = a
			d.Buffer = ""
		}
	case FieldPrice:
		if v, err := strconv.ParseFloat(strings.TrimSpace(d.Buffer), 64); err == nil {
			d.Trade.Price = v
			d.Buffer = ""
		}
	case FieldQuantity:
		if v, err := strconv.ParseFloat(strings.TrimSpace(d.Buffer), 64); err == nil {
			d.Trade.Quantity = v
			d.Buffer = ""
		}
	case FieldFees:
		if v, err := strconv.ParseFloat(strings.TrimSpace(d.Buffer), 64); err == nil {
			d.Trade.Fees = v
			d.Buffer = ""
		}
	case FieldDate:
		d.Trade.Date = d.Buffer
		d.Buffer = ""
	case FieldComment:
		d.Trade.Comment = d.Buffer
		d.Buffer = ""
	}
}

// AdvanceFocus commits a non-empty buffer and moves focus to the next field,
// wrapping after the last one. When the commit is rejected the buffer stays
// non-empty and focus does not move.
func (d *Draft) AdvanceFocus() {
	if d.Buffer != "" {
		d.CommitField()
		if d.Buffer != "" {
			return
		}
	}
	d.Focus = (d.Focus + 1) % numFields
}

// RetreatFocus is AdvanceFocus in the other direction.
func (d *Draft) RetreatFocus() {
	if d.Buffer != "" {
		d.CommitField()
		if d.Buffer != "" {
			return
		}
	}
	d.Focus = (d.Focus + numFields - 1) % numFields
}

// Validate reports whether the draft is ready to be persisted: non-empty
// symbol, valid enum values, price and fees not negative, quantity strictly
// positive and a date in YYYY-MM-DD range form.
func (d *Draft) Validate() bool {
	t := d.Trade
	if t.Symbol == "" {
		return false
	}
	if t.TradeType != models.TradeTypeStock && t.TradeType != models.TradeTypeOption {
		return false
	}
	if t.Action != models.ActionBuy && t.Action != models.ActionSell {
		return false
	}
	if t.Price < 0 || t.Quantity <= 0 || t.Fees < 0 {
		return false
	}
	return validDate(t.Date)
}

// validDate checks YYYY-MM-DD with year 1900-2100, month 1-12 and day 1-31.
// It is a range check only: 2024-02-30 passes. Real calendar validation
// would reject dates users have already stored.
func validDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil {
		return false
	}
	return year >= 1900 && year <= 2100 &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= 31
}
