package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TradeType distinguishes a stock trade from an option trade. The canonical
// form is lowercase and is what gets stored.
type TradeType string

const (
	TradeTypeStock  TradeType = "stock"
	TradeTypeOption TradeType = "option"
)

// Action is the side of a trade.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// ParseTradeType parses user or stored text case-insensitively and rejects
// anything outside the two allowed tokens.
func ParseTradeType(s string) (TradeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TradeTypeStock):
		return TradeTypeStock, nil
	case string(TradeTypeOption):
		return TradeTypeOption, nil
	default:
		return "", fmt.Errorf("invalid trade type %q", s)
	}
}

// ParseAction parses user or stored text case-insensitively and rejects
// anything outside the two allowed tokens.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ActionBuy):
		return ActionBuy, nil
	case string(ActionSell):
		return ActionSell, nil
	default:
		return "", fmt.Errorf("invalid action %q", s)
	}
}

func (t TradeType) String() string { return string(t) }

// Value implements driver.Valuer; the canonical lowercase token is stored.
func (t TradeType) Value() (driver.Value, error) { return string(t), nil }

// Scan implements sql.Scanner. An unknown stored token means the database
// was edited externally and is reported as a decode error.
func (t *TradeType) Scan(value interface{}) error {
	s, err := scanText(value)
	if err != nil {
		return fmt.Errorf("trade_type: %w", err)
	}
	parsed, err := ParseTradeType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (a Action) String() string { return string(a) }

// Value implements driver.Valuer; the canonical lowercase token is stored.
func (a Action) Value() (driver.Value, error) { return string(a), nil }

// Scan implements sql.Scanner with the same unknown-token rejection as
// TradeType.Scan.
func (a *Action) Scan(value interface{}) error {
	s, err := scanText(value)
	if err != nil {
		return fmt.Errorf("action: %w", err)
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func scanText(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("expected text, got %T", value)
	}
}
