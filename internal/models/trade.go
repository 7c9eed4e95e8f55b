package models

// Trade represents one recorded buy or sell of a symbol.
// ID is nil for a draft that has not been persisted yet; the store
// assigns it on insert and it stays stable across updates.
type Trade struct {
	ID        *int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Symbol    string    `gorm:"column:symbol;not null" json:"symbol"`
	TradeType TradeType `gorm:"column:trade_type;type:text;not null" json:"trade_type"`
	Action    Action    `gorm:"column:action;type:text;not null" json:"action"`
	Price     float64   `gorm:"column:price;not null" json:"price"`
	Quantity  float64   `gorm:"column:quantity;not null" json:"quantity"`
	Date      string    `gorm:"column:date;not null" json:"date"`
	Fees      float64   `gorm:"column:fees;not null" json:"fees"`
	Comment   string    `gorm:"column:comment" json:"comment,omitempty"`
}

// TableName pins the table name so it does not depend on gorm pluralization.
func (Trade) TableName() string { return "trades" }

// NewTrade returns the default draft: stock/buy with zero amounts.
// Quantity 0 is deliberately invalid so an untouched draft fails validation.
func NewTrade() Trade {
	return Trade{
		TradeType: TradeTypeStock,
		Action:    ActionBuy,
	}
}

// SymbolReport is the per-symbol aggregate: the signed cash-flow sum of all
// trades for the symbol and how many trades contributed to it. Derived by
// the store, never persisted.
type SymbolReport struct {
	Symbol     string  `json:"symbol"`
	ProfitLoss float64 `json:"profit_loss"`
	TradeCount int64   `json:"trade_count"`
}
