package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"options-tracker-go/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "trades.db"), zap.NewNop())
	require.NoError(t, err)
	return s
}

func trade(symbol string, tt models.TradeType, action models.Action, price, qty float64, date string, fees float64, comment string) models.Trade {
	return models.Trade{
		Symbol:    symbol,
		TradeType: tt,
		Action:    action,
		Price:     price,
		Quantity:  qty,
		Date:      date,
		Fees:      fees,
		Comment:   comment,
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.db")
	s, err := Open(path, zap.NewNop())
	require.NoError(t, err)

	_, err = s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionBuy, 150.50, 100, "2024-01-15", 5.00, ""))
	require.NoError(t, err)

	// Reopening the same file must keep existing rows.
	s2, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	trades, err := s2.ListAll()
	require.NoError(t, err)
	assert.Len(t, trades, 1)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "nested", "trades.db"), zap.NewNop())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestInsertRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := trade("AAPL", models.TradeTypeOption, models.ActionSell, 165.75, 100, "2024-02-15", 5.00, "Sold calls")
	id, err := s.Insert(in)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	trades, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, trades, 1)

	got := trades[0]
	require.NotNil(t, got.ID)
	assert.Equal(t, id, *got.ID)
	assert.Equal(t, in.Symbol, got.Symbol)
	assert.Equal(t, in.TradeType, got.TradeType)
	assert.Equal(t, in.Action, got.Action)
	assert.Equal(t, in.Price, got.Price)
	assert.Equal(t, in.Quantity, got.Quantity)
	assert.Equal(t, in.Date, got.Date)
	assert.Equal(t, in.Fees, got.Fees)
	assert.Equal(t, in.Comment, got.Comment)
}

func TestInsertIgnoresCallerID(t *testing.T) {
	s := newTestStore(t)

	stale := int64(99)
	in := trade("AAPL", models.TradeTypeStock, models.ActionBuy, 10, 1, "2024-01-01", 0, "")
	in.ID = &stale
	id, err := s.Insert(in)
	require.NoError(t, err)
	assert.NotEqual(t, stale, id)
}

func TestListAllOrdering(t *testing.T) {
	s := newTestStore(t)

	// Inserted out of order on purpose.
	_, err := s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionBuy, 150.50, 100, "2024-01-15", 5.00, "Initial"))
	require.NoError(t, err)
	_, err = s.Insert(trade("TSLA", models.TradeTypeOption, models.ActionBuy, 50.00, 10, "2024-03-01", 2.50, "Call"))
	require.NoError(t, err)
	_, err = s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionSell, 165.75, 100, "2024-02-15", 5.00, "Sold"))
	require.NoError(t, err)

	trades, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, trades, 3)
	assert.Equal(t, "TSLA", trades[0].Symbol)
	assert.Equal(t, "2024-02-15", trades[1].Date)
	assert.Equal(t, "2024-01-15", trades[2].Date)

	// date DESC, id DESC between every adjacent pair.
	for i := 0; i < len(trades)-1; i++ {
		a, b := trades[i], trades[i+1]
		if a.Date == b.Date {
			assert.Greater(t, *a.ID, *b.ID)
		} else {
			assert.Greater(t, a.Date, b.Date)
		}
	}
}

func TestListAllSameDateTieBreak(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionBuy, 10, 1, "2024-05-01", 0, ""))
	require.NoError(t, err)
	second, err := s.Insert(trade("MSFT", models.TradeTypeStock, models.ActionBuy, 10, 1, "2024-05-01", 0, ""))
	require.NoError(t, err)

	trades, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, second, *trades[0].ID)
	assert.Equal(t, first, *trades[1].ID)
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionBuy, 150.50, 100, "2024-01-15", 5.00, "Initial"))
	require.NoError(t, err)

	updated := trade("AAPL", models.TradeTypeOption, models.ActionSell, 165.75, 50, "2024-02-15", 2.50, "Edited")
	updated.ID = &id
	require.NoError(t, s.Update(updated))
	// Applying the same update twice changes nothing.
	require.NoError(t, s.Update(updated))

	trades, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, trades, 1)
	got := trades[0]
	assert.Equal(t, id, *got.ID)
	assert.Equal(t, models.TradeTypeOption, got.TradeType)
	assert.Equal(t, models.ActionSell, got.Action)
	assert.Equal(t, 165.75, got.Price)
	assert.Equal(t, 50.0, got.Quantity)
	assert.Equal(t, "Edited", got.Comment)
}

func TestUpdateWithoutIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Update(trade("AAPL", models.TradeTypeStock, models.ActionBuy, 10, 1, "2024-01-01", 0, "")))

	trades, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestUpdateMissingIDSucceedsSilently(t *testing.T) {
	s := newTestStore(t)

	missing := int64(12345)
	tr := trade("AAPL", models.TradeTypeStock, models.ActionBuy, 10, 1, "2024-01-01", 0, "")
	tr.ID = &missing
	assert.NoError(t, s.Update(tr))

	// The no-row update must not sneak in an insert.
	trades, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestUpdateMissingIDLeavesOtherRowsAlone(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionBuy, 150.50, 100, "2024-01-15", 5.00, "Initial"))
	require.NoError(t, err)

	missing := id + 1000
	tr := trade("TSLA", models.TradeTypeOption, models.ActionSell, 1, 1, "2024-03-01", 0, "")
	tr.ID = &missing
	require.NoError(t, s.Update(tr))

	trades, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, id, *trades[0].ID)
	assert.Equal(t, "AAPL", trades[0].Symbol)
	assert.Equal(t, 150.50, trades[0].Price)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Insert(trade("TSLA", models.TradeTypeOption, models.ActionBuy, 50.00, 10, "2024-03-01", 2.50, "Call"))
	require.NoError(t, err)

	assert.NoError(t, s.Delete(id))
	assert.NoError(t, s.Delete(id))
	assert.NoError(t, s.Delete(99999))

	trades, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestReportBySymbol(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionBuy, 150.50, 100, "2024-01-15", 5.00, "Initial"))
	require.NoError(t, err)
	_, err = s.Insert(trade("AAPL", models.TradeTypeStock, models.ActionSell, 165.75, 100, "2024-02-15", 5.00, "Sold"))
	require.NoError(t, err)
	_, err = s.Insert(trade("TSLA", models.TradeTypeOption, models.ActionBuy, 50.00, 10, "2024-03-01", 2.50, "Call"))
	require.NoError(t, err)

	reports, err := s.ReportBySymbol()
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Ordered by symbol ascending.
	assert.Equal(t, "AAPL", reports[0].Symbol)
	assert.Equal(t, "TSLA", reports[1].Symbol)

	// sell: (165.75*100)-5, buy: -(150.50*100)-5 => 1515.00
	assert.InDelta(t, 1515.00, reports[0].ProfitLoss, 1e-9)
	assert.Equal(t, int64(2), reports[0].TradeCount)

	// open position reports net cash flow, not realized P/L
	assert.InDelta(t, -502.50, reports[1].ProfitLoss, 1e-9)
	assert.Equal(t, int64(1), reports[1].TradeCount)
}

func TestReportEmpty(t *testing.T) {
	s := newTestStore(t)
	reports, err := s.ReportBySymbol()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestListAllRejectsCorruptRow(t *testing.T) {
	s := newTestStore(t)

	// Simulate a hand-edited database file with a token outside the enum.
	err := s.db.Exec(`INSERT INTO trades (symbol, trade_type, action, price, quantity, date, fees, comment)
		VALUES ('AAPL', 'bond', 'buy', 10, 1, '2024-01-01', 0, '')`).Error
	require.NoError(t, err)

	_, err = s.ListAll()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorageRead))
}
