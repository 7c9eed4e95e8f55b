package store

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"options-tracker-go/internal/models"
)

// Error kinds surfaced by the store. Callers branch with errors.Is; the
// wrapped text carries the underlying SQL error for the message line.
var (
	// ErrStorageUnavailable means the database file could not be opened or
	// the schema could not be initialized. Fatal at startup.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrStorageWrite means an insert, update or delete failed.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrStorageRead means a query failed or a row did not decode, e.g. a
	// trade_type or action token outside the allowed set.
	ErrStorageRead = errors.New("storage read failed")
)

// Store owns the embedded database handle and is the sole mutator of
// persisted trade data. The connection is not safe for concurrent use;
// the single-threaded event loop is the only caller.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open opens or creates the database file at path and ensures the trades
// schema exists. Schema creation is idempotent.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// The terminal is in raw mode while the app runs; gorm must not
		// write to stdout.
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := db.AutoMigrate(&models.Trade{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrStorageUnavailable, err)
	}

	log.Info("Database opened", zap.String("path", path))
	return &Store{db: db, log: log}, nil
}

// Insert persists a draft trade and returns the id the database assigned.
func (s *Store) Insert(trade models.Trade) (int64, error) {
	trade.ID = nil
	if err := s.db.Create(&trade).Error; err != nil {
		s.log.Error("Insert failed", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return *trade.ID, nil
}

// ListAll returns every trade ordered newest-first: date descending,
// ties broken by id descending.
func (s *Store) ListAll() ([]models.Trade, error) {
	var trades []models.Trade
	if err := s.db.Order("date DESC, id DESC").Find(&trades).Error; err != nil {
		s.log.Error("List failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	return trades, nil
}

// Update rewrites every column of the row matching the trade's id. A trade
// without an id is silently ignored, and so is an id that matches no row;
// callers must ensure the id exists.
func (s *Store) Update(trade models.Trade) error {
	if trade.ID == nil {
		return nil
	}
	// A column map keeps zero values and, unlike Save, can never fall back
	// to an insert when the id matches nothing.
	err := s.db.Model(&models.Trade{}).Where("id = ?", *trade.ID).Updates(map[string]interface{}{
		"symbol":     trade.Symbol,
		"trade_type": trade.TradeType,
		"action":     trade.Action,
		"price":      trade.Price,
		"quantity":   trade.Quantity,
		"date":       trade.Date,
		"fees":       trade.Fees,
		"comment":    trade.Comment,
	}).Error
	if err != nil {
		s.log.Error("Update failed", zap.Int64("id", *trade.ID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

// Delete removes the row with the given id. Deleting a missing id is not
// an error.
func (s *Store) Delete(id int64) error {
	if err := s.db.Delete(&models.Trade{}, id).Error; err != nil {
		s.log.Error("Delete failed", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

// ReportBySymbol computes the signed profit/loss per symbol in a single
// grouped query: sells contribute net proceeds, buys subtract net cost,
// fees always subtract. Trades are not matched into lots; a symbol with an
// open position reports its net cash flow. Results are ordered by symbol.
func (s *Store) ReportBySymbol() ([]models.SymbolReport, error) {
	var reports []models.SymbolReport
	err := s.db.Raw(`SELECT symbol,
			SUM(CASE
				WHEN action = 'sell' THEN (price * quantity) - fees
				WHEN action = 'buy' THEN -(price * quantity) - fees
				ELSE 0
			END) AS profit_loss,
			COUNT(*) AS trade_count
		FROM trades
		GROUP BY symbol
		ORDER BY symbol`).Scan(&reports).Error
	if err != nil {
		s.log.Error("Report failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	return reports, nil
}
