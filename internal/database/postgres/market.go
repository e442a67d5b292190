package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

const (
	sqlSelectMarketEntry = `
		SELECT item_name, current_price, trend, change_rate, last_updated
		FROM market_prices WHERE item_name = $1`

	sqlSeedMarketEntry = `
		INSERT INTO market_prices (item_name, current_price, trend, change_rate, last_updated)
		VALUES ($1, $2, 'stable', 0, NOW())
		ON CONFLICT (item_name) DO NOTHING`

	sqlUpsertMarketEntry = `
		INSERT INTO market_prices (item_name, current_price, trend, change_rate, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_name) DO UPDATE SET
			current_price = EXCLUDED.current_price,
			trend = EXCLUDED.trend,
			change_rate = EXCLUDED.change_rate,
			last_updated = EXCLUDED.last_updated`

	sqlInsertPriceHistory = `
		INSERT INTO market_price_history (item_name, price, recorded_at) VALUES ($1, $2, $3)`

	sqlListMarketEntries = `
		SELECT item_name, current_price, trend, change_rate, last_updated
		FROM market_prices ORDER BY item_name`

	sqlSelectPriceHistory = `
		SELECT price, recorded_at FROM market_price_history
		WHERE item_name = $1 ORDER BY id DESC LIMIT $2`

	sqlUpsertStock = `
		INSERT INTO stocks (stock_id, name, price, previous_price, volatility)
		VALUES ($1, $2, $3, $3, $4)
		ON CONFLICT (stock_id) DO UPDATE SET
			name = EXCLUDED.name,
			volatility = EXCLUDED.volatility`

	sqlSelectStock = `
		SELECT stock_id, name, price, previous_price, volatility, updated_at
		FROM stocks WHERE stock_id = $1`

	sqlListStocks = `
		SELECT stock_id, name, price, previous_price, volatility, updated_at
		FROM stocks ORDER BY stock_id`

	sqlUpdateStockPrice = `
		UPDATE stocks SET previous_price = price, price = $2, updated_at = NOW()
		WHERE stock_id = $1`

	sqlInsertStockHistory = `INSERT INTO stock_price_history (stock_id, price) VALUES ($1, $2)`

	sqlSelectStockHistory = `
		SELECT price, recorded_at FROM stock_price_history
		WHERE stock_id = $1 ORDER BY id DESC LIMIT $2`

	sqlSelectHoldings = `
		SELECT user_id, stock_id, amount, average_price FROM user_stocks
		WHERE user_id = $1 AND amount > 0 ORDER BY stock_id`

	sqlSelectHoldingForUpdate = `
		SELECT amount, average_price FROM user_stocks
		WHERE user_id = $1 AND stock_id = $2 FOR UPDATE`

	sqlUpsertHolding = `
		INSERT INTO user_stocks (user_id, stock_id, amount, average_price) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, stock_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			average_price = EXCLUDED.average_price`

	sqlUpdateHoldingAmount = `UPDATE user_stocks SET amount = $3 WHERE user_id = $1 AND stock_id = $2`

	sqlDeleteHolding = `DELETE FROM user_stocks WHERE user_id = $1 AND stock_id = $2`
)

// MarketRepository implements repository.Market for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

func scanMarketEntry(row pgx.Row) (*domain.MarketEntry, error) {
	var e domain.MarketEntry
	var trend string
	if err := row.Scan(&e.ItemName, &e.CurrentPrice, &trend, &e.ChangeRate, &e.LastUpdated); err != nil {
		return nil, err
	}
	e.Trend = domain.Trend(trend)
	return &e, nil
}

func (r *MarketRepository) GetMarketEntry(ctx context.Context, itemName string) (*domain.MarketEntry, error) {
	e, err := scanMarketEntry(r.db.QueryRow(ctx, sqlSelectMarketEntry, itemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMarketEntry, err)
	}
	return e, nil
}

func (r *MarketRepository) SeedMarketEntry(ctx context.Context, itemName string, price int64) (*domain.MarketEntry, error) {
	if _, err := r.db.Exec(ctx, sqlSeedMarketEntry, itemName, price); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveMarketEntry, err)
	}
	e, err := scanMarketEntry(r.db.QueryRow(ctx, sqlSelectMarketEntry, itemName))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMarketEntry, err)
	}
	return e, nil
}

func (r *MarketRepository) SaveMarketEntry(ctx context.Context, entry domain.MarketEntry) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sqlUpsertMarketEntry,
			entry.ItemName, entry.CurrentPrice, string(entry.Trend), entry.ChangeRate, entry.LastUpdated); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveMarketEntry, err)
		}
		if _, err := tx.Exec(ctx, sqlInsertPriceHistory, entry.ItemName, entry.CurrentPrice, entry.LastUpdated); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveMarketEntry, err)
		}
		return nil
	})
}

func (r *MarketRepository) ListMarketEntries(ctx context.Context) ([]domain.MarketEntry, error) {
	rows, err := r.db.Query(ctx, sqlListMarketEntries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMarketEntry, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MarketEntry, error) {
		e, err := scanMarketEntry(row)
		if err != nil {
			return domain.MarketEntry{}, err
		}
		return *e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMarketEntry, err)
	}
	return entries, nil
}

func (r *MarketRepository) GetPriceHistory(ctx context.Context, itemName string, limit int) ([]domain.PricePoint, error) {
	points, err := r.collectHistory(ctx, sqlSelectPriceHistory, itemName, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHistory, err)
	}
	return points, nil
}

// collectHistory reads newest-first and returns oldest-first.
func (r *MarketRepository) collectHistory(ctx context.Context, query, key string, limit int) ([]domain.PricePoint, error) {
	if limit <= 0 {
		return []domain.PricePoint{}, nil
	}
	rows, err := r.db.Query(ctx, query, key, limit)
	if err != nil {
		return nil, err
	}
	points, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PricePoint, error) {
		var p domain.PricePoint
		err := row.Scan(&p.Price, &p.Timestamp)
		return p, err
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(points)
	return points, nil
}

func (r *MarketRepository) InitStocks(ctx context.Context, stocks []domain.Stock) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, s := range stocks {
			if s.StockID == "" || s.Price <= 0 {
				continue
			}
			if _, err := tx.Exec(ctx, sqlUpsertStock, s.StockID, s.Name, s.Price, s.Volatility); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertStock, err)
			}
			if _, err := tx.Exec(ctx, sqlInsertStockHistory, s.StockID, s.Price); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertStock, err)
			}
		}
		return nil
	})
}

func scanStock(row pgx.Row) (domain.Stock, error) {
	var s domain.Stock
	err := row.Scan(&s.StockID, &s.Name, &s.Price, &s.PreviousPrice, &s.Volatility, &s.UpdatedAt)
	return s, err
}

func (r *MarketRepository) GetStock(ctx context.Context, stockID string) (*domain.Stock, error) {
	s, err := scanStock(r.db.QueryRow(ctx, sqlSelectStock, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStock, err)
	}
	return &s, nil
}

func (r *MarketRepository) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	rows, err := r.db.Query(ctx, sqlListStocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStock, err)
	}
	stocks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Stock, error) {
		return scanStock(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStock, err)
	}
	return stocks, nil
}

func (r *MarketRepository) UpdateStockPrice(ctx context.Context, stockID string, price int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sqlUpdateStockPrice, stockID, price)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateStock, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrStockNotFound
		}
		if _, err := tx.Exec(ctx, sqlInsertStockHistory, stockID, price); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateStock, err)
		}
		return nil
	})
}

func (r *MarketRepository) GetStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PricePoint, error) {
	points, err := r.collectHistory(ctx, sqlSelectStockHistory, stockID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHistory, err)
	}
	return points, nil
}

func (r *MarketRepository) GetHoldings(ctx context.Context, userID string) ([]domain.StockHolding, error) {
	rows, err := r.db.Query(ctx, sqlSelectHoldings, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHoldings, err)
	}
	holdings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StockHolding, error) {
		var h domain.StockHolding
		err := row.Scan(&h.UserID, &h.StockID, &h.Amount, &h.AveragePrice)
		return h, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHoldings, err)
	}
	return holdings, nil
}

func getHoldingForUpdate(ctx context.Context, tx pgx.Tx, userID, stockID string) (amount int64, avg float64, err error) {
	err = tx.QueryRow(ctx, sqlSelectHoldingForUpdate, userID, stockID).Scan(&amount, &avg)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetHoldings, err)
	}
	return amount, avg, nil
}

// tradeTotal is amount*price, or an invalid-input error when it overflows.
func tradeTotal(amount, price int64) (int64, error) {
	total, ok := utils.MulInt64(amount, price)
	if !ok {
		return 0, fmt.Errorf(ErrMsgTotalOverflowFmt, domain.ErrInvalidInput, amount, price)
	}
	return total, nil
}

func (r *MarketRepository) BuyStock(ctx context.Context, userID, stockID string, amount, price int64) (bool, error) {
	total, err := tradeTotal(amount, price)
	if err != nil {
		return false, err
	}
	var ok bool
	err = withTx(ctx, r.db, func(tx pgx.Tx) error {
		debited, err := ledgerQueries{q: tx}.TryDebit(ctx, userID, total)
		if err != nil || !debited {
			return err
		}

		oldAmount, oldAvg, err := getHoldingForUpdate(ctx, tx, userID, stockID)
		if err != nil {
			return err
		}
		newAmount := oldAmount + amount
		newAvg := (float64(oldAmount)*oldAvg + float64(total)) / float64(newAmount)

		if _, err := tx.Exec(ctx, sqlUpsertHolding, userID, stockID, newAmount, newAvg); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveHolding, err)
		}
		ok = true
		return nil
	})
	return ok, err
}

func (r *MarketRepository) SellStock(ctx context.Context, userID, stockID string, amount, price int64) (bool, error) {
	total, err := tradeTotal(amount, price)
	if err != nil {
		return false, err
	}
	var ok bool
	err = withTx(ctx, r.db, func(tx pgx.Tx) error {
		held, _, err := getHoldingForUpdate(ctx, tx, userID, stockID)
		if err != nil {
			return err
		}
		if held < amount {
			return nil
		}

		if _, err := (ledgerQueries{q: tx}).AddBalance(ctx, userID, total); err != nil {
			return err
		}

		remaining := held - amount
		if remaining <= 0 {
			_, err = tx.Exec(ctx, sqlDeleteHolding, userID, stockID)
		} else {
			_, err = tx.Exec(ctx, sqlUpdateHoldingAmount, userID, stockID, remaining)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveHolding, err)
		}
		ok = true
		return nil
	})
	return ok, err
}

func (r *MarketRepository) SellItems(ctx context.Context, userID, itemName string, amount int, unitPrice int64) (bool, error) {
	total, err := tradeTotal(int64(amount), unitPrice)
	if err != nil {
		return false, err
	}
	var ok bool
	err = withTx(ctx, r.db, func(tx pgx.Tx) error {
		l := ledgerQueries{q: tx}
		removed, err := l.RemoveItem(ctx, userID, itemName, amount)
		if err != nil || !removed {
			return err
		}
		if _, err := l.AddBalance(ctx, userID, total); err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}
