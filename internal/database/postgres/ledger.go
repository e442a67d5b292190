package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

const (
	sqlSelectAccount = `
		SELECT user_id, balance, affinity, daily_streak, last_daily
		FROM users WHERE user_id = $1`

	sqlEnsureAccount = `INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`

	sqlSelectAccountForUpdate = sqlSelectAccount + ` FOR UPDATE`

	sqlAddBalance = `
		INSERT INTO users (user_id, balance) VALUES ($1, GREATEST($2::bigint, 0))
		ON CONFLICT (user_id) DO UPDATE
		SET balance = GREATEST(users.balance + $2::bigint, 0), updated_at = NOW()
		RETURNING balance`

	sqlTryDebit = `
		UPDATE users SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2`

	sqlAddAffinity = `
		INSERT INTO users (user_id, affinity) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET affinity = users.affinity + EXCLUDED.affinity, updated_at = NOW()`

	sqlSetDaily = `
		UPDATE users SET daily_streak = $2, last_daily = $3, updated_at = NOW()
		WHERE user_id = $1`

	sqlSelectItemAmount = `SELECT amount FROM inventory WHERE user_id = $1 AND item_name = $2`

	sqlAddItem = `
		INSERT INTO inventory (user_id, item_name, amount) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_name) DO UPDATE
		SET amount = inventory.amount + EXCLUDED.amount`

	sqlDecrementItem = `
		UPDATE inventory SET amount = amount - $3
		WHERE user_id = $1 AND item_name = $2 AND amount >= $3
		RETURNING amount`

	sqlDeleteEmptyItem = `DELETE FROM inventory WHERE user_id = $1 AND item_name = $2 AND amount <= 0`

	sqlLockItems = `
		SELECT item_name, amount FROM inventory
		WHERE user_id = $1 AND item_name = ANY($2)
		ORDER BY item_name
		FOR UPDATE`

	sqlSelectInventory = `
		SELECT item_name, amount FROM inventory
		WHERE user_id = $1 AND amount > 0
		ORDER BY item_name`
)

// ledgerQueries implements repository.LedgerOps against any querier.
// RemoveItem and RemoveItems assume they run inside a transaction.
type ledgerQueries struct {
	q querier
}

func (l ledgerQueries) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	return l.scanAccount(ctx, sqlSelectAccount, userID)
}

func (l ledgerQueries) scanAccount(ctx context.Context, query, userID string) (*domain.Account, error) {
	var acc domain.Account
	var lastDaily *time.Time
	err := l.q.QueryRow(ctx, query, userID).Scan(&acc.UserID, &acc.Balance, &acc.Affinity, &acc.DailyStreak, &lastDaily)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Account{UserID: userID}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	acc.LastDaily = lastDaily
	return &acc, nil
}

func (l ledgerQueries) AddBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	var balance int64
	if err := l.q.QueryRow(ctx, sqlAddBalance, userID, delta).Scan(&balance); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	return balance, nil
}

func (l ledgerQueries) TryDebit(ctx context.Context, userID string, amount int64) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	tag, err := l.q.Exec(ctx, sqlTryDebit, userID, amount)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToDebitBalance, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (l ledgerQueries) AddAffinity(ctx context.Context, userID string, delta int64) error {
	if _, err := l.q.Exec(ctx, sqlAddAffinity, userID, delta); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAffinity, err)
	}
	return nil
}

func (l ledgerQueries) GetItemAmount(ctx context.Context, userID, itemName string) (int, error) {
	var amount int
	err := l.q.QueryRow(ctx, sqlSelectItemAmount, userID, itemName).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return max(amount, 0), nil
}

func (l ledgerQueries) AddItem(ctx context.Context, userID, itemName string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%s: %w", ErrMsgNegativeAmount, domain.ErrInvalidInput)
	}
	if amount == 0 {
		return nil
	}
	if _, err := l.q.Exec(ctx, sqlAddItem, userID, itemName, amount); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddItem, err)
	}
	return nil
}

func (l ledgerQueries) RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	var remaining int
	err := l.q.QueryRow(ctx, sqlDecrementItem, userID, itemName, amount).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToRemoveItem, err)
	}
	if remaining <= 0 {
		if _, err := l.q.Exec(ctx, sqlDeleteEmptyItem, userID, itemName); err != nil {
			return false, fmt.Errorf("%s: %w", ErrMsgFailedToRemoveItem, err)
		}
	}
	return true, nil
}

func (l ledgerQueries) RemoveItems(ctx context.Context, userID string, items map[string]int) (bool, error) {
	want := normalizeItemRequest(items)
	if len(want) == 0 {
		return true, nil
	}

	names := make([]string, 0, len(want))
	for name := range want {
		names = append(names, name)
	}
	sort.Strings(names)

	rows, err := l.q.Query(ctx, sqlLockItems, userID, names)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToLockItems, err)
	}
	held := make(map[string]int, len(names))
	for rows.Next() {
		var name string
		var amount int
		if err := rows.Scan(&name, &amount); err != nil {
			rows.Close()
			return false, fmt.Errorf("%s: %w", ErrMsgFailedToLockItems, err)
		}
		held[name] = amount
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToLockItems, err)
	}

	for _, name := range names {
		if held[name] < want[name] {
			return false, nil
		}
	}

	for _, name := range names {
		ok, err := l.RemoveItem(ctx, userID, name, want[name])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, fmt.Errorf("%s: %s changed under lock", ErrMsgFailedToRemoveItem, name)
		}
	}
	return true, nil
}

func (l ledgerQueries) GetInventory(ctx context.Context, userID string) ([]domain.InventorySlot, error) {
	rows, err := l.q.Query(ctx, sqlSelectInventory, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventorySlot, error) {
		var s domain.InventorySlot
		err := row.Scan(&s.ItemName, &s.Amount)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return slots, nil
}

// normalizeItemRequest takes absolute values and drops zero entries.
func normalizeItemRequest(items map[string]int) map[string]int {
	out := make(map[string]int, len(items))
	for name, amount := range items {
		if amount < 0 {
			amount = -amount
		}
		if amount == 0 {
			continue
		}
		out[name] += amount
	}
	return out
}

// LedgerRepository implements repository.Ledger for PostgreSQL
type LedgerRepository struct {
	ledgerQueries
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{ledgerQueries: ledgerQueries{q: db}, db: db}
}

// RemoveItem runs the decrement and the empty-row cleanup in one transaction.
func (r *LedgerRepository) RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	var ok bool
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		ok, err = ledgerQueries{q: tx}.RemoveItem(ctx, userID, itemName, amount)
		return err
	})
	return ok, err
}

// RemoveItems locks every requested row in name order and deducts all or nothing.
func (r *LedgerRepository) RemoveItems(ctx context.Context, userID string, items map[string]int) (bool, error) {
	var ok bool
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		ok, err = ledgerQueries{q: tx}.RemoveItems(ctx, userID, items)
		return err
	})
	return ok, err
}

// BeginTx starts a new ledger transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	uow, err := begin(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &ledgerTx{unitOfWork: uow}, nil
}

// ledgerTx implements repository.LedgerTx
type ledgerTx struct {
	unitOfWork
}

// GetAccountForUpdate creates the account row if needed and locks it.
func (t *ledgerTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	if _, err := t.q.Exec(ctx, sqlEnsureAccount, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return t.scanAccount(ctx, sqlSelectAccountForUpdate, userID)
}

func (t *ledgerTx) SetDaily(ctx context.Context, userID string, streak int, day time.Time) error {
	if _, err := t.q.Exec(ctx, sqlSetDaily, userID, streak, day); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDaily, err)
	}
	return nil
}

func (t *ledgerTx) TransferBalance(ctx context.Context, from, to string, amount int64) (bool, error) {
	ok, err := t.TryDebit(ctx, from, amount)
	if err != nil || !ok {
		return false, err
	}
	if _, err := t.AddBalance(ctx, to, amount); err != nil {
		return false, err
	}
	return true, nil
}
