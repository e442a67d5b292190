package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/metrics"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

func (s *service) BuyItem(ctx context.Context, userID, itemName string, amount int) (domain.PurchaseResult, error) {
	result := domain.PurchaseResult{ItemName: itemName, Amount: amount}
	if amount < 1 {
		return result, fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidInput, amount)
	}
	price, ok := s.catalog.ShopPrice(itemName)
	if !ok {
		return result, fmt.Errorf(ErrMsgNotForSaleFmt, domain.ErrItemNotFound, itemName)
	}
	total, fits := utils.MulInt64(int64(amount), price)
	if !fits {
		return result, fmt.Errorf(ErrMsgTotalOverflowFmt, domain.ErrInvalidInput, amount, price)
	}
	result.Price = price
	result.Total = total

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return result, storageFailure(ctx, ErrMsgBuyItemFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	paid, err := tx.TryDebit(ctx, userID, total)
	metrics.RecordDebit(metrics.KindBalance, paid, err)
	if err != nil {
		return result, storageFailure(ctx, ErrMsgBuyItemFailed, userID, err)
	}
	if !paid {
		logger.FromContext(ctx).Debug(LogMsgDebitRejected, "user_id", userID, "amount", total)
		return result, nil
	}
	if err := tx.AddItem(ctx, userID, itemName, amount); err != nil {
		return result, storageFailure(ctx, ErrMsgBuyItemFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return result, storageFailure(ctx, ErrMsgBuyItemFailed, userID, err)
	}

	result.Success = true
	logger.FromContext(ctx).Info(LogMsgItemBought, "user_id", userID, "item", itemName, "amount", amount, "total", total)
	return result, nil
}

func (s *service) GiftItem(ctx context.Context, userID, itemName string) (*domain.GiftResult, error) {
	if _, known := s.catalog.Consumable(itemName); !known {
		return nil, fmt.Errorf(ErrMsgUnknownItemFmt, domain.ErrItemNotFound, itemName)
	}
	affinity, ok := s.catalog.GiftAffinity(itemName)
	if !ok {
		return nil, fmt.Errorf(ErrMsgNotGiftableFmt, domain.ErrNoEffect, itemName)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgGiftItemFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	removed, err := tx.RemoveItem(ctx, userID, itemName, 1)
	metrics.RecordDebit(metrics.KindItems, removed, err)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgGiftItemFailed, userID, err)
	}
	if !removed {
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, itemName)
	}
	if err := tx.AddAffinity(ctx, userID, affinity); err != nil {
		return nil, storageFailure(ctx, ErrMsgGiftItemFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storageFailure(ctx, ErrMsgGiftItemFailed, userID, err)
	}

	logger.FromContext(ctx).Info(LogMsgItemGifted, "user_id", userID, "item", itemName, "affinity", affinity)
	event.PublishBestEffort(ctx, s.bus, event.NewItemUsedEvent(userID, itemName, event.SourceGift))
	return &domain.GiftResult{ItemName: itemName, AffinityGranted: affinity}, nil
}
