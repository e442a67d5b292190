package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// TradeStock validates the order then runs it in a single repository
// transaction. Business refusals come back as Success=false with a message
// and a nil error.
func (s *service) TradeStock(ctx context.Context, userID, stockID string, amount, price int64, isBuy bool) (domain.TradeResult, error) {
	stockID = strings.ToUpper(stockID)
	result := domain.TradeResult{StockID: stockID, Amount: amount, Price: price}

	if amount < 1 {
		result.Message = MsgInvalidAmount
		return result, nil
	}
	if price <= 0 {
		result.Message = MsgInvalidPrice
		return result, nil
	}
	if _, fits := utils.MulInt64(amount, price); !fits {
		result.Message = MsgTotalTooLarge
		return result, nil
	}

	stock, err := s.repo.GetStock(ctx, stockID)
	if err != nil {
		result.Message = MsgTradeFailed
		return result, storageFailure(ctx, ErrMsgTradeFailed, err)
	}
	if stock == nil {
		result.Message = MsgUnknownStock
		return result, nil
	}

	return s.execute(ctx, userID, result, isBuy)
}

func (s *service) TradeAtMarket(ctx context.Context, userID, stockID string, amount int64, isBuy bool) (domain.TradeResult, error) {
	stockID = strings.ToUpper(stockID)
	result := domain.TradeResult{StockID: stockID, Amount: amount}

	if amount < 1 {
		result.Message = MsgInvalidAmount
		return result, nil
	}

	stock, err := s.repo.GetStock(ctx, stockID)
	if err != nil {
		result.Message = MsgTradeFailed
		return result, storageFailure(ctx, ErrMsgTradeFailed, err)
	}
	if stock == nil {
		result.Message = MsgUnknownStock
		return result, nil
	}
	if stock.Price <= 0 {
		result.Message = MsgInvalidPrice
		return result, nil
	}

	result.Price = stock.Price
	return s.execute(ctx, userID, result, isBuy)
}

func (s *service) execute(ctx context.Context, userID string, result domain.TradeResult, isBuy bool) (domain.TradeResult, error) {
	total, fits := utils.MulInt64(result.Amount, result.Price)
	if !fits {
		result.Message = MsgTotalTooLarge
		return result, nil
	}

	var (
		ok  bool
		err error
	)
	if isBuy {
		ok, err = s.repo.BuyStock(ctx, userID, result.StockID, result.Amount, result.Price)
	} else {
		ok, err = s.repo.SellStock(ctx, userID, result.StockID, result.Amount, result.Price)
	}
	if err != nil {
		result.Message = MsgTradeFailed
		return result, storageFailure(ctx, ErrMsgTradeFailed, err)
	}

	if !ok {
		if isBuy {
			result.Message = MsgInsufficientJelly
		} else {
			result.Message = MsgInsufficientStock
		}
		return result, nil
	}

	result.Success = true
	result.Total = total
	format := MsgSoldFmt
	if isBuy {
		format = MsgBoughtFmt
	}
	result.Message = s.printer.Sprintf(format, result.StockID, result.Amount, result.Total)

	logger.FromContext(ctx).Info(LogMsgTradeCompleted,
		"user_id", userID,
		"stock_id", result.StockID,
		"buy", isBuy,
		"amount", result.Amount,
		"total", result.Total)
	event.PublishBestEffort(ctx, s.bus, event.NewStockTradedEvent(userID, isBuy, result))
	return result, nil
}

// SellCollectible sells amount of a catalog collectible at its current market
// price. The item removal and the credit happen in one transaction.
func (s *service) SellCollectible(ctx context.Context, userID, itemName string, amount int) (domain.SaleResult, error) {
	if amount < 1 {
		return domain.SaleResult{ItemName: itemName, Amount: amount}, fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidInput)
	}
	quote, err := s.GetPrice(ctx, itemName)
	if err != nil {
		return domain.SaleResult{ItemName: itemName, Amount: amount}, err
	}
	return s.sell(ctx, userID, itemName, amount, quote.Price)
}

// SellItem sells collectibles at the market price and shop consumables back
// at a fixed share of their shop price. Anything else cannot be sold.
func (s *service) SellItem(ctx context.Context, userID, itemName string, amount int) (domain.SaleResult, error) {
	if _, ok := s.catalog.BasePrice(itemName); ok {
		return s.SellCollectible(ctx, userID, itemName, amount)
	}
	if amount < 1 {
		return domain.SaleResult{ItemName: itemName, Amount: amount}, fmt.Errorf(ErrMsgInvalidAmountFmt, domain.ErrInvalidInput)
	}
	price, ok := s.catalog.SellBackPrice(itemName)
	if !ok {
		return domain.SaleResult{ItemName: itemName, Amount: amount}, fmt.Errorf(ErrMsgNotSellableFmt, domain.ErrItemNotFound, itemName)
	}
	return s.sell(ctx, userID, itemName, amount, price)
}

func (s *service) sell(ctx context.Context, userID, itemName string, amount int, unitPrice int64) (domain.SaleResult, error) {
	result := domain.SaleResult{ItemName: itemName, Amount: amount, Price: unitPrice}
	total, fits := utils.MulInt64(int64(amount), unitPrice)
	if !fits {
		return result, fmt.Errorf(ErrMsgSaleOverflowFmt, domain.ErrInvalidInput, amount, unitPrice)
	}

	ok, err := s.repo.SellItems(ctx, userID, itemName, amount, unitPrice)
	if err != nil {
		return result, storageFailure(ctx, ErrMsgSellFailed, err)
	}
	if !ok {
		return result, nil
	}

	result.Success = true
	result.Total = total
	logger.FromContext(ctx).Info(LogMsgItemSold,
		"user_id", userID,
		"item", itemName,
		"amount", amount,
		"total", result.Total)
	return result, nil
}
