package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

func newMarketHandler(t *testing.T) (*MarketHandler, *MockMarketService) {
	t.Helper()
	svc := &MockMarketService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return NewMarketHandler(svc), svc
}

func TestMarketHandler_Trade(t *testing.T) {
	result := domain.TradeResult{Success: true, StockID: "JLY", Amount: 3, Price: 1000, Total: 3000}

	tests := []struct {
		name       string
		body       string
		setup      func(*MockMarketService)
		wantStatus int
	}{
		{
			name: "market price",
			body: `{"stock_id":"JLY","amount":3,"buy":true}`,
			setup: func(m *MockMarketService) {
				m.On("TradeAtMarket", mock.Anything, "u1", "JLY", int64(3), true).Return(result, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "quoted price",
			body: `{"stock_id":"JLY","amount":3,"buy":false,"price":1000}`,
			setup: func(m *MockMarketService) {
				m.On("TradeStock", mock.Anything, "u1", "JLY", int64(3), int64(1000), false).Return(result, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown stock",
			body: `{"stock_id":"NOPE","amount":1,"buy":true}`,
			setup: func(m *MockMarketService) {
				m.On("TradeAtMarket", mock.Anything, "u1", "NOPE", int64(1), true).Return(domain.TradeResult{}, domain.ErrStockNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing amount",
			body:       `{"stock_id":"JLY","buy":true}`,
			setup:      func(*MockMarketService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "price above bound",
			body:       `{"stock_id":"JLY","amount":4,"buy":true,"price":4611686018427387904}`,
			setup:      func(*MockMarketService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newMarketHandler(t)
			tt.setup(svc)

			rec := serve(http.MethodPost, "/stocks/trade", "/users/u1/stocks/trade", tt.body, h.HandleTrade)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMarketHandler_PriceHistoryLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"default", "", defaultHistoryLimit},
		{"explicit", "?limit=5", 5},
		{"clamped", "?limit=5000", maxHistoryLimit},
		{"non-positive", "?limit=0", defaultHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newMarketHandler(t)
			svc.On("GetPriceHistory", mock.Anything, "철광석", tt.wantLimit).Return([]domain.PricePoint{{Price: 120}}, nil)

			rec := serve(http.MethodGet, "/market/items/{item}/history", "/market/items/철광석/history"+tt.query, "", h.HandlePriceHistory)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"price":120`)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		h, _ := newMarketHandler(t)
		rec := serve(http.MethodGet, "/market/items/{item}/history", "/market/items/철광석/history?limit=abc", "", h.HandlePriceHistory)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMarketHandler_Sell(t *testing.T) {
	h, svc := newMarketHandler(t)
	svc.On("SellItem", mock.Anything, "u1", "철광석", 4).
		Return(domain.SaleResult{Success: true, ItemName: "철광석", Amount: 4, Price: 110, Total: 440}, nil)

	rec := serve(http.MethodPost, "/market/sell", "/users/u1/market/sell", `{"item_name":"철광석","amount":4}`, h.HandleSell)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":440`)
}

func TestMarketHandler_Tick(t *testing.T) {
	t.Run("clean tick", func(t *testing.T) {
		h, svc := newMarketHandler(t)
		svc.On("RunTick", mock.Anything).Return(domain.TickSummary{ItemsUpdated: 12, StocksUpdated: 5}, nil)

		rec := serve(http.MethodPost, "/market/tick", "/market/tick", "", h.HandleTick)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"items_updated":12`)
	})

	t.Run("partial tick still reports summary", func(t *testing.T) {
		h, svc := newMarketHandler(t)
		svc.On("RunTick", mock.Anything).Return(domain.TickSummary{ItemsUpdated: 11}, assert.AnError)

		rec := serve(http.MethodPost, "/market/tick", "/market/tick", "", h.HandleTick)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"items_updated":11`)
	})
}
