package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/market"
)

// Market history limits
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// MarketHandler serves collectible prices, stocks and trades.
type MarketHandler struct {
	svc market.Service
}

// NewMarketHandler creates market handlers.
func NewMarketHandler(svc market.Service) *MarketHandler {
	return &MarketHandler{svc: svc}
}

// TradeRequest buys or sells stock. A zero price trades at the current price.
type TradeRequest struct {
	StockID string `json:"stock_id" validate:"required,max=32"`
	Amount  int64  `json:"amount" validate:"gt=0,max=1000000"`
	Buy     bool   `json:"buy"`
	Price   int64  `json:"price,omitempty" validate:"min=0,max=1000000000000"`
}

// historyLimit reads ?limit=, clamped into [1, maxHistoryLimit].
func historyLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit, ok := GetIntQueryParam(r, w, "limit", defaultHistoryLimit)
	if !ok {
		return 0, false
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return limit, true
}

// HandleMarketStatus lists every collectible's current price.
func (h *MarketHandler) HandleMarketStatus(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetMarketStatus(r.Context())
	if err != nil {
		respondServiceError(w, r, "Market status", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}

// HandleGetPrice quotes one item at its live price.
func (h *MarketHandler) HandleGetPrice(w http.ResponseWriter, r *http.Request) {
	quote, err := h.svc.GetPrice(r.Context(), chi.URLParam(r, "item"))
	if err != nil {
		respondServiceError(w, r, "Get price", err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// HandlePriceHistory returns the most recent price samples of an item.
func (h *MarketHandler) HandlePriceHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := historyLimit(w, r)
	if !ok {
		return
	}
	points, err := h.svc.GetPriceHistory(r.Context(), chi.URLParam(r, "item"), limit)
	if err != nil {
		respondServiceError(w, r, "Price history", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: points})
}

// HandleListStocks lists every stock.
func (h *MarketHandler) HandleListStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.svc.GetAllStocks(r.Context())
	if err != nil {
		respondServiceError(w, r, "List stocks", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: stocks})
}

// HandleStockHistory returns recent prices of one stock.
func (h *MarketHandler) HandleStockHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := historyLimit(w, r)
	if !ok {
		return
	}
	points, err := h.svc.GetStockHistory(r.Context(), chi.URLParam(r, "stockID"), limit)
	if err != nil {
		respondServiceError(w, r, "Stock history", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: points})
}

// HandleHoldings lists the account's stock positions.
func (h *MarketHandler) HandleHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.svc.GetHoldings(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get holdings", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: holdings})
}

// HandleTrade buys or sells stock. A declined trade is a 200 with success=false.
func (h *MarketHandler) HandleTrade(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Trade stock"); err != nil {
		return
	}
	userID := accountID(r)

	var (
		result domain.TradeResult
		err    error
	)
	if req.Price > 0 {
		result, err = h.svc.TradeStock(r.Context(), userID, req.StockID, req.Amount, req.Price, req.Buy)
	} else {
		result, err = h.svc.TradeAtMarket(r.Context(), userID, req.StockID, req.Amount, req.Buy)
	}
	if err != nil {
		respondServiceError(w, r, "Trade stock", err)
		return
	}
	logger.FromContext(r.Context()).Info("Trade handled", "stock", req.StockID, "amount", req.Amount, "buy", req.Buy)
	respondJSON(w, http.StatusOK, result)
}

// HandleSell sells collectibles at the current market price and shop
// consumables back at half their shop price.
func (h *MarketHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}
	result, err := h.svc.SellItem(r.Context(), accountID(r), req.ItemName, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleTick runs one simulator pass on demand.
func (h *MarketHandler) HandleTick(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.RunTick(r.Context())
	if err != nil {
		// Partial ticks still report what moved.
		logger.FromContext(r.Context()).Error("Market tick finished with errors", "error", err)
		respondJSON(w, http.StatusInternalServerError, DataResponse{Message: ErrMsgGenericServerError, Data: summary})
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgMarketTickCompleted, Data: summary})
}
