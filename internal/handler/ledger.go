package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/ledger"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// LedgerHandler serves balances, inventories, cooldowns and the daily claim.
type LedgerHandler struct {
	svc     ledger.Service
	windows func(action string) time.Duration
}

// NewLedgerHandler creates ledger handlers. windows resolves the configured
// cooldown window for an action.
func NewLedgerHandler(svc ledger.Service, windows func(action string) time.Duration) *LedgerHandler {
	return &LedgerHandler{svc: svc, windows: windows}
}

// BalanceResponse carries an account balance.
type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

// DeltaRequest adjusts balance or affinity by a signed amount.
type DeltaRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

// AmountRequest is a positive jelly amount.
type AmountRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// ItemRequest names an item and a stack size.
type ItemRequest struct {
	ItemName string `json:"item_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount   int    `json:"amount" validate:"min=1,max=10000"`
}

// ItemsRequest is an all-or-nothing multi-item deduction.
type ItemsRequest struct {
	Items map[string]int `json:"items" validate:"required,min=1,dive,keys,required,max=100,endkeys,min=1"`
}

// UseItemRequest names the item to consume.
type UseItemRequest struct {
	ItemName string `json:"item_name" validate:"required,max=100"`
}

// TransferRequest moves jelly to another account.
type TransferRequest struct {
	To     string `json:"to" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// OutcomeResponse reports a conditional operation that may be declined.
type OutcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CooldownResponse reports how long until an action is ready.
type CooldownResponse struct {
	Action           string  `json:"action"`
	RemainingSeconds float64 `json:"remaining_seconds"`
	Ready            bool    `json:"ready"`
}

// HandleGetAccount returns the full account row.
func (h *LedgerHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.GetAccount(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get account", err)
		return
	}
	respondJSON(w, http.StatusOK, acc)
}

// HandleGetBalance returns the jelly balance.
func (h *LedgerHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID := accountID(r)
	balance, err := h.svc.GetBalance(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get balance", err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{UserID: userID, Balance: balance})
}

// HandleUpdateBalance applies a signed delta. Negative deltas floor at zero.
func (h *LedgerHandler) HandleUpdateBalance(w http.ResponseWriter, r *http.Request) {
	var req DeltaRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update balance"); err != nil {
		return
	}
	userID := accountID(r)
	if err := h.svc.UpdateBalance(r.Context(), userID, req.Delta); err != nil {
		respondServiceError(w, r, "Update balance", err)
		return
	}
	logger.FromContext(r.Context()).Info("Balance updated", "delta", req.Delta)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBalanceUpdated})
}

// HandleDeductBalance debits only when the balance covers the amount.
func (h *LedgerHandler) HandleDeductBalance(w http.ResponseWriter, r *http.Request) {
	var req AmountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deduct balance"); err != nil {
		return
	}
	ok, err := h.svc.TryDeductBalance(r.Context(), accountID(r), req.Amount)
	if err != nil {
		respondServiceError(w, r, "Deduct balance", err)
		return
	}
	resp := OutcomeResponse{Success: ok}
	if !ok {
		resp.Message = MsgDeductDeclined
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleUpdateAffinity applies a signed affinity delta.
func (h *LedgerHandler) HandleUpdateAffinity(w http.ResponseWriter, r *http.Request) {
	var req DeltaRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update affinity"); err != nil {
		return
	}
	if err := h.svc.UpdateAffinity(r.Context(), accountID(r), req.Delta); err != nil {
		respondServiceError(w, r, "Update affinity", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAffinityUpdated})
}

// HandleGetInventory lists every held stack.
func (h *LedgerHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.GetInventory(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get inventory", err)
		return
	}
	if slots == nil {
		slots = []domain.InventorySlot{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: slots})
}

// HandleAddItem grants items.
func (h *LedgerHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
		return
	}
	if err := h.svc.AddItem(r.Context(), accountID(r), req.ItemName, req.Amount); err != nil {
		respondServiceError(w, r, "Add item", err)
		return
	}
	logger.FromContext(r.Context()).Info("Item added", "item", req.ItemName, "amount", req.Amount)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemAddedSuccess})
}

// HandleRemoveItem removes a stack only when enough is held.
func (h *LedgerHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove item"); err != nil {
		return
	}
	ok, err := h.svc.RemoveItem(r.Context(), accountID(r), req.ItemName, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Remove item", err)
		return
	}
	resp := OutcomeResponse{Success: ok}
	if !ok {
		resp.Message = MsgItemsDeductDeclined
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleDeductItems removes every listed item or none.
func (h *LedgerHandler) HandleDeductItems(w http.ResponseWriter, r *http.Request) {
	var req ItemsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deduct items"); err != nil {
		return
	}
	ok, err := h.svc.TryDeductItems(r.Context(), accountID(r), req.Items)
	if err != nil {
		respondServiceError(w, r, "Deduct items", err)
		return
	}
	resp := OutcomeResponse{Success: ok}
	if !ok {
		resp.Message = MsgItemsDeductDeclined
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleUseItem consumes one item and applies its effect.
func (h *LedgerHandler) HandleUseItem(w http.ResponseWriter, r *http.Request) {
	var req UseItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
		return
	}
	result, err := h.svc.UseItem(r.Context(), accountID(r), req.ItemName)
	if err != nil {
		respondServiceError(w, r, "Use item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleBuyItem buys items from the shop. A purchase the balance does not
// cover is a 200 with success=false.
func (h *LedgerHandler) HandleBuyItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}
	result, err := h.svc.BuyItem(r.Context(), accountID(r), req.ItemName, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleGiftItem gifts one item for affinity.
func (h *LedgerHandler) HandleGiftItem(w http.ResponseWriter, r *http.Request) {
	var req UseItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Gift item"); err != nil {
		return
	}
	result, err := h.svc.GiftItem(r.Context(), accountID(r), req.ItemName)
	if err != nil {
		respondServiceError(w, r, "Gift item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleClaimDaily claims today's reward. A second claim on the same day
// returns claimed=false rather than an error.
func (h *LedgerHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	claim, err := h.svc.ClaimDaily(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Claim daily", err)
		return
	}
	respondJSON(w, http.StatusOK, claim)
}

// HandleTransfer moves jelly between accounts.
func (h *LedgerHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Transfer"); err != nil {
		return
	}
	from := accountID(r)
	if req.To == from {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	ok, err := h.svc.Transfer(r.Context(), from, req.To, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Transfer", err)
		return
	}
	resp := OutcomeResponse{Success: ok}
	if !ok {
		resp.Message = MsgTransferDeclined
	}
	logger.FromContext(r.Context()).Info("Transfer handled", "to", req.To, "amount", req.Amount, "success", ok)
	respondJSON(w, http.StatusOK, resp)
}

// HandleCheckCooldown reports the remaining window for an action.
func (h *LedgerHandler) HandleCheckCooldown(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	remaining, err := h.svc.CheckCooldown(r.Context(), accountID(r), action, h.windows(action))
	if err != nil {
		respondServiceError(w, r, "Check cooldown", err)
		return
	}
	respondJSON(w, http.StatusOK, CooldownResponse{
		Action:           action,
		RemainingSeconds: remaining,
		Ready:            remaining == 0,
	})
}

// HandleStartCooldown stamps an action as used now.
func (h *LedgerHandler) HandleStartCooldown(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.UpdateCooldown(r.Context(), accountID(r), chi.URLParam(r, "action")); err != nil {
		respondServiceError(w, r, "Start cooldown", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCooldownStarted})
}

// HandleResetCooldown clears an action's cooldown.
func (h *LedgerHandler) HandleResetCooldown(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetCooldown(r.Context(), accountID(r), chi.URLParam(r, "action")); err != nil {
		respondServiceError(w, r, "Reset cooldown", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCooldownReset})
}
