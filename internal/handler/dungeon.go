package handler

import (
	"net/http"

	"github.com/osse101/JellyBot_Go/internal/battle"
	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// DungeonHandler serves dungeon runs, preferences and records.
type DungeonHandler struct {
	svc battle.Service
}

// NewDungeonHandler creates dungeon handlers.
func NewDungeonHandler(svc battle.Service) *DungeonHandler {
	return &DungeonHandler{svc: svc}
}

// StartRequest starts a run. Stage 0 means the account's next stage.
// UpdateProgress defaults to true.
type StartRequest struct {
	Stage          int   `json:"stage" validate:"min=0"`
	Special        bool  `json:"is_special"`
	UpdateProgress *bool `json:"update_progress,omitempty"`
}

// FavoriteRequest names a saved stage shortcut.
type FavoriteRequest struct {
	Stage   int  `json:"stage" validate:"min=1"`
	Special bool `json:"is_special"`
}

// ActionRequest is one battle turn.
type ActionRequest struct {
	Action string `json:"action" validate:"required,battle_action"`
}

// SettingsRequest replaces the account's dungeon settings.
type SettingsRequest struct {
	AutoRetry bool   `json:"auto_retry"`
	LogMode   string `json:"log_mode" validate:"required,log_mode"`
}

// ProgressResponse is the account's highest reachable stage.
type ProgressResponse struct {
	Stage int `json:"stage"`
}

// HandlePreview shows the encounter a start would produce without starting it.
func (h *DungeonHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	stage, ok := GetIntQueryParam(r, w, "stage", 0)
	if !ok {
		return
	}
	special, ok := GetBoolQueryParam(r, w, "special")
	if !ok {
		return
	}
	preview, err := h.svc.Preview(r.Context(), accountID(r), battle.StartOptions{Stage: stage, Special: special})
	if err != nil {
		respondServiceError(w, r, "Dungeon preview", err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

// HandleStart starts and saves a new run.
func (h *DungeonHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start dungeon"); err != nil {
		return
	}
	opts := battle.StartOptions{Stage: req.Stage, Special: req.Special, UpdateProgress: true}
	if req.UpdateProgress != nil {
		opts.UpdateProgress = *req.UpdateProgress
	}
	session, err := h.svc.StartSession(r.Context(), accountID(r), opts)
	if err != nil {
		respondServiceError(w, r, "Start dungeon", err)
		return
	}
	logger.FromContext(r.Context()).Info("Dungeon started", "stage", session.Stage, "special", session.Special)
	respondJSON(w, http.StatusCreated, session)
}

// HandleStartFavorite replays a favorite stage. Replays never move progress.
func (h *DungeonHandler) HandleStartFavorite(w http.ResponseWriter, r *http.Request) {
	var req FavoriteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start favorite"); err != nil {
		return
	}
	session, err := h.svc.StartFavorite(r.Context(), accountID(r), domain.DungeonFavorite{Stage: req.Stage, Special: req.Special})
	if err != nil {
		respondServiceError(w, r, "Start favorite", err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// HandleAction applies one turn to the saved run.
func (h *DungeonHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Dungeon action"); err != nil {
		return
	}
	result, err := h.svc.ApplyAction(r.Context(), accountID(r), domain.BattleAction(req.Action))
	if err != nil {
		respondServiceError(w, r, "Dungeon action", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleGetSession returns the saved run so a client can resume it.
func (h *DungeonHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetSavedSession(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get session", err)
		return
	}
	if session == nil {
		respondError(w, http.StatusNotFound, MsgNoSavedSession)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// HandleDiscardSession drops the saved run without settling it.
func (h *DungeonHandler) HandleDiscardSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DiscardSession(r.Context(), accountID(r)); err != nil {
		respondServiceError(w, r, "Discard session", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionDiscarded})
}

// HandleGetProgress returns the stage a plain start would enter.
func (h *DungeonHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	stage, err := h.svc.GetProgress(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get progress", err)
		return
	}
	respondJSON(w, http.StatusOK, ProgressResponse{Stage: stage})
}

// HandleGetSettings returns the account's dungeon settings.
func (h *DungeonHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get settings", err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// HandleUpdateSettings saves the account's dungeon settings.
func (h *DungeonHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update settings"); err != nil {
		return
	}
	settings := domain.DungeonSettings{AutoRetry: req.AutoRetry, LogMode: req.LogMode}
	if err := h.svc.UpdateSettings(r.Context(), accountID(r), settings); err != nil {
		respondServiceError(w, r, "Update settings", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSettingsSaved})
}

// HandleListFavorites lists saved stage shortcuts.
func (h *DungeonHandler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.ListFavorites(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "List favorites", err)
		return
	}
	if favs == nil {
		favs = []domain.DungeonFavorite{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: favs})
}

// HandleAddFavorite saves a stage shortcut.
func (h *DungeonHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req FavoriteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add favorite"); err != nil {
		return
	}
	if err := h.svc.AddFavorite(r.Context(), accountID(r), domain.DungeonFavorite{Stage: req.Stage, Special: req.Special}); err != nil {
		respondServiceError(w, r, "Add favorite", err)
		return
	}
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgFavoriteAdded})
}

// HandleRemoveFavorite deletes a stage shortcut named by ?stage=&special=.
func (h *DungeonHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	stage, ok := GetIntQueryParam(r, w, "stage", 0)
	if !ok {
		return
	}
	special, ok := GetBoolQueryParam(r, w, "special")
	if !ok {
		return
	}
	removed, err := h.svc.RemoveFavorite(r.Context(), accountID(r), domain.DungeonFavorite{Stage: stage, Special: special})
	if err != nil {
		respondServiceError(w, r, "Remove favorite", err)
		return
	}
	if !removed {
		respondError(w, http.StatusNotFound, MsgFavoriteNotFound)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavoriteRemoved})
}

// HandleListRecords returns the newest battle records first.
func (h *DungeonHandler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetIntQueryParam(r, w, "limit", 0)
	if !ok {
		return
	}
	records, err := h.svc.ListRecords(r.Context(), accountID(r), limit)
	if err != nil {
		respondServiceError(w, r, "List records", err)
		return
	}
	if records == nil {
		records = []domain.BattleRecord{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: records})
}
