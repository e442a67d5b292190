package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/progression"
	"github.com/osse101/JellyBot_Go/internal/reward"
)

// ProgressionHandler serves tool upgrades, armor enhancement, equipment, pets and jobs.
type ProgressionHandler struct {
	svc progression.Service
}

// NewProgressionHandler creates progression handlers.
func NewProgressionHandler(svc progression.Service) *ProgressionHandler {
	return &ProgressionHandler{svc: svc}
}

// EnhanceRequest names the armor item to enhance.
type EnhanceRequest struct {
	ItemName string `json:"item_name" validate:"required,max=100"`
}

// EquipRequest names the item to put in the route's slot.
type EquipRequest struct {
	ItemName string `json:"item_name" validate:"required,max=100"`
}

// AdoptRequest adopts a pet. An empty name uses the pet type.
type AdoptRequest struct {
	PetType string `json:"pet_type" validate:"required,max=32"`
	Name    string `json:"name" validate:"max=32,excludesall=\x00\n\r\t"`
}

// XPRequest grants experience.
type XPRequest struct {
	XP int64 `json:"xp" validate:"gt=0,max=1000000"`
}

// AttemptUpgradeRequest is an upgrade priced by the caller, for tracks that
// are not tool tiers such as pet or job perks.
type AttemptUpgradeRequest struct {
	Jelly     int64          `json:"jelly" validate:"min=0,max=1000000000000"`
	Materials map[string]int `json:"materials,omitempty" validate:"omitempty,max=16,dive,keys,required,max=100,endkeys,min=1,max=10000"`
	Chance    int            `json:"chance" validate:"min=0,max=100"`
}

// LevelsResponse maps a track or item to its level.
type LevelsResponse struct {
	Levels map[string]int `json:"levels"`
}

// SlotResponse reports what left or entered a slot.
type SlotResponse struct {
	Slot     string `json:"slot"`
	Equipped string `json:"equipped,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// GearStatsResponse is the equipped gear and the battle stats it yields.
type GearStatsResponse struct {
	Gear  domain.EquipmentAggregate `json:"gear"`
	Stats domain.PlayerStats        `json:"stats"`
}

// HandleUpgradeTool attempts one upgrade on the route's tool track.
func (h *ProgressionHandler) HandleUpgradeTool(w http.ResponseWriter, r *http.Request) {
	track := chi.URLParam(r, "track")
	result, err := h.svc.UpgradeTool(r.Context(), accountID(r), track)
	if err != nil {
		respondServiceError(w, r, "Upgrade tool", err)
		return
	}
	logger.FromContext(r.Context()).Info("Upgrade attempted", "track", track, "success", result.Success, "level", result.NewLevel)
	respondJSON(w, http.StatusOK, result)
}

// HandleAttemptUpgrade charges the requested cost and rolls one level on the
// route's track.
func (h *ProgressionHandler) HandleAttemptUpgrade(w http.ResponseWriter, r *http.Request) {
	var req AttemptUpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Attempt upgrade"); err != nil {
		return
	}
	track := chi.URLParam(r, "track")
	cost := progression.Cost{Jelly: req.Jelly, Materials: req.Materials}
	result, err := h.svc.AttemptUpgrade(r.Context(), accountID(r), track, cost, req.Chance)
	if err != nil {
		respondServiceError(w, r, "Attempt upgrade", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleGetUpgradeLevels lists tool levels.
func (h *ProgressionHandler) HandleGetUpgradeLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.svc.GetUpgradeLevels(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get upgrade levels", err)
		return
	}
	respondJSON(w, http.StatusOK, LevelsResponse{Levels: levels})
}

// HandleEnhanceArmor attempts one enhancement of an armor item.
func (h *ProgressionHandler) HandleEnhanceArmor(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Enhance armor"); err != nil {
		return
	}
	result, err := h.svc.EnhanceArmor(r.Context(), accountID(r), req.ItemName)
	if err != nil {
		respondServiceError(w, r, "Enhance armor", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleGetEnhancementLevels lists armor enhancement levels.
func (h *ProgressionHandler) HandleGetEnhancementLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.svc.GetEnhancementLevels(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get enhancement levels", err)
		return
	}
	respondJSON(w, http.StatusOK, LevelsResponse{Levels: levels})
}

// HandleGetEquipment returns occupied slots.
func (h *ProgressionHandler) HandleGetEquipment(w http.ResponseWriter, r *http.Request) {
	equipped, err := h.svc.GetEquipped(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Get equipment", err)
		return
	}
	if equipped == nil {
		equipped = domain.Equipment{}
	}
	respondJSON(w, http.StatusOK, equipped)
}

// HandleEquip puts an item in the route's slot.
func (h *ProgressionHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip"); err != nil {
		return
	}
	slot := chi.URLParam(r, "slot")
	previous, err := h.svc.Equip(r.Context(), accountID(r), slot, req.ItemName)
	if err != nil {
		respondServiceError(w, r, "Equip", err)
		return
	}
	respondJSON(w, http.StatusOK, SlotResponse{Slot: slot, Equipped: req.ItemName, Previous: previous})
}

// HandleUnequip empties the route's slot.
func (h *ProgressionHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	slot := chi.URLParam(r, "slot")
	previous, err := h.svc.Unequip(r.Context(), accountID(r), slot)
	if err != nil {
		respondServiceError(w, r, "Unequip", err)
		return
	}
	respondJSON(w, http.StatusOK, SlotResponse{Slot: slot, Previous: previous})
}

// HandleGearStats returns the equipped gear and the stats a battle would use.
func (h *ProgressionHandler) HandleGearStats(w http.ResponseWriter, r *http.Request) {
	agg, err := h.svc.GetAggregate(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "Gear stats", err)
		return
	}
	respondJSON(w, http.StatusOK, GearStatsResponse{Gear: agg, Stats: reward.Player(agg)})
}

// HandleListPets lists adopted pets.
func (h *ProgressionHandler) HandleListPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.svc.GetPetList(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "List pets", err)
		return
	}
	if pets == nil {
		pets = []domain.Pet{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: pets})
}

// HandleAdoptPet adopts a new pet.
func (h *ProgressionHandler) HandleAdoptPet(w http.ResponseWriter, r *http.Request) {
	var req AdoptRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adopt pet"); err != nil {
		return
	}
	pet, err := h.svc.AdoptPet(r.Context(), accountID(r), req.PetType, req.Name)
	if err != nil {
		respondServiceError(w, r, "Adopt pet", err)
		return
	}
	respondJSON(w, http.StatusCreated, pet)
}

// HandlePetXP grants experience to one pet.
func (h *ProgressionHandler) HandlePetXP(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || petID <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPetID)
		return
	}
	var req XPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Pet XP"); err != nil {
		return
	}
	result, err := h.svc.GrantPetXP(r.Context(), accountID(r), petID, req.XP)
	if err != nil {
		respondServiceError(w, r, "Pet XP", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleListJobs lists job levels.
func (h *ProgressionHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.GetJobs(r.Context(), accountID(r))
	if err != nil {
		respondServiceError(w, r, "List jobs", err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobProgress{}
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: jobs})
}

// HandleJobXP grants experience in the route's job.
func (h *ProgressionHandler) HandleJobXP(w http.ResponseWriter, r *http.Request) {
	var req XPRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Job XP"); err != nil {
		return
	}
	result, err := h.svc.GrantJobXP(r.Context(), accountID(r), chi.URLParam(r, "job"), req.XP)
	if err != nil {
		respondServiceError(w, r, "Job XP", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
