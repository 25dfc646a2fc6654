package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"catalog-backend/application/controllers"
	"catalog-backend/domain/core/aggregates"
	"catalog-backend/domain/core/valueobjects"
	"catalog-backend/pkg/observability"
)

// CreatorHandler handles creator-related HTTP requests
type CreatorHandler struct {
	controller *controllers.CreatorDomainController
	collector  *observability.Collector
	limits     ListingLimits
	logger     *zap.Logger
}

// NewCreatorHandler creates a new creator handler
func NewCreatorHandler(
	controller *controllers.CreatorDomainController,
	collector *observability.Collector,
	limits ListingLimits,
	logger *zap.Logger,
) *CreatorHandler {
	return &CreatorHandler{
		controller: controller,
		collector:  collector,
		limits:     limits,
		logger:     logger,
	}
}

// CreateCreatorRequest represents the request body for creating a creator
type CreateCreatorRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

// RenameCreatorRequest represents the request body for renaming a creator
type RenameCreatorRequest struct {
	Name string `json:"name" validate:"required"`
}

// ChangeRoleRequest represents the request body for a role change
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user moderator admin"`
}

// CreatorResponse represents a creator in API responses
type CreatorResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
	Products  []string `json:"products,omitempty"`
}

func creatorToResponse(creator *aggregates.Creator) CreatorResponse {
	resp := CreatorResponse{
		ID:        creator.ID().String(),
		Name:      creator.Name(),
		Role:      creator.Role().String(),
		CreatedAt: formatTime(creator.CreatedAt()),
		UpdatedAt: formatTime(creator.UpdatedAt()),
	}

	for _, productID := range creator.Products() {
		resp.Products = append(resp.Products, productID.String())
	}

	return resp
}

// CreateCreator handles POST /creators
func (h *CreatorHandler) CreateCreator(w http.ResponseWriter, r *http.Request) {
	var req CreateCreatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	id := valueobjects.NewCreatorID()

	var creator *aggregates.Creator
	var err error
	if req.Role != "" {
		var role valueobjects.Role
		role, err = valueobjects.ParseRole(req.Role)
		if err != nil {
			respondError(h.logger, w, err)
			return
		}
		creator, err = h.controller.CreateNewCreatorWithRole(r.Context(), id, req.Name, role)
	} else {
		creator, err = h.controller.CreateNewCreator(r.Context(), id, req.Name)
	}
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	h.collector.CreatorsCreated.Inc()
	respondJSON(h.logger, w, http.StatusCreated, creatorToResponse(creator))
}

// GetCreator handles GET /creators/{creatorID}
func (h *CreatorHandler) GetCreator(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCreatorID(chi.URLParam(r, "creatorID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	creator, err := h.controller.GetCreator(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, creatorToResponse(creator))
}

// ListCreators handles GET /creators
func (h *CreatorHandler) ListCreators(w http.ResponseWriter, r *http.Request) {
	creators, err := h.controller.GetCreators(r.Context())
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	responses := make([]CreatorResponse, 0, len(creators))
	for _, creator := range creators {
		responses = append(responses, creatorToResponse(creator))
	}
	if limit := h.limits.ListingPageSize(); limit > 0 && len(responses) > limit {
		responses = responses[:limit]
	}

	respondJSON(h.logger, w, http.StatusOK, responses)
}

// RenameCreator handles PUT /creators/{creatorID}/name
func (h *CreatorHandler) RenameCreator(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCreatorID(chi.URLParam(r, "creatorID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req RenameCreatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	changed, err := h.controller.ChangeCreatorName(r.Context(), id, req.Name)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}

// ChangeRole handles PUT /creators/{creatorID}/role
func (h *CreatorHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCreatorID(chi.URLParam(r, "creatorID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	role, err := valueobjects.ParseRole(req.Role)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	changed, err := h.controller.ChangeCreatorRole(r.Context(), id, role)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}
