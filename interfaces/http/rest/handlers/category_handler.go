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

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	controller *controllers.CategoryDomainController
	collector  *observability.Collector
	limits     ListingLimits
	logger     *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	controller *controllers.CategoryDomainController,
	collector *observability.Collector,
	limits ListingLimits,
	logger *zap.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		controller: controller,
		collector:  collector,
		limits:     limits,
		logger:     logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// RenameCategoryRequest represents the request body for renaming a category
type RenameCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ChangeDescriptionRequest represents the request body for a description change
type ChangeDescriptionRequest struct {
	Description string `json:"description" validate:"required"`
}

// UploadIconRequest represents the request body for uploading an icon
type UploadIconRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	URL  string `json:"url" validate:"required,url,max=500"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Icon        *PictureResponse `json:"icon,omitempty"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
	Products    []LinkResponse   `json:"products,omitempty"`
}

func categoryToResponse(category *aggregates.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          category.ID().String(),
		Name:        category.Name(),
		Description: category.Description(),
		CreatedAt:   formatTime(category.CreatedAt()),
		UpdatedAt:   formatTime(category.UpdatedAt()),
	}

	if icon := category.Icon(); !icon.IsEmpty() {
		resp.Icon = &PictureResponse{Name: icon.Name(), URL: icon.URL()}
	}

	for _, link := range category.ProductCategories() {
		resp.Products = append(resp.Products, LinkResponse{
			ProductID:  link.FirstKey().String(),
			CategoryID: link.SecondKey().String(),
		})
	}

	return resp
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	id := valueobjects.NewCategoryID()

	var category *aggregates.Category
	var err error
	if req.Description != "" {
		category, err = h.controller.CreateNewCategoryWithDescription(r.Context(), id, req.Name, req.Description)
	} else {
		category, err = h.controller.CreateNewCategory(r.Context(), id, req.Name)
	}
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	h.collector.CategoriesCreated.Inc()
	respondJSON(h.logger, w, http.StatusCreated, categoryToResponse(category))
}

// GetCategory handles GET /categories/{categoryID}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCategoryID(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	category, err := h.controller.GetCategory(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, categoryToResponse(category))
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.controller.GetCategories(r.Context())
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, categoryToResponse(category))
	}
	if limit := h.limits.ListingPageSize(); limit > 0 && len(responses) > limit {
		responses = responses[:limit]
	}

	respondJSON(h.logger, w, http.StatusOK, responses)
}

// RenameCategory handles PUT /categories/{categoryID}/name
func (h *CategoryHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCategoryID(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req RenameCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	changed, err := h.controller.ChangeCategoryName(r.Context(), id, req.Name)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}

// ChangeDescription handles PUT /categories/{categoryID}/description
func (h *CategoryHandler) ChangeDescription(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCategoryID(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req ChangeDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	changed, err := h.controller.ChangeCategoryDescription(r.Context(), id, req.Description)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}

// UploadIcon handles PUT /categories/{categoryID}/icon
func (h *CategoryHandler) UploadIcon(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCategoryID(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req UploadIconRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	icon, err := valueobjects.NewPicture(req.Name, req.URL)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	changed, err := h.controller.UploadCategoryIcon(r.Context(), id, icon)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}

// DeleteCategory handles DELETE /categories/{categoryID}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseCategoryID(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	if err := h.controller.RemoveCategory(r.Context(), id); err != nil {
		respondError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
