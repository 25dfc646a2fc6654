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

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	controller *controllers.ProductDomainController
	collector  *observability.Collector
	limits     ListingLimits
	logger     *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	controller *controllers.ProductDomainController,
	collector *observability.Collector,
	limits ListingLimits,
	logger *zap.Logger,
) *ProductHandler {
	return &ProductHandler{
		controller: controller,
		collector:  collector,
		limits:     limits,
		logger:     logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	CreatorID string                `json:"creatorId" validate:"required,uuid"`
	Name      string                `json:"name" validate:"required"`
	Producer  string                `json:"producer" validate:"required"`
	Picture   *UploadPictureRequest `json:"picture,omitempty"`
}

// RenameProductRequest represents the request body for renaming a product
type RenameProductRequest struct {
	Name string `json:"name" validate:"required"`
}

// ChangeProducerRequest represents the request body for a producer change
type ChangeProducerRequest struct {
	Producer string `json:"producer" validate:"required"`
}

// UploadPictureRequest represents the request body for uploading a picture
type UploadPictureRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	URL  string `json:"url" validate:"required,url,max=500"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID         string           `json:"id"`
	CreatorID  string           `json:"creatorId"`
	Name       string           `json:"name"`
	Producer   string           `json:"producer"`
	Picture    *PictureResponse `json:"picture,omitempty"`
	CreatedAt  string           `json:"createdAt"`
	UpdatedAt  string           `json:"updatedAt"`
	Categories []LinkResponse   `json:"categories,omitempty"`
}

func productToResponse(product *aggregates.Product) ProductResponse {
	resp := ProductResponse{
		ID:        product.ID().String(),
		CreatorID: product.CreatorID().String(),
		Name:      product.Name(),
		Producer:  product.Producer().Name(),
		CreatedAt: formatTime(product.CreatedAt()),
		UpdatedAt: formatTime(product.UpdatedAt()),
	}

	if picture := product.Picture(); !picture.IsEmpty() {
		resp.Picture = &PictureResponse{Name: picture.Name(), URL: picture.URL()}
	}

	for _, link := range product.ProductCategories() {
		resp.Categories = append(resp.Categories, LinkResponse{
			ProductID:  link.FirstKey().String(),
			CategoryID: link.SecondKey().String(),
		})
	}

	return resp
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	creatorID, err := valueobjects.ParseCreatorID(req.CreatorID)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	producer, err := valueobjects.NewProducer(req.Producer)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	id := valueobjects.NewProductID()

	var product *aggregates.Product
	if req.Picture != nil {
		var picture valueobjects.Picture
		picture, err = valueobjects.NewPicture(req.Picture.Name, req.Picture.URL)
		if err != nil {
			respondError(h.logger, w, err)
			return
		}
		product, err = h.controller.CreateNewProductWithPicture(r.Context(), id, creatorID, req.Name, producer, picture)
	} else {
		product, err = h.controller.CreateNewProduct(r.Context(), id, creatorID, req.Name, producer)
	}
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	h.collector.ProductsCreated.Inc()
	respondJSON(h.logger, w, http.StatusCreated, productToResponse(product))
}

// GetProduct handles GET /products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	product, err := h.controller.GetProduct(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, productToResponse(product))
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.controller.GetProducts(r.Context())
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, productToResponse(product))
	}
	if limit := h.limits.ListingPageSize(); limit > 0 && len(responses) > limit {
		responses = responses[:limit]
	}

	respondJSON(h.logger, w, http.StatusOK, responses)
}

// RenameProduct handles PUT /products/{productID}/name
func (h *ProductHandler) RenameProduct(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req RenameProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	changed, err := h.controller.ChangeProductName(r.Context(), id, req.Name)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}

// ChangeProducer handles PUT /products/{productID}/producer
func (h *ProductHandler) ChangeProducer(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req ChangeProducerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	producer, err := valueobjects.NewProducer(req.Producer)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	changed, err := h.controller.ChangeProductProducer(r.Context(), id, producer)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}

// UploadPicture handles PUT /products/{productID}/picture
func (h *ProductHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	var req UploadPictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(h.logger, w, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		respondBadRequest(h.logger, w, "Validation error: "+err.Error())
		return
	}

	picture, err := valueobjects.NewPicture(req.Name, req.URL)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	changed, err := h.controller.UploadProductPicture(r.Context(), id, picture)
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, UpdateResponse{ID: id.String(), Updated: changed})
}

// AssignCategory handles POST /products/{productID}/categories/{categoryID}
func (h *ProductHandler) AssignCategory(w http.ResponseWriter, r *http.Request) {
	productID, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	categoryID, err := valueobjects.ParseCategoryID(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	if err := h.controller.AssignProductToCategory(r.Context(), productID, categoryID); err != nil {
		respondError(h.logger, w, err)
		return
	}

	h.collector.ProductsAssigned.Inc()
	respondJSON(h.logger, w, http.StatusOK, LinkResponse{
		ProductID:  productID.String(),
		CategoryID: categoryID.String(),
	})
}

// DeallocateCategory handles DELETE /products/{productID}/categories/{categoryID}
func (h *ProductHandler) DeallocateCategory(w http.ResponseWriter, r *http.Request) {
	productID, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	categoryID, err := valueobjects.ParseCategoryID(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	if err := h.controller.DeallocateProductFromCategory(r.Context(), productID, categoryID); err != nil {
		respondError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeallocateAllCategories handles DELETE /products/{productID}/categories
func (h *ProductHandler) DeallocateAllCategories(w http.ResponseWriter, r *http.Request) {
	productID, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	if err := h.controller.DeallocateProductFromAllCategories(r.Context(), productID); err != nil {
		respondError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteProduct handles DELETE /products/{productID}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := valueobjects.ParseProductID(chi.URLParam(r, "productID"))
	if err != nil {
		respondError(h.logger, w, err)
		return
	}

	if err := h.controller.RemoveProduct(r.Context(), id); err != nil {
		respondError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
