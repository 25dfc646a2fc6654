package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-backend/application/controllers"
	"catalog-backend/domain/factories"
	"catalog-backend/infrastructure/config"
	"catalog-backend/infrastructure/messaging"
	"catalog-backend/infrastructure/persistence/memory"
	"catalog-backend/interfaces/http/rest"
	"catalog-backend/interfaces/http/rest/handlers"
	"catalog-backend/pkg/observability"
)

func newTestServer(t *testing.T, limits handlers.ListingLimits) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	collector := observability.NewCollector("catalog")

	store := memory.NewStore()
	categories := memory.NewCategoryRepository(store)
	creators := memory.NewCreatorRepository(store)
	products := memory.NewProductRepository(store)

	emitter := messaging.NewInMemoryEmitter(1024, logger)
	dispatcher := messaging.NewDispatcher(emitter, logger)

	categoryController := controllers.NewCategoryDomainController(
		categories, factories.NewCategoryFactory(emitter), emitter, dispatcher, logger)
	creatorController := controllers.NewCreatorDomainController(
		creators, factories.NewCreatorFactory(emitter), emitter, dispatcher, logger)
	productController := controllers.NewProductDomainController(
		products, categories, creators, factories.NewProductFactory(emitter), emitter, dispatcher, logger)

	router := rest.NewRouter(
		handlers.NewCategoryHandler(categoryController, collector, limits, logger),
		handlers.NewCreatorHandler(creatorController, collector, limits, logger),
		handlers.NewProductHandler(productController, collector, limits, logger),
		collector, logger, false, false,
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func defaultLimits() handlers.ListingLimits {
	return config.StaticLimits{Limits: config.DefaultDynamicConfig().Limits}
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp, decoded
}

func createCreator(t *testing.T, server *httptest.Server, name string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/creators",
		map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func TestCategoryLifecycle(t *testing.T) {
	server := newTestServer(t, defaultLimits())

	resp, created := doJSON(t, http.MethodPost, server.URL+"/api/v1/categories",
		map[string]string{"name": "Electronics", "description": "Gadgets and electronic devices"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Electronics", created["name"])
	assert.Equal(t, "Gadgets and electronic devices", created["description"])
	assert.NotEmpty(t, created["createdAt"])

	id := created["id"].(string)

	resp, fetched := doJSON(t, http.MethodGet, server.URL+"/api/v1/categories/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Electronics", fetched["name"])

	resp, renamed := doJSON(t, http.MethodPut, server.URL+"/api/v1/categories/"+id+"/name",
		map[string]string{"name": "Home Electronics"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, renamed["updated"])

	// Same name again, case-insensitively, is a no-op.
	resp, renamed = doJSON(t, http.MethodPut, server.URL+"/api/v1/categories/"+id+"/name",
		map[string]string{"name": "HOME ELECTRONICS"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, renamed["updated"])

	resp, _ = doJSON(t, http.MethodDelete, server.URL+"/api/v1/categories/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/v1/categories/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoryValidationErrors(t *testing.T) {
	server := newTestServer(t, defaultLimits())

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/categories",
		map[string]string{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/categories",
		map[string]string{"name": "ab"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CATEGORY_NAME_TOO_SHORT", body["code"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/v1/categories/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_CATEGORY_ID", body["code"])
}

func TestProductAssignmentFlow(t *testing.T) {
	server := newTestServer(t, defaultLimits())

	creatorID := createCreator(t, server, "Alice")

	resp, category := doJSON(t, http.MethodPost, server.URL+"/api/v1/categories",
		map[string]string{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	categoryID := category["id"].(string)

	resp, product := doJSON(t, http.MethodPost, server.URL+"/api/v1/products",
		map[string]string{"creatorId": creatorID, "name": "Widget", "producer": "Acme Corp"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := product["id"].(string)

	assignURL := fmt.Sprintf("%s/api/v1/products/%s/categories/%s", server.URL, productID, categoryID)

	resp, link := doJSON(t, http.MethodPost, assignURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, productID, link["productId"])
	assert.Equal(t, categoryID, link["categoryId"])

	// Assigning the same category twice is a conflict.
	resp, body := doJSON(t, http.MethodPost, assignURL, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "PRODUCT_ALREADY_ASSIGNED_TO_CATEGORY", body["code"])

	resp, fetched := doJSON(t, http.MethodGet, server.URL+"/api/v1/products/"+productID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, fetched["categories"], 1)

	resp, _ = doJSON(t, http.MethodDelete, assignURL, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Nothing left to deallocate.
	resp, body = doJSON(t, http.MethodDelete,
		fmt.Sprintf("%s/api/v1/products/%s/categories", server.URL, productID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_WITH_ASSIGNED_CATEGORIES_NOT_FOUND", body["code"])
}

func TestRenameKeepsCategoryAssignments(t *testing.T) {
	server := newTestServer(t, defaultLimits())

	creatorID := createCreator(t, server, "Alice")

	resp, category := doJSON(t, http.MethodPost, server.URL+"/api/v1/categories",
		map[string]string{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	categoryID := category["id"].(string)

	resp, product := doJSON(t, http.MethodPost, server.URL+"/api/v1/products",
		map[string]string{"creatorId": creatorID, "name": "Widget", "producer": "Acme Corp"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := product["id"].(string)

	resp, _ = doJSON(t, http.MethodPost,
		fmt.Sprintf("%s/api/v1/products/%s/categories/%s", server.URL, productID, categoryID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, renamed := doJSON(t, http.MethodPut, server.URL+"/api/v1/products/"+productID+"/name",
		map[string]string{"name": "Sledgehammer"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, renamed["updated"])

	resp, fetched := doJSON(t, http.MethodGet, server.URL+"/api/v1/products/"+productID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sledgehammer", fetched["name"])
	require.Len(t, fetched["categories"], 1)
}

type fixedPageSize int

func (s fixedPageSize) ListingPageSize() int { return int(s) }

func TestListCategoriesHonorsPageSize(t *testing.T) {
	server := newTestServer(t, fixedPageSize(2))

	for _, name := range []string{"Electronics", "Hardware", "Garden Tools"} {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/categories",
			map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/categories", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.Len(t, listed, 2)
}

func TestProductRequiresExistingCreator(t *testing.T) {
	server := newTestServer(t, defaultLimits())

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/products",
		map[string]string{
			"creatorId": "8a2b6a48-3c7e-4f4e-9b3c-0dd7a4f0f6a1",
			"name":      "Widget",
			"producer":  "Acme Corp",
		})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CREATOR_NOT_FOUND", body["code"])
}

func TestCreatorRoleChange(t *testing.T) {
	server := newTestServer(t, defaultLimits())

	creatorID := createCreator(t, server, "Alice")

	resp, changed := doJSON(t, http.MethodPut, server.URL+"/api/v1/creators/"+creatorID+"/role",
		map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, changed["updated"])

	// Same role again is a no-op.
	resp, changed = doJSON(t, http.MethodPut, server.URL+"/api/v1/creators/"+creatorID+"/role",
		map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, changed["updated"])

	resp, _ = doJSON(t, http.MethodPut, server.URL+"/api/v1/creators/"+creatorID+"/role",
		map[string]string{"role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t, defaultLimits())

	resp, body := doJSON(t, http.MethodGet, server.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/ready", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])
}
