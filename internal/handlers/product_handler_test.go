package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"tienda/internal/models"
	"tienda/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProductPayload(title string, images ...string) map[string]any {
	return map[string]any{
		"title":  title,
		"price":  30,
		"sizes":  []string{"S", "M"},
		"gender": "women",
		"images": images,
	}
}

func TestProductHandler_CreateRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.createUser(t, "cliente@tienda.com", models.RoleUser)

	payload := createProductPayload("Guarded Product")

	status, _ := env.request(t, http.MethodPost, "/api/products", "", payload)
	assert.Equal(t, http.StatusUnauthorized, status, "anonymous callers are rejected")

	status, _ = env.request(t, http.MethodPost, "/api/products", userToken, payload)
	assert.Equal(t, http.StatusForbidden, status, "non-admin callers are rejected")
}

func TestProductHandler_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	admin, adminToken := env.createUser(t, "admin@tienda.com", models.RoleAdmin, models.RoleUser)

	status, body := env.request(t, http.MethodPost, "/api/products", adminToken,
		createProductPayload("Women's Strap Tee", "url-1.jpg", "url-2.jpg"))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "womens-strap-tee", body["slug"])
	assert.Equal(t, []string{"url-1.jpg", "url-2.jpg"}, imageURLsFromBody(body))

	owner, ok := body["user"].(map[string]any)
	require.True(t, ok, "the created product carries its owning user")
	assert.Equal(t, admin.ID, owner["id"])
	assert.NotContains(t, owner, "password")

	// Lookup by slug (any casing) and by id resolve the same product.
	id, _ := body["id"].(string)
	for _, term := range []string{"womens-strap-tee", "WOMENS-STRAP-TEE", id} {
		status, fetched := env.request(t, http.MethodGet, "/api/products/"+term, "", nil)
		require.Equal(t, http.StatusOK, status, "lookup by %q", term)
		assert.Equal(t, id, fetched["id"])
	}
}

func TestProductHandler_CreateDuplicateTitle(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin@tienda.com", models.RoleAdmin)

	status, _ := env.request(t, http.MethodPost, "/api/products", adminToken,
		createProductPayload("Twice Told"))
	require.Equal(t, http.StatusCreated, status)

	status, _ = env.request(t, http.MethodPost, "/api/products", adminToken,
		createProductPayload("Twice Told"))
	assert.Equal(t, http.StatusConflict, status)
}

func TestProductHandler_CreateRejectsBadGender(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin@tienda.com", models.RoleAdmin)

	payload := createProductPayload("Bad Gender")
	payload["gender"] = "robot"

	status, _ := env.request(t, http.MethodPost, "/api/products", adminToken, payload)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProductHandler_GetMissing(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, http.MethodGet,
		"/api/products/0614e8bd-492f-4e4e-8927-adc24402bac4", "", nil)
	assert.Equal(t, http.StatusNotFound, status, "a well-formed but unknown UUID is NotFound")

	status, _ = env.request(t, http.MethodGet, "/api/products/no-such-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProductHandler_ListPagination(t *testing.T) {
	env := newTestEnv(t)

	for i := 1; i <= 5; i++ {
		_, err := env.products.CreateProduct(services.CreateProductInput{
			Title:  fmt.Sprintf("Product %d", i),
			Sizes:  []string{"M"},
			Gender: "men",
		}, nil)
		require.NoError(t, err)
	}

	status, page := env.requestList(t, "/api/products?limit=2&offset=1")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, page, 2)
	assert.Equal(t, "Product 2", page[0]["title"])
	assert.Equal(t, "Product 3", page[1]["title"])

	status, all := env.requestList(t, "/api/products")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, all, 5, "the default window covers all five products")

	status, _ = env.requestList(t, "/api/products?limit=-1")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProductHandler_UpdateReplacesImages(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin@tienda.com", models.RoleAdmin)

	status, created := env.request(t, http.MethodPost, "/api/products", adminToken,
		createProductPayload("Mutable", "url-x.jpg", "url-y.jpg"))
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["id"].(string)

	status, updated := env.request(t, http.MethodPatch, "/api/products/"+id, adminToken,
		map[string]any{"images": []string{"url-a.jpg"}})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"url-a.jpg"}, imageURLsFromBody(updated))

	status, fetched := env.request(t, http.MethodGet, "/api/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"url-a.jpg"}, imageURLsFromBody(fetched), "replacement is fully persisted")
}

func TestProductHandler_UpdateWithoutImagesKeepsThem(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin@tienda.com", models.RoleAdmin)

	status, created := env.request(t, http.MethodPost, "/api/products", adminToken,
		createProductPayload("Stable Images", "url-x.jpg", "url-y.jpg"))
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["id"].(string)

	status, updated := env.request(t, http.MethodPatch, "/api/products/"+id, adminToken,
		map[string]any{"title": "Stable Images Renamed"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Stable Images Renamed", updated["title"])
	assert.Equal(t, "stable-images", updated["slug"], "the existing slug is kept when none is supplied")
	assert.Equal(t, []string{"url-x.jpg", "url-y.jpg"}, imageURLsFromBody(updated))
}

func TestProductHandler_UpdateMissingAndMalformed(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin@tienda.com", models.RoleAdmin)

	status, _ := env.request(t, http.MethodPatch,
		"/api/products/0614e8bd-492f-4e4e-8927-adc24402bac4", adminToken,
		map[string]any{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.request(t, http.MethodPatch, "/api/products/not-a-uuid", adminToken,
		map[string]any{"title": "Ghost"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProductHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin@tienda.com", models.RoleAdmin)

	status, created := env.request(t, http.MethodPost, "/api/products", adminToken,
		createProductPayload("Short Lived", "url-1.jpg"))
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["id"].(string)

	status, _ = env.request(t, http.MethodDelete, "/api/products/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = env.request(t, http.MethodGet, "/api/products/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.request(t, http.MethodDelete, "/api/products/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSeedHandler_RunSeed(t *testing.T) {
	env := newTestEnv(t)

	// Pre-existing data is wiped by the seeder.
	env.createUser(t, "stale@tienda.com", models.RoleUser)
	_, err := env.products.CreateProduct(services.CreateProductInput{
		Title: "Stale Product", Sizes: []string{"M"}, Gender: "men",
	}, nil)
	require.NoError(t, err)

	status, body := env.request(t, http.MethodGet, "/api/seed", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "SEED EXECUTED", body["message"])

	status, products := env.requestList(t, "/api/products?limit=50")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEqual(t, "Stale Product", p["title"])
	}

	// Seeded admin credentials work and the stale user is gone.
	status, _ = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "admin@tienda.com",
		"password": "Abc123456",
	})
	assert.Equal(t, http.StatusOK, status)

	status, _ = env.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "stale@tienda.com",
		"password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}
