package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "Abc123456"

// testEnv wires the full stack over an in-memory sqlite database so
// handler tests exercise real routing, middleware and persistence.
type testEnv struct {
	app         *fiber.App
	db          *gorm.DB
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	auth        *services.AuthService
	products    *services.ProductService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.ProductImage{}))

	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	productService := services.NewProductService(productRepo, nil)
	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	seedService := services.NewSeedService(productService, userRepo)

	authRequired := middleware.AuthRequired(authService, userRepo)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)

	app := fiber.New()
	api := app.Group("/api")
	handlers.NewAuthHandler(authService).RegisterRoutes(api, authRequired)
	handlers.NewProductHandler(productService).RegisterRoutes(api, authRequired, adminOnly)
	handlers.NewSeedHandler(seedService).RegisterRoutes(api)
	handlers.NewFilesHandler(t.TempDir()).RegisterRoutes(api)

	return &testEnv{
		app:         app,
		db:          db,
		userRepo:    userRepo,
		productRepo: productRepo,
		auth:        authService,
		products:    productService,
	}
}

// createUser persists a user with the shared test password and returns the
// user together with a valid token for them.
func (e *testEnv) createUser(t *testing.T, email string, roles ...string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Email:    email,
		Password: string(hashed),
		FullName: "Test " + email,
		IsActive: true,
		Roles:    roles,
	}
	require.NoError(t, e.userRepo.Create(user))

	token, err := e.auth.CheckAuthStatus(user)
	require.NoError(t, err)
	return user, token
}

// request performs an HTTP request against the test app and decodes the
// JSON response body into a generic map.
func (e *testEnv) request(t *testing.T, method, target, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// requestList is request for endpoints that respond with a JSON array.
func (e *testEnv) requestList(t *testing.T, target string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func imageURLsFromBody(body map[string]any) []string {
	rawImages, _ := body["images"].([]any)
	urls := make([]string, 0, len(rawImages))
	for _, ri := range rawImages {
		img, _ := ri.(map[string]any)
		if url, ok := img["url"].(string); ok {
			urls = append(urls, url)
		}
	}
	return urls
}
