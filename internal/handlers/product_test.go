// internal/handlers/product_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/catalog-backend/internal/config"
	"github.com/javajoker/catalog-backend/internal/middleware"
	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/utils"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	engine *gin.Engine
	token  string
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)

	sqlDB, err := db.DB()
	require.NoError(suite.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(suite.T(), db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
	))
	suite.db = db

	testLogger := logrus.New()
	testLogger.SetOutput(io.Discard)

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "handler-test-secret",
			AccessTokenTTL: 2,
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	catalogService := services.NewCatalogService(db, repository.NewProductRepository(db), testLogger)
	authService := services.NewAuthService(db, cfg, testLogger)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(catalogService)

	// Same route shape as the production router, minus rate limiting.
	engine := gin.New()
	v1 := engine.Group("/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/check-status", middleware.AuthRequired(db), authHandler.CheckStatus)

	products := v1.Group("/products")
	products.GET("", productHandler.GetProducts)
	products.GET("/:term", productHandler.GetProduct)
	protected := products.Group("")
	protected.Use(middleware.AuthRequired(db))
	protected.POST("", productHandler.CreateProduct)
	protected.PATCH("/:term", productHandler.UpdateProduct)
	protected.DELETE("/:term", productHandler.DeleteProduct)

	suite.engine = engine

	resp, err := authService.Register(&services.RegisterRequest{
		Email:    "api@example.com",
		Password: "ApiTest123",
		FullName: "API Tester",
	})
	require.NoError(suite.T(), err)
	suite.token = resp.Token
}

func (suite *ProductHandlerTestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.engine.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *ProductHandlerTestSuite) createProduct(payload gin.H) map[string]interface{} {
	w := suite.request(http.MethodPost, "/v1/products", payload, suite.token)
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	body := suite.decode(w)
	data := body["data"].(map[string]interface{})
	return data["product"].(map[string]interface{})
}

func (suite *ProductHandlerTestSuite) TestListProductsEmpty() {
	w := suite.request(http.MethodGet, "/v1/products", nil, "")
	require.Equal(suite.T(), http.StatusOK, w.Code)

	body := suite.decode(w)
	assert.Equal(suite.T(), true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Empty(suite.T(), data["products"])
}

func (suite *ProductHandlerTestSuite) TestCreateRequiresAuth() {
	w := suite.request(http.MethodPost, "/v1/products", gin.H{"title": "Nope"}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ProductHandlerTestSuite) TestCreateAndFetchByTerm() {
	created := suite.createProduct(gin.H{
		"title":  "Handler Shirt",
		"price":  20,
		"images": []string{"a.jpg", "b.jpg"},
	})
	assert.Equal(suite.T(), "handler_shirt", created["slug"])

	for _, term := range []string{created["id"].(string), "handler_shirt", "Handler Shirt"} {
		w := suite.request(http.MethodGet, "/v1/products/"+url.PathEscape(term), nil, "")
		require.Equal(suite.T(), http.StatusOK, w.Code, "term %q", term)

		body := suite.decode(w)
		product := body["data"].(map[string]interface{})["product"].(map[string]interface{})
		assert.Equal(suite.T(), created["id"], product["id"], "term %q", term)
		assert.Equal(suite.T(), []interface{}{"a.jpg", "b.jpg"}, product["images"])
	}
}

func (suite *ProductHandlerTestSuite) TestGetUnknownTermNotFound() {
	w := suite.request(http.MethodGet, "/v1/products/no-such-thing", nil, "")
	require.Equal(suite.T(), http.StatusNotFound, w.Code)

	body := suite.decode(w)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(suite.T(), "NOT_FOUND", errBody["code"])
}

func (suite *ProductHandlerTestSuite) TestCreateMissingTitleRejected() {
	w := suite.request(http.MethodPost, "/v1/products", gin.H{"price": 10}, suite.token)
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body := suite.decode(w)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(suite.T(), "VALIDATION_ERROR", errBody["code"])
}

func (suite *ProductHandlerTestSuite) TestCreateDuplicateTitleConflict() {
	suite.createProduct(gin.H{"title": "Unique Shirt", "price": 10})

	w := suite.request(http.MethodPost, "/v1/products", gin.H{
		"title": "Unique Shirt",
		"slug":  "another-slug",
		"price": 12,
	}, suite.token)
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	body := suite.decode(w)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(suite.T(), "BAD_REQUEST", errBody["code"])
	assert.NotEmpty(suite.T(), errBody["message"])
}

func (suite *ProductHandlerTestSuite) TestUpdateProduct() {
	created := suite.createProduct(gin.H{
		"title":  "Patchable Shirt",
		"price":  10,
		"images": []string{"old.jpg"},
	})

	w := suite.request(http.MethodPatch, "/v1/products/"+created["id"].(string), gin.H{
		"price":  15,
		"images": []string{"new.jpg"},
	}, suite.token)
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	body := suite.decode(w)
	product := body["data"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(suite.T(), 15.0, product["price"])
	assert.Equal(suite.T(), []interface{}{"new.jpg"}, product["images"])
}

func (suite *ProductHandlerTestSuite) TestUpdateRejectsNonIDTerm() {
	suite.createProduct(gin.H{"title": "Sluggish", "slug": "sluggish", "price": 1})

	w := suite.request(http.MethodPatch, "/v1/products/sluggish", gin.H{"price": 2}, suite.token)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestDeleteProduct() {
	created := suite.createProduct(gin.H{"title": "Deletable", "price": 5})
	id := created["id"].(string)

	w := suite.request(http.MethodDelete, "/v1/products/"+id, nil, suite.token)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/v1/products/"+id, nil, "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProductHandlerTestSuite) TestCheckStatus() {
	w := suite.request(http.MethodGet, "/v1/auth/check-status", nil, suite.token)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	body := suite.decode(w)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["token"])
}

func (suite *ProductHandlerTestSuite) TestCheckStatusWithoutToken() {
	w := suite.request(http.MethodGet, "/v1/auth/check-status", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
