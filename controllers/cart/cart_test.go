package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/medimart-dev/marketplace-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

func newCartRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	withUser := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", models.RoleUser)
	}
	r.POST("/cart/add", withUser, AddToCart(db))
	r.POST("/cart/remove", withUser, RemoveFromCart(db))
	r.GET("/cart", withUser, GetUserCart(db))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProduct(t *testing.T, db *gorm.DB, vendorID string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		VendorID:    vendorID,
		StoreID:     1,
		Name:        "Paracetamol 500mg",
		Description: "Pain relief tablets",
		Price:       price,
		Stock:       100,
		Category:    "Medicine",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddToCartReplacesQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "vendor-1", 9.5)
	r := newCartRouter(db, "user-1")

	w := postJSON(t, r, "/cart/add", gin.H{"product_id": product.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	// Re-adding the same product replaces the quantity, it does not add up.
	w = postJSON(t, r, "/cart/add", gin.H{"product_id": product.ID, "quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, product.ID, items[0].ProductID)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := newCartRouter(db, "user-1")

	w := postJSON(t, r, "/cart/add", gin.H{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestAddToCartRejectsZeroQuantity(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "vendor-1", 4.0)
	r := newCartRouter(db, "user-1")

	w := postJSON(t, r, "/cart/add", gin.H{"product_id": product.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddToCartKeepsOtherItems(t *testing.T) {
	db := setupTestDB(t)
	p1 := seedProduct(t, db, "vendor-1", 9.5)
	p2 := seedProduct(t, db, "vendor-1", 3.0)
	r := newCartRouter(db, "user-1")

	require.Equal(t, http.StatusOK, postJSON(t, r, "/cart/add", gin.H{"product_id": p1.ID, "quantity": 1}).Code)
	require.Equal(t, http.StatusOK, postJSON(t, r, "/cart/add", gin.H{"product_id": p2.ID, "quantity": 3}).Code)
	require.Equal(t, http.StatusOK, postJSON(t, r, "/cart/add", gin.H{"product_id": p1.ID, "quantity": 4}).Code)

	var items []models.CartItem
	require.NoError(t, db.Order("product_id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity)
}

func TestGetUserCartNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newCartRouter(db, "user-1")

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "vendor-1", 2.0)
	r := newCartRouter(db, "user-1")

	require.Equal(t, http.StatusOK, postJSON(t, r, "/cart/add", gin.H{"product_id": product.ID, "quantity": 1}).Code)

	w := postJSON(t, r, "/cart/remove", gin.H{"product_id": product.ID})
	require.Equal(t, http.StatusOK, w.Code)

	// Removing an item that is no longer in the cart is still a success.
	w = postJSON(t, r, "/cart/remove", gin.H{"product_id": product.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRemoveFromCartWithoutCart(t *testing.T) {
	db := setupTestDB(t)
	r := newCartRouter(db, "user-1")

	w := postJSON(t, r, "/cart/remove", gin.H{"product_id": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "vendor-1", 2.0)

	alice := newCartRouter(db, "alice")
	bob := newCartRouter(db, "bob")

	require.Equal(t, http.StatusOK, postJSON(t, alice, "/cart/add", gin.H{"product_id": product.ID, "quantity": 2}).Code)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	bob.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
