package orderControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

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
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, vendorID string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		VendorID:    vendorID,
		StoreID:     1,
		Name:        "Vitamin C 1000mg",
		Description: "Immunity supplement",
		Price:       price,
		Stock:       50,
		Category:    "Supplements",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func testAddress() models.Address {
	return models.Address{
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Street:     "12 MG Road",
		City:       "Pune",
		State:      "MH",
		PostalCode: "411001",
		Country:    "India",
		Landmark:   "Opposite City Mall",
		Phone:      "9876543210",
	}
}

func TestPlaceOrderComputesTotalFromPrices(t *testing.T) {
	db := setupTestDB(t)
	p1 := seedProduct(t, db, "vendor-1", 10.0)
	p2 := seedProduct(t, db, "vendor-1", 5.5)

	order, err := placeOrder(db, "user-1", []OrderProductInput{
		{ProductID: p1.ID, Quantity: 2},
		{ProductID: p2.ID, Quantity: 1},
	}, testAddress(), models.PaymentCashOnDelivery)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, "vendor-1", order.VendorID)
	assert.InDelta(t, 25.5, order.TotalAmount, 1e-9)
	assert.NotEmpty(t, order.OrderRef)
	assert.Len(t, order.Items, 2)
}

func TestPlaceOrderRejectsMixedVendors(t *testing.T) {
	db := setupTestDB(t)
	p1 := seedProduct(t, db, "vendor-1", 10.0)
	p2 := seedProduct(t, db, "vendor-2", 5.0)

	_, err := placeOrder(db, "user-1", []OrderProductInput{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: 1},
	}, testAddress(), models.PaymentOnline)
	require.ErrorIs(t, err, errVendorMismatch)

	// The transaction rolled back, nothing was persisted.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderRejectsEmptyOrder(t *testing.T) {
	db := setupTestDB(t)

	_, err := placeOrder(db, "user-1", nil, testAddress(), models.PaymentCashOnDelivery)
	assert.ErrorIs(t, err, errEmptyOrder)
}

func TestPlaceOrderRejectsBadQuantity(t *testing.T) {
	db := setupTestDB(t)
	p1 := seedProduct(t, db, "vendor-1", 10.0)

	_, err := placeOrder(db, "user-1", []OrderProductInput{
		{ProductID: p1.ID, Quantity: 0},
	}, testAddress(), models.PaymentCashOnDelivery)
	assert.ErrorIs(t, err, errBadQuantity)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := placeOrder(db, "user-1", []OrderProductInput{
		{ProductID: 404, Quantity: 1},
	}, testAddress(), models.PaymentCashOnDelivery)

	var notFound *productNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.EqualValues(t, 404, notFound.ProductID)
	assert.Equal(t, "product not found with ID: 404", notFound.Error())
}

func TestNormalizeOrderProductsAcceptsSingleObject(t *testing.T) {
	items, err := normalizeOrderProducts(json.RawMessage(`{"product_id": 7, "quantity": 3}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 7, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestNormalizeOrderProductsAcceptsArray(t *testing.T) {
	items, err := normalizeOrderProducts(json.RawMessage(`[{"product_id": 1, "quantity": 1}, {"product_id": 2, "quantity": 4}]`))
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestNormalizeOrderProductsRejectsGarbage(t *testing.T) {
	_, err := normalizeOrderProducts(json.RawMessage(`"not products"`))
	assert.Error(t, err)
}

func TestMapPaymentMode(t *testing.T) {
	mode, err := mapPaymentMode("Cash on Delivery")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCashOnDelivery, mode)

	mode, err = mapPaymentMode("Online")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentOnline, mode)

	_, err = mapPaymentMode("Barter")
	assert.Error(t, err)
}
