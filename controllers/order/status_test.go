package orderControllers

import (
	"testing"

	"github.com/medimart-dev/marketplace-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) *models.Order {
	t.Helper()
	order := models.Order{
		OrderRef:    generateOrderRef(),
		UserID:      "user-1",
		VendorID:    "vendor-1",
		TotalAmount: 42,
		PaymentMode: models.PaymentCashOnDelivery,
		Address:     testAddress(),
		Status:      status,
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func currentStatus(t *testing.T, db *gorm.DB, id uint) models.OrderStatus {
	t.Helper()
	var order models.Order
	require.NoError(t, db.First(&order, id).Error)
	return order.Status
}

func TestDispatchThenComplete(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, models.OrderStatusPlaced)

	require.NoError(t, transitionStatus(db, order, models.OrderStatusDispatched))
	assert.Equal(t, models.OrderStatusDispatched, currentStatus(t, db, order.ID))

	require.NoError(t, transitionStatus(db, order, models.OrderStatusCompleted))
	assert.Equal(t, models.OrderStatusCompleted, currentStatus(t, db, order.ID))
}

func TestCancelBeforeDispatch(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, models.OrderStatusPlaced)

	require.NoError(t, transitionStatus(db, order, models.OrderStatusCancelled))
	assert.Equal(t, models.OrderStatusCancelled, currentStatus(t, db, order.ID))
}

func TestCannotCancelAfterDispatch(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, models.OrderStatusDispatched)

	err := transitionStatus(db, order, models.OrderStatusCancelled)
	require.Error(t, err)
	assert.Equal(t, "cannot cancel order after dispatch", err.Error())
	assert.Equal(t, models.OrderStatusDispatched, currentStatus(t, db, order.ID))
}

func TestCannotCompleteBeforeDispatch(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, models.OrderStatusPlaced)

	err := transitionStatus(db, order, models.OrderStatusCompleted)
	require.Error(t, err)
	assert.Equal(t, "cannot complete order before dispatch", err.Error())
}

func TestCannotDispatchTwice(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, models.OrderStatusPlaced)

	require.NoError(t, transitionStatus(db, order, models.OrderStatusDispatched))
	err := transitionStatus(db, order, models.OrderStatusDispatched)
	require.Error(t, err)
	assert.Equal(t, "only placed orders can be dispatched", err.Error())
}

func TestTerminalStatesNeverMove(t *testing.T) {
	db := setupTestDB(t)

	for _, terminal := range []models.OrderStatus{models.OrderStatusCompleted, models.OrderStatusCancelled} {
		order := seedOrder(t, db, terminal)
		for _, target := range []models.OrderStatus{
			models.OrderStatusPlaced,
			models.OrderStatusDispatched,
			models.OrderStatusCompleted,
			models.OrderStatusCancelled,
		} {
			err := transitionStatus(db, order, target)
			assert.Error(t, err, "expected %s -> %s to be rejected", terminal, target)
			assert.Equal(t, terminal, currentStatus(t, db, order.ID))
		}
	}
}

func TestStaleGuardDetectsConcurrentTransition(t *testing.T) {
	db := setupTestDB(t)
	order := seedOrder(t, db, models.OrderStatusPlaced)

	// Another request moved the order underneath this handler.
	stale := *order
	require.NoError(t, transitionStatus(db, order, models.OrderStatusDispatched))

	err := transitionStatus(db, &stale, models.OrderStatusCancelled)
	require.Error(t, err)
	assert.Equal(t, "cannot cancel order after dispatch", err.Error())
	assert.Equal(t, models.OrderStatusDispatched, currentStatus(t, db, order.ID))
}
