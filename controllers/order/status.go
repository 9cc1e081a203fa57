package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DispatchOrderRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// transitionStatus applies a guarded status change as a conditional update on
// (id, current status), so a concurrent transition cannot skip the guard.
func transitionStatus(db *gorm.DB, order *models.Order, target models.OrderStatus) error {
	if !order.Status.CanTransitionTo(target) {
		return errInvalidTransition(order.Status, target)
	}
	result := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", target)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Status moved underneath us; re-read so the error names the real state.
		_ = db.First(order, order.ID).Error
		return errInvalidTransition(order.Status, target)
	}
	order.Status = target
	return nil
}

type invalidTransitionError struct {
	From, To models.OrderStatus
}

func (e *invalidTransitionError) Error() string {
	switch {
	case e.To == models.OrderStatusCancelled && e.From == models.OrderStatusDispatched:
		return "cannot cancel order after dispatch"
	case e.To == models.OrderStatusCompleted && e.From != models.OrderStatusDispatched:
		return "cannot complete order before dispatch"
	case e.To == models.OrderStatusDispatched:
		return "only placed orders can be dispatched"
	default:
		return "order is already " + strings.ToLower(string(e.From))
	}
}

func errInvalidTransition(from, to models.OrderStatus) error {
	return &invalidTransitionError{From: from, To: to}
}

// PUT /user/orders/:orderID/status
//
// Buyers may only confirm (Completed) or cancel (Cancelled) their own orders.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		target, err := mapOrderStatus(req.Status)
		if err != nil || (target != models.OrderStatusCompleted && target != models.OrderStatusCancelled) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := transitionStatus(db, &order, target); err != nil {
			var invalid *invalidTransitionError
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order " + strings.ToLower(string(target))})
	}
}

// POST /vendor/orders/dispatch
//
// Only the owning vendor may dispatch, and only from Placed.
func DispatchOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		vendorID := vendorIDVal.(string)

		var req DispatchOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_id is required"})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND vendor_id = ?", req.OrderID, vendorID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if err := transitionStatus(db, &order, models.OrderStatusDispatched); err != nil {
			var invalid *invalidTransitionError
			if errors.As(err, &invalid) {
				c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dispatch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order dispatched successfully",
			"order":   gin.H{"id": order.ID, "status": order.Status},
		})
	}
}

// GET /vendor/orders
func GetVendorOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		vendorID := vendorIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("vendor_id = ?", vendorID).
			Preload("Items.Product").
			Preload("User").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
