package orderControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	// Accepts either a single {product_id, quantity} object or an array.
	Products    json.RawMessage `json:"products" binding:"required"`
	Address     models.Address  `json:"address" binding:"required"`
	PaymentMode string          `json:"payment_mode" binding:"required"`
	// Advisory only; the stored total is recomputed from resolved prices.
	TotalAmount float64 `json:"total_amount"`
}

type OrderProductInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// -------- Errors --------

var (
	errEmptyOrder     = errors.New("no products provided in the order")
	errBadQuantity    = errors.New("every order item needs a product_id and a quantity of at least 1")
	errVendorMismatch = errors.New("all products in a single order must belong to the same vendor")
)

type productNotFoundError struct {
	ProductID uint
}

func (e *productNotFoundError) Error() string {
	return fmt.Sprintf("product not found with ID: %d", e.ProductID)
}

// -------- Helpers --------

// normalizeOrderProducts turns the raw products payload into a slice,
// accepting a bare object as a one-element order.
func normalizeOrderProducts(raw json.RawMessage) ([]OrderProductInput, error) {
	var items []OrderProductInput
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var single OrderProductInput
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, errors.New("products must be an object or an array of objects")
	}
	return []OrderProductInput{single}, nil
}

func mapPaymentMode(mode string) (models.PaymentMode, error) {
	switch mode {
	case string(models.PaymentCashOnDelivery):
		return models.PaymentCashOnDelivery, nil
	case string(models.PaymentOnline):
		return models.PaymentOnline, nil
	default:
		return "", errors.New("invalid payment mode")
	}
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch status {
	case string(models.OrderStatusPlaced):
		return models.OrderStatusPlaced, nil
	case string(models.OrderStatusDispatched):
		return models.OrderStatusDispatched, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// generateOrderRef returns a unique, time-prefixed order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// placeOrder resolves every product, enforces the single-vendor rule and
// persists the order snapshot, all inside one transaction. The stored total
// is recomputed from resolved prices; the caller-sent total is ignored.
func placeOrder(db *gorm.DB, userID string, items []OrderProductInput, address models.Address, mode models.PaymentMode) (*models.Order, error) {
	if len(items) == 0 {
		return nil, errEmptyOrder
	}
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil, errBadQuantity
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var (
			vendorID   string
			total      float64
			orderItems []models.OrderItem
		)
		for _, item := range items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &productNotFoundError{ProductID: item.ProductID}
				}
				return err
			}

			if vendorID == "" {
				vendorID = product.VendorID
			} else if vendorID != product.VendorID {
				return errVendorMismatch
			}

			total += product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			VendorID:    vendorID,
			Items:       orderItems,
			TotalAmount: total,
			PaymentMode: mode,
			Address:     address,
			Status:      models.OrderStatusPlaced,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items, err := normalizeOrderProducts(req.Products)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		mode, err := mapPaymentMode(req.PaymentMode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := placeOrder(db, userID, items, req.Address, mode)
		if err != nil {
			var notFound *productNotFoundError
			switch {
			case errors.As(err, &notFound):
				c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			case errors.Is(err, errEmptyOrder), errors.Is(err, errBadQuantity), errors.Is(err, errVendorMismatch):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		var placed models.Order
		if err := db.Preload("Items.Product").Preload("User").First(&placed, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": placed})
	}
}

// GET /user/orders?status=
func GetUserOrdersByStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		query := db.Where("user_id = ?", userID)
		if statusParam := c.Query("status"); statusParam != "" {
			status, err := mapOrderStatus(statusParam)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /user/orders/:orderID
func GetUserOrderDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.
			Preload("Items.Product").
			Preload("User").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// GET /orders/:orderID
func GetOrderDetailsByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.
			Preload("Items.Product").
			Preload("User").
			Preload("Vendor").
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
