package models

import "time"

type OrderStatus string
type PaymentMode string

const (
	OrderStatusPlaced     OrderStatus = "Placed"     // created at checkout
	OrderStatusDispatched OrderStatus = "Dispatched" // vendor marked as shipped
	OrderStatusCompleted  OrderStatus = "Completed"  // buyer confirmed receipt (terminal)
	OrderStatusCancelled  OrderStatus = "Cancelled"  // buyer cancelled before dispatch (terminal)

	PaymentCashOnDelivery PaymentMode = "Cash on Delivery"
	PaymentOnline         PaymentMode = "Online"
)

// CanTransitionTo reports whether an order in status s may move to target.
// The machine is linear: Placed -> Dispatched -> {Completed | Cancelled},
// with Placed -> Cancelled as the only shortcut. Terminal states never move.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch target {
	case OrderStatusDispatched:
		return s == OrderStatusPlaced
	case OrderStatusCompleted:
		return s == OrderStatusDispatched
	case OrderStatusCancelled:
		return s == OrderStatusPlaced
	default:
		return false
	}
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID      string      `gorm:"index;not null" json:"user_id"`
	User        *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VendorID    string      `gorm:"index;not null" json:"vendor_id"`
	Vendor      *Vendor     `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`
	PaymentMode PaymentMode `gorm:"type:VARCHAR(20);not null" json:"payment_mode"`
	Address     Address     `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'Placed'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"index" json:"order_id"`
	ProductID uint     `json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
}

// Address is the shipping address snapshot embedded in an order.
type Address struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Landmark   string `json:"landmark" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}
