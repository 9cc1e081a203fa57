package models

import "time"

// Store is unique per vendor; the uniqueIndex on VendorID enforces it.
type Store struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID      string    `gorm:"uniqueIndex;not null" json:"vendor_id"`
	StoreName     string    `gorm:"not null" json:"store_name"`
	StoreAddress  string    `gorm:"not null" json:"store_address"`
	StoreOwner    string    `gorm:"not null" json:"store_owner"`
	ContactNumber string    `gorm:"not null" json:"contact_number"`
	StoreEmail    string    `gorm:"not null" json:"store_email"`
	Images        []string  `gorm:"serializer:json" json:"images"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
