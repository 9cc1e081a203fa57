package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID    string    `gorm:"index;not null" json:"vendor_id"`
	StoreID     uint      `gorm:"index;not null" json:"store_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `gorm:"index;not null" json:"category"`
	Brand       string    `json:"brand"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	IsFeatured  bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
