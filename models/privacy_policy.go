package models

import "time"

// PrivacyPolicy is a singleton document; the first GET seeds a default row.
type PrivacyPolicy struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"not null" json:"content"`
	LastUpdated time.Time `json:"last_updated"`
}
