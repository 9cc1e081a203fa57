package models

import "time"

// DoctorReview: one review per user per doctor.
type DoctorReview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DoctorID  string    `gorm:"uniqueIndex:idx_review_doctor_user;not null" json:"doctor_id"`
	UserID    string    `gorm:"uniqueIndex:idx_review_doctor_user;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating    int       `gorm:"not null" json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}
