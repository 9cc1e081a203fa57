package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleDoctor Role = "doctor"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID             string `gorm:"primaryKey" json:"id"`
	Name           string `json:"name"`
	Email          string `gorm:"index" json:"email"`
	Phone          string `gorm:"uniqueIndex;not null" json:"phone"`
	Password       string `json:"-"`
	Role           Role   `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	ProfilePicture string `json:"profile_picture"`
	OTP            string `json:"-"`
	IsVerified     bool   `json:"is_verified"`

	// Present only for role == doctor.
	DoctorProfile *DoctorProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"doctor_profile,omitempty"`

	Wishlist []WishlistEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DoctorProfile carries the doctor-only capability fields so they never
// appear as nullable columns on plain users.
type DoctorProfile struct {
	ID              uint     `gorm:"primaryKey" json:"-"`
	UserID          string   `gorm:"uniqueIndex;not null" json:"-"`
	Education       string   `json:"education"`
	Experience      int      `json:"experience"`
	College         string   `json:"college"`
	Specialization  string   `json:"specialization"`
	LicenseNumber   string   `json:"license_number"`
	ClinicAddress   string   `json:"clinic_address"`
	Gender          string   `json:"gender"`
	AvailableDays   []string `gorm:"serializer:json" json:"available_days"`
	Timings         string   `json:"timings"`
	ConsultationFee float64  `json:"consultation_fee"`
	Documents       []string `gorm:"serializer:json" json:"documents"`
}

// WishlistEntry links a user to a bookmarked doctor.
type WishlistEntry struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   string `gorm:"uniqueIndex:idx_wishlist_user_doctor;not null" json:"user_id"`
	DoctorID string `gorm:"uniqueIndex:idx_wishlist_user_doctor;not null" json:"doctor_id"`
}
