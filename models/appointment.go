package models

import "time"

type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index;not null" json:"user_id"`
	User            *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DoctorID        string    `gorm:"index;not null" json:"doctor_id"`
	PatientName     string    `gorm:"not null" json:"patient_name"`
	PatientPhone    string    `gorm:"not null" json:"patient_phone"`
	AppointmentDate string    `gorm:"not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"not null" json:"appointment_time"`
	CreatedAt       time.Time `json:"created_at"`
}
