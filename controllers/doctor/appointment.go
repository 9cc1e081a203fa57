package doctorControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

type CreateAppointmentInput struct {
	DoctorID        string `json:"doctor_id" binding:"required"`
	PatientName     string `json:"patient_name" binding:"required"`
	PatientPhone    string `json:"patient_phone" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
}

// POST /user/appointments
func CreateAppointment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		var input CreateAppointmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		roleVal, _ := c.Get("role")
		if roleVal != models.RoleUser {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only users can book appointments"})
			return
		}
		if userID == input.DoctorID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Doctors cannot book appointments with themselves"})
			return
		}

		var doctor models.User
		if err := db.Where("id = ? AND role = ?", input.DoctorID, models.RoleDoctor).First(&doctor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}

		appointment := models.Appointment{
			UserID:          userID,
			DoctorID:        input.DoctorID,
			PatientName:     input.PatientName,
			PatientPhone:    input.PatientPhone,
			AppointmentDate: input.AppointmentDate,
			AppointmentTime: input.AppointmentTime,
		}
		if err := db.Create(&appointment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Appointment created successfully", "appointment": appointment})
	}
}

// GET /user/appointments
func GetAppointmentsByUserID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var appointments []models.Appointment
		if err := db.Where("user_id = ?", userIDVal).Find(&appointments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appointments})
	}
}

// GET /user/doctor/appointments — the doctor's own bookings.
func GetAppointmentsByDoctorID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")
		if roleVal != models.RoleDoctor {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Only doctors can view this"})
			return
		}

		var appointments []models.Appointment
		if err := db.Preload("User").Where("doctor_id = ?", userIDVal).Find(&appointments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointments": appointments})
	}
}
