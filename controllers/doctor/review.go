package doctorControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

type AddReviewInput struct {
	DoctorID string `json:"doctor_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Review   string `json:"review"`
}

// POST /user/reviews — one review per user per doctor.
func AddDoctorReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		var input AddReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id and rating (1-5) are required"})
			return
		}

		var doctor models.User
		if err := db.Where("id = ? AND role = ?", input.DoctorID, models.RoleDoctor).First(&doctor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}

		var existing models.DoctorReview
		if err := db.Where("doctor_id = ? AND user_id = ?", input.DoctorID, userID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already reviewed this doctor"})
			return
		}

		review := models.DoctorReview{
			DoctorID: input.DoctorID,
			UserID:   userID,
			Rating:   input.Rating,
			Review:   input.Review,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully", "review": review})
	}
}

// GET /user/reviews?doctor_id=
func GetDoctorReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorID := c.Query("doctor_id")
		if doctorID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id is required"})
			return
		}

		var reviews []models.DoctorReview
		if err := db.Preload("User").Where("doctor_id = ?", doctorID).Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}
