package doctorControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

type WishlistInput struct {
	DoctorID string `json:"doctor_id" binding:"required"`
}

// POST /user/wishlist/add
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id is required"})
			return
		}
		if userID == input.DoctorID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot add yourself to wishlist"})
			return
		}

		var doctor models.User
		if err := db.Where("id = ? AND role = ?", input.DoctorID, models.RoleDoctor).First(&doctor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}

		var existing models.WishlistEntry
		if err := db.Where("user_id = ? AND doctor_id = ?", userID, input.DoctorID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Doctor is already in wishlist"})
			return
		}

		entry := models.WishlistEntry{UserID: userID, DoctorID: input.DoctorID}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Doctor added to wishlist"})
	}
}

// POST /user/wishlist/remove
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID := userIDVal.(string)

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id is required"})
			return
		}

		result := db.Where("user_id = ? AND doctor_id = ?", userID, input.DoctorID).
			Delete(&models.WishlistEntry{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Doctor removed from wishlist"})
	}
}
