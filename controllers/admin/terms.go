package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

type TermsInput struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// POST /admin/terms
func AddTerms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TermsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
			return
		}
		if input.Title == "" {
			input.Title = "Terms and Conditions"
		}

		terms := models.Terms{Title: input.Title, Content: input.Content, IsActive: true}
		if err := db.Create(&terms).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add terms"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Terms added successfully", "terms": terms})
	}
}

// GET /terms — latest active version.
func GetTerms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var terms models.Terms
		if err := db.Where("is_active = ?", true).Order("created_at DESC").First(&terms).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No terms found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"terms": terms})
	}
}

// DELETE /admin/terms/:termsID
func DeleteTerms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		termsID := c.Param("termsID")

		result := db.Delete(&models.Terms{}, termsID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete terms"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Terms not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Terms deleted successfully"})
	}
}
