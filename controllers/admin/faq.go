package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

type FaqInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// POST /admin/faqs
func AddFaq(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FaqInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Question and answer are required"})
			return
		}

		faq := models.Faq{Question: input.Question, Answer: input.Answer, IsActive: true}
		if err := db.Create(&faq).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add FAQ"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "FAQ added successfully", "faq": faq})
	}
}

// GET /faqs — active entries only.
func GetFaqs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var faqs []models.Faq
		if err := db.Where("is_active = ?", true).Order("created_at DESC").Find(&faqs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"faqs": faqs})
	}
}

// DELETE /admin/faqs/:faqID
func DeleteFaq(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		faqID := c.Param("faqID")

		result := db.Delete(&models.Faq{}, faqID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete FAQ"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted successfully"})
	}
}
