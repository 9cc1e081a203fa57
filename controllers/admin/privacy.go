package adminControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

const defaultPrivacyContent = "We respect your privacy. This policy describes how we collect, use and protect your personal information."

type PrivacyPolicyInput struct {
	Content string `json:"content" binding:"required"`
}

// GET /privacy-policy — seeds the default document on first read.
func GetPrivacyPolicy(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var policy models.PrivacyPolicy
		err := db.First(&policy).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			policy = models.PrivacyPolicy{Content: defaultPrivacyContent, LastUpdated: time.Now()}
			if createErr := db.Create(&policy).Error; createErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load privacy policy"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load privacy policy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"privacy_policy": policy})
	}
}

// PUT /admin/privacy-policy
func UpdatePrivacyPolicy(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PrivacyPolicyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
			return
		}

		var policy models.PrivacyPolicy
		err := db.First(&policy).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			policy = models.PrivacyPolicy{Content: input.Content, LastUpdated: time.Now()}
			if createErr := db.Create(&policy).Error; createErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update privacy policy"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Privacy policy updated", "privacy_policy": policy})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update privacy policy"})
			return
		}

		policy.Content = input.Content
		policy.LastUpdated = time.Now()
		if err := db.Save(&policy).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update privacy policy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy policy updated", "privacy_policy": policy})
	}
}
