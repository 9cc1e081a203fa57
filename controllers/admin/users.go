package adminControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

// GET /admin/users?role=&search=&page=&limit=
func GetUsersByRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.DefaultQuery("role", string(models.RoleUser)))
		if role != models.RoleUser && role != models.RoleDoctor {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be 'user' or 'doctor'"})
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if limit < 1 || limit > 100 {
			limit = 20
		}

		query := db.Model(&models.User{}).Where("role = ?", role)
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", like, like, like)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		var users []models.User
		q := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit)
		if role == models.RoleDoctor {
			q = q.Preload("DoctorProfile")
		}
		if err := q.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"users":       users,
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		})
	}
}

// GET /admin/vendors
func GetAllVendors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vendors []models.Vendor
		if err := db.Order("created_at DESC").Find(&vendors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"vendors": vendors})
	}
}
