package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/medimart-dev/marketplace-api/controllers/admin"
	productControllers "github.com/medimart-dev/marketplace-api/controllers/product"
	storeControllers "github.com/medimart-dev/marketplace-api/controllers/store"
	"github.com/medimart-dev/marketplace-api/middleware"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", adminControllers.GetUsersByRole(db))
		admin.GET("/vendors", adminControllers.GetAllVendors(db))
		admin.GET("/vendors/:vendorID/store", storeControllers.GetStoreByVendorID(db))

		admin.POST("/categories", adminControllers.AddCategory(db))
		admin.DELETE("/categories/:categoryID", adminControllers.DeleteCategory(db))

		admin.POST("/faqs", adminControllers.AddFaq(db))
		admin.DELETE("/faqs/:faqID", adminControllers.DeleteFaq(db))

		admin.POST("/terms", adminControllers.AddTerms(db))
		admin.DELETE("/terms/:termsID", adminControllers.DeleteTerms(db))

		admin.PUT("/privacy-policy", adminControllers.UpdatePrivacyPolicy(db))

		admin.GET("/products/export", productControllers.ExportProductsToExcel(db))
	}
}
