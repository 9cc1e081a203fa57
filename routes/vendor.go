package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/medimart-dev/marketplace-api/controllers/order"
	productControllers "github.com/medimart-dev/marketplace-api/controllers/product"
	storeControllers "github.com/medimart-dev/marketplace-api/controllers/store"
	"github.com/medimart-dev/marketplace-api/middleware"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

func SetupVendorRoutes(r *gin.Engine, db *gorm.DB) {
	vendor := r.Group("/vendor")
	vendor.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleVendor))
	{
		vendor.POST("/store", storeControllers.AddStore(db))
		vendor.GET("/store", storeControllers.GetVendorStore(db))

		vendor.POST("/products", productControllers.AddProduct(db))
		vendor.GET("/products", productControllers.GetVendorProducts(db))
		vendor.PUT("/products/:productID", productControllers.UpdateProduct(db))
		vendor.DELETE("/products/:productID", productControllers.DeleteProduct(db))

		vendor.GET("/orders", orderControllers.GetVendorOrders(db))
		vendor.POST("/orders/dispatch", orderControllers.DispatchOrderHandler(db))
	}
}
