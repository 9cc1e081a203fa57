package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/medimart-dev/marketplace-api/controllers/admin"
	doctorControllers "github.com/medimart-dev/marketplace-api/controllers/doctor"
	orderControllers "github.com/medimart-dev/marketplace-api/controllers/order"
	productControllers "github.com/medimart-dev/marketplace-api/controllers/product"
	storeControllers "github.com/medimart-dev/marketplace-api/controllers/store"
	"github.com/medimart-dev/marketplace-api/middleware"
	"gorm.io/gorm"
)

func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetAllProducts(db))
	r.GET("/products/:productID", productControllers.GetProductByID(db))
	r.GET("/categories", adminControllers.GetAllCategories(db))

	r.GET("/stores", storeControllers.GetAllStores(db))
	r.GET("/stores/:storeID/products", storeControllers.GetProductsByStoreID(db))

	// Doctor listings show wishlist flags when a token is present.
	r.GET("/doctors", middleware.OptionalToken, doctorControllers.GetAllDoctors(db))
	r.GET("/doctors/filter", middleware.OptionalToken, doctorControllers.GetFilteredDoctors(db))
	r.GET("/doctors/:doctorID", middleware.OptionalToken, doctorControllers.GetDoctorDetails(db))

	r.GET("/orders/:orderID", orderControllers.GetOrderDetailsByID(db))

	r.GET("/faqs", adminControllers.GetFaqs(db))
	r.GET("/terms", adminControllers.GetTerms(db))
	r.GET("/privacy-policy", adminControllers.GetPrivacyPolicy(db))
}
