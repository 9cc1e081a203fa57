package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/medimart-dev/marketplace-api/controllers/cart"
	doctorControllers "github.com/medimart-dev/marketplace-api/controllers/doctor"
	orderControllers "github.com/medimart-dev/marketplace-api/controllers/order"
	userControllers "github.com/medimart-dev/marketplace-api/controllers/user"
	"github.com/medimart-dev/marketplace-api/middleware"
	"gorm.io/gorm"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	user := r.Group("/user")
	user.Use(middleware.ValidateToken)
	{
		user.GET("/profile", userControllers.GetUser(db))
		user.PUT("/profile", userControllers.UpdateUser(db))
		user.PUT("/profile/picture", userControllers.UpdateProfilePicture(db))
		user.PUT("/profile/doctor", userControllers.UpdateDoctorProfile(db))
		user.DELETE("/profile/doctor/documents", userControllers.DeleteDocument(db))

		user.POST("/cart/add", cartControllers.AddToCart(db))
		user.POST("/cart/remove", cartControllers.RemoveFromCart(db))
		user.GET("/cart", cartControllers.GetUserCart(db))

		user.POST("/orders", orderControllers.PlaceOrderHandler(db))
		user.GET("/orders", orderControllers.GetUserOrdersByStatus(db))
		user.GET("/orders/:orderID", orderControllers.GetUserOrderDetails(db))
		user.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		user.POST("/appointments", doctorControllers.CreateAppointment(db))
		user.GET("/appointments", doctorControllers.GetAppointmentsByUserID(db))
		user.GET("/doctor/appointments", doctorControllers.GetAppointmentsByDoctorID(db))

		user.POST("/wishlist/add", doctorControllers.AddToWishlist(db))
		user.POST("/wishlist/remove", doctorControllers.RemoveFromWishlist(db))

		user.POST("/reviews", doctorControllers.AddDoctorReview(db))
		user.GET("/reviews", doctorControllers.GetDoctorReviews(db))
	}
}
