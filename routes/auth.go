package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/medimart-dev/marketplace-api/controllers/admin"
	userControllers "github.com/medimart-dev/marketplace-api/controllers/user"
	vendorControllers "github.com/medimart-dev/marketplace-api/controllers/vendor"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", userControllers.RegisterUser(db))
		auth.POST("/verify-otp", userControllers.VerifyOtp(db))
		auth.POST("/resend-otp", userControllers.ResendOtp(db))
		auth.POST("/login", userControllers.LoginUser(db))

		auth.POST("/vendor/register", vendorControllers.RegisterVendor(db))
		auth.POST("/vendor/login", vendorControllers.LoginVendor(db))

		auth.POST("/admin/register", adminControllers.RegisterAdmin(db))
		auth.POST("/admin/login", adminControllers.LoginAdmin(db))
	}
}
