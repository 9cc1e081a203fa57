package userControllers

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/medimart-dev/marketplace-api/auth"
	"github.com/medimart-dev/marketplace-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`

	// Doctor-only payload, ignored for plain users.
	Doctor *DoctorProfileInput `json:"doctor"`
}

type DoctorProfileInput struct {
	Education       string   `json:"education"`
	Experience      int      `json:"experience"`
	College         string   `json:"college"`
	Specialization  string   `json:"specialization"`
	LicenseNumber   string   `json:"license_number"`
	ClinicAddress   string   `json:"clinic_address"`
	Gender          string   `json:"gender"`
	AvailableDays   []string `json:"available_days"`
	Timings         string   `json:"timings"`
	ConsultationFee float64  `json:"consultation_fee"`
}

type VerifyOtpInput struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

type ResendOtpInput struct {
	Phone string `json:"phone" binding:"required"`
}

type LoginUserInput struct {
	Identifier string `json:"identifier" binding:"required"` // phone or email
	Password   string `json:"password" binding:"required"`
}

// generateOtp returns a numeric code of the given length.
func generateOtp(length int) (string, error) {
	otp := ""
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		otp += n.String()
	}
	return otp, nil
}

func doctorProfileFromInput(in *DoctorProfileInput) *models.DoctorProfile {
	if in == nil {
		return &models.DoctorProfile{}
	}
	return &models.DoctorProfile{
		Education:       in.Education,
		Experience:      in.Experience,
		College:         in.College,
		Specialization:  in.Specialization,
		LicenseNumber:   in.LicenseNumber,
		ClinicAddress:   in.ClinicAddress,
		Gender:          in.Gender,
		AvailableDays:   in.AvailableDays,
		Timings:         in.Timings,
		ConsultationFee: in.ConsultationFee,
	}
}

// POST /auth/register
//
// Re-registering an unverified phone overwrites the pending account; a
// verified phone is rejected. The account stays unverified until the OTP
// is confirmed.
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		role := models.RoleUser
		if input.Role == string(models.RoleDoctor) {
			role = models.RoleDoctor
		}

		var existing models.User
		err := db.Where("phone = ?", input.Phone).First(&existing).Error
		if err == nil && existing.IsVerified {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists and is verified"})
			return
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing user"})
			return
		}

		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}
		otp, otpErr := generateOtp(4)
		if otpErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
			return
		}

		user := models.User{
			ID:         uuid.NewString(),
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			Password:   string(hashed),
			Role:       role,
			OTP:        otp,
			IsVerified: false,
		}
		if role == models.RoleDoctor {
			user.DoctorProfile = doctorProfileFromInput(input.Doctor)
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
				return
			}
		} else {
			user.ID = existing.ID
			if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully", "user": user})
	}
}

// POST /auth/verify-otp
func VerifyOtp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOtpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("phone = ?", input.Phone).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}
		if user.IsVerified {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already verified"})
			return
		}
		if user.OTP != input.OTP {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{"is_verified": true, "otp": ""}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
			return
		}

		token, err := auth.GenerateToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP verified successfully", "token": token, "user": user})
	}
}

// POST /auth/resend-otp
func ResendOtp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResendOtpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("phone = ?", input.Phone).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}
		if user.IsVerified {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User is already verified"})
			return
		}

		otp, err := generateOtp(4)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
			return
		}
		if err := db.Model(&user).Update("otp", otp).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend OTP"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP resent successfully"})
	}
}

// POST /auth/login
func LoginUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("phone = ? OR email = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}
		if !user.IsVerified {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User is not verified. Please complete OTP verification"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
			return
		}

		token, err := auth.GenerateToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}
