package userControllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveMultipartFile stores one multipart file under uploads/<sub> and
// returns its public path.
func saveMultipartFile(c *gin.Context, file *multipart.FileHeader, sub string) (string, error) {
	dir := filepath.Join(uploadDir(), sub)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", sub, filename), nil
}

func saveUploadedFile(c *gin.Context, field, sub string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	return saveMultipartFile(c, file, sub)
}

// GET /user/profile
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.Preload("DoctorProfile").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// PUT /user/profile
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
	}
}

// PUT /user/profile/picture (multipart)
func UpdateProfilePicture(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		path, err := saveUploadedFile(c, "profile_picture", "profiles")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile_picture file is required"})
			return
		}
		if err := db.Model(&user).Update("profile_picture", path).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile picture"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated", "profile_picture": path})
	}
}

// PUT /user/profile/doctor (multipart) — doctor capability fields only.
func UpdateDoctorProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")
		if roleVal != models.RoleDoctor {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors can update a doctor profile"})
			return
		}

		var profile models.DoctorProfile
		if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor profile not found"})
			return
		}

		setIfPresent := func(field string, dst *string) {
			if v := c.PostForm(field); v != "" {
				*dst = v
			}
		}
		setIfPresent("education", &profile.Education)
		setIfPresent("college", &profile.College)
		setIfPresent("specialization", &profile.Specialization)
		setIfPresent("license_number", &profile.LicenseNumber)
		setIfPresent("clinic_address", &profile.ClinicAddress)
		setIfPresent("gender", &profile.Gender)
		setIfPresent("timings", &profile.Timings)
		if v := c.PostForm("experience"); v != "" {
			exp, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid experience"})
				return
			}
			profile.Experience = exp
		}
		if v := c.PostForm("consultation_fee"); v != "" {
			fee, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid consultation_fee"})
				return
			}
			profile.ConsultationFee = fee
		}
		if days := c.PostFormArray("available_days"); len(days) > 0 {
			profile.AvailableDays = days
		}

		// Uploaded documents append to the existing set.
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, file := range form.File["documents"] {
				path, saveErr := saveMultipartFile(c, file, "documents")
				if saveErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
					return
				}
				profile.Documents = append(profile.Documents, path)
			}
		}

		if err := db.Save(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "doctor_profile": profile})
	}
}

// DELETE /user/profile/doctor/documents — removes one uploaded document by path.
func DeleteDocument(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input struct {
			FilePath string `json:"file_path" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
			return
		}

		var profile models.DoctorProfile
		if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor profile not found"})
			return
		}

		kept := profile.Documents[:0]
		removed := false
		for _, doc := range profile.Documents {
			if doc == input.FilePath {
				removed = true
				continue
			}
			kept = append(kept, doc)
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found in profile"})
			return
		}

		if err := db.Model(&profile).Update("documents", kept).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
			return
		}

		// The file may already be gone; the profile entry is authoritative.
		_ = os.Remove(filepath.Join(uploadDir(), strings.TrimPrefix(input.FilePath, "/uploads/")))

		c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully", "documents": kept})
	}
}
