package doctorControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medimart-dev/marketplace-api/models"
	"gorm.io/gorm"
)

// wishlistedDoctorIDs returns the set of doctor ids the caller has
// bookmarked, empty when the request is anonymous.
func wishlistedDoctorIDs(db *gorm.DB, c *gin.Context) map[string]bool {
	wishlist := make(map[string]bool)
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return wishlist
	}
	var entries []models.WishlistEntry
	if err := db.Where("user_id = ?", userIDVal).Find(&entries).Error; err != nil {
		return wishlist
	}
	for _, entry := range entries {
		wishlist[entry.DoctorID] = true
	}
	return wishlist
}

type doctorListing struct {
	models.User
	IsWishlisted  bool    `json:"is_wishlisted"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

type ratingStats struct {
	DoctorID     string
	AvgRating    float64
	TotalReviews int64
}

func reviewStatsByDoctor(db *gorm.DB, doctorIDs []string) map[string]ratingStats {
	stats := make(map[string]ratingStats)
	if len(doctorIDs) == 0 {
		return stats
	}
	var rows []ratingStats
	db.Model(&models.DoctorReview{}).
		Select("doctor_id, AVG(rating) AS avg_rating, COUNT(*) AS total_reviews").
		Where("doctor_id IN ?", doctorIDs).
		Group("doctor_id").
		Scan(&rows)
	for _, row := range rows {
		stats[row.DoctorID] = row
	}
	return stats
}

// GET /doctors (token optional)
func GetAllDoctors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doctors []models.User
		if err := db.Preload("DoctorProfile").Where("role = ?", models.RoleDoctor).Find(&doctors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctors"})
			return
		}
		if len(doctors) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No doctors found"})
			return
		}

		wishlist := wishlistedDoctorIDs(db, c)
		listings := make([]doctorListing, 0, len(doctors))
		for _, doctor := range doctors {
			listings = append(listings, doctorListing{User: doctor, IsWishlisted: wishlist[doctor.ID]})
		}
		c.JSON(http.StatusOK, gin.H{"doctors": listings})
	}
}

// GET /doctors/filter (token optional)
//
// Filters: gender, specialization, min_experience, max_fee, day, location
// (substring on clinic address), min_rating (on review average).
func GetFilteredDoctors(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.User{}).
			Preload("DoctorProfile").
			Joins("JOIN doctor_profiles dp ON dp.user_id = users.id").
			Where("users.role = ?", models.RoleDoctor)

		if gender := c.Query("gender"); gender != "" {
			query = query.Where("dp.gender = ?", gender)
		}
		if spec := c.Query("specialization"); spec != "" {
			query = query.Where("dp.specialization = ?", spec)
		}
		if minExp := c.Query("min_experience"); minExp != "" {
			exp, err := strconv.Atoi(minExp)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_experience"})
				return
			}
			query = query.Where("dp.experience >= ?", exp)
		}
		if maxFee := c.Query("max_fee"); maxFee != "" {
			fee, err := strconv.ParseFloat(maxFee, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_fee"})
				return
			}
			query = query.Where("dp.consultation_fee <= ?", fee)
		}
		if day := c.Query("day"); day != "" {
			query = query.Where("dp.available_days LIKE ?", fmt.Sprintf("%%%s%%", day))
		}
		if location := c.Query("location"); location != "" {
			query = query.Where("LOWER(dp.clinic_address) LIKE ?", "%"+strings.ToLower(location)+"%")
		}

		var doctors []models.User
		if err := query.Find(&doctors).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctors"})
			return
		}

		var minRating float64
		if raw := c.Query("min_rating"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_rating"})
				return
			}
			minRating = parsed
		}

		ids := make([]string, 0, len(doctors))
		for _, doctor := range doctors {
			ids = append(ids, doctor.ID)
		}
		stats := reviewStatsByDoctor(db, ids)
		wishlist := wishlistedDoctorIDs(db, c)

		listings := make([]doctorListing, 0, len(doctors))
		for _, doctor := range doctors {
			s := stats[doctor.ID]
			if minRating > 0 && s.AvgRating < minRating {
				continue
			}
			listings = append(listings, doctorListing{
				User:          doctor,
				IsWishlisted:  wishlist[doctor.ID],
				AverageRating: s.AvgRating,
				TotalReviews:  s.TotalReviews,
			})
		}
		c.JSON(http.StatusOK, gin.H{"doctors": listings})
	}
}

// GET /doctors/:doctorID
func GetDoctorDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorID := c.Param("doctorID")

		var doctor models.User
		if err := db.Preload("DoctorProfile").
			Where("id = ? AND role = ?", doctorID, models.RoleDoctor).
			First(&doctor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}

		var reviews []models.DoctorReview
		if err := db.Preload("User").
			Where("doctor_id = ?", doctorID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		var average float64
		if len(reviews) > 0 {
			var sum int
			for _, review := range reviews {
				sum += review.Rating
			}
			average = float64(sum) / float64(len(reviews))
		}

		c.JSON(http.StatusOK, gin.H{
			"doctor":         doctor,
			"reviews":        reviews,
			"total_reviews":  len(reviews),
			"average_rating": average,
		})
	}
}
