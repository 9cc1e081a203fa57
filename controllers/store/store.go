package storeControllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
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

func saveStoreImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(uploadDir(), "stores")
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
	return fmt.Sprintf("/uploads/stores/%s", filename), nil
}

// POST /vendor/store (multipart) — one store per vendor.
func AddStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, _ := c.Get("user_id")
		vendorID := vendorIDVal.(string)

		storeName := c.PostForm("store_name")
		storeAddress := c.PostForm("store_address")
		storeOwner := c.PostForm("store_owner")
		contactNumber := c.PostForm("contact_number")
		storeEmail := c.PostForm("store_email")
		if storeName == "" || storeAddress == "" || storeOwner == "" || contactNumber == "" || storeEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}

		var existing models.Store
		if err := db.Where("vendor_id = ?", vendorID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already added a store"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing store"})
			return
		}

		var images []string
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, file := range form.File["store_images"] {
				path, saveErr := saveStoreImage(c, file)
				if saveErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save store image"})
					return
				}
				images = append(images, path)
			}
		}

		store := models.Store{
			VendorID:      vendorID,
			StoreName:     storeName,
			StoreAddress:  storeAddress,
			StoreOwner:    storeOwner,
			ContactNumber: contactNumber,
			StoreEmail:    storeEmail,
			Images:        images,
		}
		if err := db.Create(&store).Error; err != nil {
			// The unique index on vendor_id backs the one-store rule.
			c.JSON(http.StatusConflict, gin.H{"error": "A store already exists for this vendor"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Store added successfully", "store": store})
	}
}

// GET /vendor/store
func GetVendorStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, _ := c.Get("user_id")

		var store models.Store
		if err := db.Where("vendor_id = ?", vendorIDVal).First(&store).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found for this vendor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"store": store})
	}
}

// GET /admin/vendors/:vendorID/store
func GetStoreByVendorID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID := c.Param("vendorID")
		if vendorID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Vendor ID is required"})
			return
		}

		var store models.Store
		if err := db.Where("vendor_id = ?", vendorID).First(&store).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found for this vendor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"store": store})
	}
}

// GET /stores
func GetAllStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stores []models.Store
		if err := db.Find(&stores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stores": stores})
	}
}

// GET /stores/:storeID/products
func GetProductsByStoreID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeID")
		if storeID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Store ID is required"})
			return
		}

		var products []models.Product
		if err := db.Where("store_id = ?", storeID).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
