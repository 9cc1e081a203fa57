package productControllers

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

func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(uploadDir(), "products")
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
	return fmt.Sprintf("/uploads/products/%s", filename), nil
}

func removeImageFiles(paths []string) {
	for _, p := range paths {
		rel := strings.TrimPrefix(p, "/uploads/")
		if rel == p {
			continue
		}
		_ = os.Remove(filepath.Join(uploadDir(), rel))
	}
}

// POST /vendor/products (multipart) — requires an existing store.
func AddProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, _ := c.Get("user_id")
		vendorID := vendorIDVal.(string)

		var store models.Store
		if err := db.Where("vendor_id = ?", vendorID).First(&store).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Add a store before adding products"})
			return
		}

		name := c.PostForm("name")
		description := c.PostForm("description")
		category := c.PostForm("category")
		brand := c.PostForm("brand")
		if name == "" || description == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, description and category are required"})
			return
		}

		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid price is required"})
			return
		}
		stock, err := strconv.Atoi(c.PostForm("stock"))
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid stock count is required"})
			return
		}

		var images []string
		if form, formErr := c.MultipartForm(); formErr == nil && form != nil {
			for _, file := range form.File["product_images"] {
				path, saveErr := saveProductImage(c, file)
				if saveErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product image"})
					return
				}
				images = append(images, path)
			}
		}

		product := models.Product{
			VendorID:    vendorID,
			StoreID:     store.ID,
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
			Category:    category,
			Brand:       brand,
			Images:      images,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": product})
	}
}

// PUT /vendor/products/:productID (multipart) — only the owning vendor.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, _ := c.Get("user_id")
		productID := c.Param("productID")

		var product models.Product
		if err := db.Where("id = ? AND vendor_id = ?", productID, vendorIDVal).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("category"); v != "" {
			product.Category = v
		}
		if v := c.PostForm("brand"); v != "" {
			product.Brand = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A valid price is required"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A valid stock count is required"})
				return
			}
			product.Stock = stock
		}
		if v := c.PostForm("is_featured"); v != "" {
			product.IsFeatured = v == "true"
		}

		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, file := range form.File["product_images"] {
				path, saveErr := saveProductImage(c, file)
				if saveErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product image"})
					return
				}
				product.Images = append(product.Images, path)
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}

// DELETE /vendor/products/:productID
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, _ := c.Get("user_id")
		productID := c.Param("productID")

		var product models.Product
		if err := db.Where("id = ? AND vendor_id = ?", productID, vendorIDVal).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		removeImageFiles(product.Images)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// GET /vendor/products
func GetVendorProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorIDVal, _ := c.Get("user_id")

		var products []models.Product
		if err := db.Where("vendor_id = ?", vendorIDVal).Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
