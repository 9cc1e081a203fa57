package adminControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/medimart-dev/marketplace-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Faq{},
		&models.Terms{},
		&models.PrivacyPolicy{},
	))
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCategoryRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/categories", AddCategory(db))

	w := doJSON(t, r, http.MethodPost, "/categories", gin.H{"name": "Medicine"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/categories", gin.H{"name": "Medicine"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetPrivacyPolicySeedsDefault(t *testing.T) {
	db := setupTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/privacy-policy", GetPrivacyPolicy(db))
	r.PUT("/privacy-policy", UpdatePrivacyPolicy(db))

	w := doJSON(t, r, http.MethodGet, "/privacy-policy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "privacy")

	w = doJSON(t, r, http.MethodPut, "/privacy-policy", gin.H{"content": "Updated policy text"})
	require.Equal(t, http.StatusOK, w.Code)

	// The document is a singleton, the update replaced the seeded row.
	var count int64
	require.NoError(t, db.Model(&models.PrivacyPolicy{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var policy models.PrivacyPolicy
	require.NoError(t, db.First(&policy).Error)
	assert.Equal(t, "Updated policy text", policy.Content)
}

func TestGetTermsReturnsLatestActive(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Terms{Title: "v1", Content: "old", IsActive: true, CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Terms{Title: "v2", Content: "new", IsActive: true, CreatedAt: base.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Terms{Title: "draft", Content: "inactive", IsActive: false, CreatedAt: base.Add(2 * time.Hour)}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/terms", GetTerms(db))

	w := doJSON(t, r, http.MethodGet, "/terms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "v2")
	assert.NotContains(t, w.Body.String(), "inactive")
}
