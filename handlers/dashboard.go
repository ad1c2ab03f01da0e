package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"rating-voyage-backend/models"
	"rating-voyage-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	DB *gorm.DB
}

// GetStats returns the platform-wide counters for the admin dashboard.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var totalUsers, totalStores, totalRatings int64
	var activeUsers, activeStores int64
	var usersThisMonth, storesThisMonth, ratingsThisMonth int64

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	h.DB.Model(&models.User{}).Count(&totalUsers)
	h.DB.Model(&models.Store{}).Count(&totalStores)
	h.DB.Model(&models.Rating{}).Count(&totalRatings)
	h.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&activeUsers)
	h.DB.Model(&models.Store{}).Where("is_active = ?", true).Count(&activeStores)
	h.DB.Model(&models.User{}).Where("created_at >= ?", monthStart).Count(&usersThisMonth)
	h.DB.Model(&models.Store{}).Where("created_at >= ?", monthStart).Count(&storesThisMonth)
	h.DB.Model(&models.Rating{}).Where("created_at >= ?", monthStart).Count(&ratingsThisMonth)

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":       totalUsers,
		"totalStores":      totalStores,
		"totalRatings":     totalRatings,
		"activeUsers":      activeUsers,
		"activeStores":     activeStores,
		"usersThisMonth":   usersThisMonth,
		"storesThisMonth":  storesThisMonth,
		"ratingsThisMonth": ratingsThisMonth,
	})
}

// GetUserStats returns the authenticated user's own activity summary.
func (h *DashboardHandler) GetUserStats(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var userRatings, userStores int64
	h.DB.Model(&models.Rating{}).Where("user_id = ?", userID).Count(&userRatings)
	h.DB.Model(&models.Store{}).Where("owner_id = ?", userID).Count(&userStores)

	var recentRatings []models.Rating
	h.DB.Preload("Store").Where("user_id = ?", userID).
		Order("created_at DESC").Limit(5).Find(&recentRatings)

	c.JSON(http.StatusOK, gin.H{
		"userRatings":   userRatings,
		"userStores":    userStores,
		"recentRatings": recentRatings,
	})
}

// GetStoreStats returns a single store's rating summary plus a six month
// trend. The trend is grouped in process so it works the same on every
// backing database.
func (h *DashboardHandler) GetStoreStats(c *gin.Context) {
	storeID := c.Param("storeId")
	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	var store models.Store
	if err := h.DB.Where("id = ?", storeID).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	if !utils.IsOwnerOrAdmin(userID.(uuid.UUID), userRole.(string), store.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this store's stats"})
		return
	}

	var totalRatings int64
	h.DB.Model(&models.Rating{}).Where("store_id = ?", store.ID).Count(&totalRatings)

	var avg struct {
		Average float64
	}
	h.DB.Model(&models.Rating{}).Where("store_id = ?", store.ID).
		Select("COALESCE(AVG(score), 0) AS average").Scan(&avg)
	averageRating := 0.0
	if totalRatings > 0 {
		averageRating = math.Round(avg.Average*10) / 10
	}

	var recentRatings []models.Rating
	h.DB.Preload("User").Where("store_id = ?", store.ID).
		Order("created_at DESC").Limit(5).Find(&recentRatings)

	now := time.Now()
	sixMonthsAgo := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)

	var trendRatings []models.Rating
	h.DB.Where("store_id = ? AND created_at >= ?", store.ID, sixMonthsAgo).Find(&trendRatings)

	type monthBucket struct {
		Month   string  `json:"month"`
		Count   int64   `json:"count"`
		Average float64 `json:"average"`
	}

	buckets := make(map[string]*monthBucket)
	sums := make(map[string]int)
	order := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		m := sixMonthsAgo.AddDate(0, i, 0)
		key := m.Format("2006-01")
		buckets[key] = &monthBucket{Month: key}
		order = append(order, key)
	}
	for _, r := range trendRatings {
		key := r.CreatedAt.Format("2006-01")
		bucket, ok := buckets[key]
		if !ok {
			continue
		}
		bucket.Count++
		sums[key] += r.Score
	}
	monthlyTrend := make([]monthBucket, 0, 6)
	for _, key := range order {
		bucket := buckets[key]
		if bucket.Count > 0 {
			bucket.Average = math.Round(float64(sums[key])/float64(bucket.Count)*10) / 10
		}
		monthlyTrend = append(monthlyTrend, *bucket)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRatings":  totalRatings,
		"averageRating": averageRating,
		"recentRatings": recentRatings,
		"monthlyTrend":  monthlyTrend,
	})
}

// GetTopRatedStores lists active stores ranked by rating then volume.
func (h *DashboardHandler) GetTopRatedStores(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var stores []models.Store
	if err := h.DB.Preload("Images").Where("is_active = ?", true).
		Order("average_rating DESC, total_ratings DESC").Limit(limit).Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

// GetRecentActivity returns the latest registrations, stores and ratings
// for the admin dashboard.
func (h *DashboardHandler) GetRecentActivity(c *gin.Context) {
	var recentUsers []models.User
	h.DB.Order("created_at DESC").Limit(5).Find(&recentUsers)

	var recentStores []models.Store
	h.DB.Preload("Owner").Order("created_at DESC").Limit(5).Find(&recentStores)

	var recentRatings []models.Rating
	h.DB.Preload("User").Preload("Store").Order("created_at DESC").Limit(5).Find(&recentRatings)

	c.JSON(http.StatusOK, gin.H{
		"recentUsers":   recentUsers,
		"recentStores":  recentStores,
		"recentRatings": recentRatings,
	})
}
