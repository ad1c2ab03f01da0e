package handlers

import (
	"math"
	"net/http"
	"strconv"

	"rating-voyage-backend/models"
	"rating-voyage-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreHandler struct {
	DB *gorm.DB
}

func (h *StoreHandler) ListStores(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.Store{}).Where("is_active = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	sortBy := c.DefaultQuery("sortBy", "created_at")
	switch sortBy {
	case "name", "category", "average_rating", "total_ratings", "created_at":
	default:
		sortBy = "created_at"
	}
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var stores []models.Store
	if err := query.Preload("Owner").Preload("Images").
		Order(sortBy + " " + sortOrder).Offset(offset).Limit(limit).Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores":      stores,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"total":       total,
	})
}

// GetNearbyStores filters active stores by Haversine distance from the given
// point. The store set is small enough to filter in process.
func (h *StoreHandler) GetNearbyStores(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat is required and must be a number"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng is required and must be a number"})
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "10"), 64)
	if err != nil || radius <= 0 {
		radius = 10
	}

	var stores []models.Store
	if err := h.DB.Preload("Images").Where("is_active = ?", true).Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
		return
	}

	type nearbyStore struct {
		models.Store
		Distance float64 `json:"distance"`
	}

	nearby := []nearbyStore{}
	for _, store := range stores {
		if store.Latitude == 0 && store.Longitude == 0 {
			continue
		}
		d := utils.Haversine(lat, lng, store.Latitude, store.Longitude)
		if d <= radius {
			nearby = append(nearby, nearbyStore{Store: store, Distance: math.Round(d*10) / 10})
		}
	}

	c.JSON(http.StatusOK, gin.H{"stores": nearby, "total": len(nearby)})
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	id := c.Param("id")

	var store models.Store
	if err := h.DB.Preload("Owner").Preload("Hours").Preload("Images").
		Where("id = ?", id).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) GetStoreHours(c *gin.Context) {
	id := c.Param("id")

	var store models.Store
	if err := h.DB.Where("id = ?", id).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	var hours []models.StoreHours
	if err := h.DB.Where("store_id = ?", store.ID).Order("day_of_week ASC").Find(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

func (h *StoreHandler) GetMyStores(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var stores []models.Store
	if err := h.DB.Preload("Images").Where("owner_id = ?", userID).
		Order("created_at DESC").Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

func (h *StoreHandler) CreateStore(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req struct {
		Name        string   `json:"name" binding:"required,min=2,max=100"`
		Description string   `json:"description" binding:"required,max=500"`
		Category    string   `json:"category" binding:"required"`
		Address     string   `json:"address" binding:"required,max=400"`
		Phone       string   `json:"phone" binding:"required"`
		Email       string   `json:"email" binding:"required,email"`
		Website     string   `json:"website"`
		Latitude    float64  `json:"latitude"`
		Longitude   float64  `json:"longitude"`
		Images      []string `json:"images"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if !utils.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if !utils.ValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid phone number"})
		return
	}
	for _, url := range req.Images {
		if !utils.ValidImageURL(url) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide valid image URLs"})
			return
		}
	}

	store := models.Store{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		OwnerID:     userID.(uuid.UUID),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsActive:    true,
	}

	if err := h.DB.Create(&store).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
		return
	}

	for i, url := range req.Images {
		image := models.StoreImage{
			StoreID:   store.ID,
			ImageURL:  url,
			IsPrimary: i == 0,
		}
		h.DB.Create(&image)
	}

	// Default operating hours, one row per weekday
	for day := 0; day < 7; day++ {
		hours := models.StoreHours{
			StoreID:   store.ID,
			DayOfWeek: day,
			OpenTime:  "09:00",
			CloseTime: "21:00",
		}
		h.DB.Create(&hours)
	}

	// Link the owner to their new store
	h.DB.Model(&models.User{}).Where("id = ?", userID).Update("store_id", store.ID)

	h.DB.Preload("Owner").Preload("Hours").Preload("Images").Where("id = ?", store.ID).First(&store)
	c.JSON(http.StatusCreated, gin.H{"message": "Store created successfully", "store": store})
}

func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	var store models.Store
	if err := h.DB.Where("id = ?", id).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	if !utils.IsOwnerOrAdmin(userID.(uuid.UUID), userRole.(string), store.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this store"})
		return
	}

	var req struct {
		Name        *string  `json:"name" binding:"omitempty,min=2,max=100"`
		Description *string  `json:"description" binding:"omitempty,max=500"`
		Category    *string  `json:"category"`
		Address     *string  `json:"address" binding:"omitempty,max=400"`
		Phone       *string  `json:"phone"`
		Email       *string  `json:"email" binding:"omitempty,email"`
		Website     *string  `json:"website"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		IsActive    *bool    `json:"isActive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Category != nil && !utils.ValidCategory(*req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if req.Phone != nil && !utils.ValidPhone(*req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid phone number"})
		return
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Description != nil {
		store.Description = *req.Description
	}
	if req.Category != nil {
		store.Category = *req.Category
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.Email != nil {
		store.Email = *req.Email
	}
	if req.Website != nil {
		store.Website = *req.Website
	}
	if req.Latitude != nil {
		store.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		store.Longitude = *req.Longitude
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := h.DB.Save(&store).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Store updated successfully", "store": store})
}

func (h *StoreHandler) DeleteStore(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	var store models.Store
	if err := h.DB.Where("id = ?", id).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	if !utils.IsOwnerOrAdmin(userID.(uuid.UUID), userRole.(string), store.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this store"})
		return
	}

	if err := h.DB.Delete(&store).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete store"})
		return
	}

	// Unlink the owner from the deleted store
	h.DB.Model(&models.User{}).Where("store_id = ?", store.ID).Update("store_id", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Store deleted successfully"})
}

func (h *StoreHandler) UpdateStoreHours(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	var store models.Store
	if err := h.DB.Where("id = ?", id).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	if !utils.IsOwnerOrAdmin(userID.(uuid.UUID), userRole.(string), store.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this store"})
		return
	}

	var req struct {
		Hours []struct {
			DayOfWeek int    `json:"dayOfWeek" binding:"min=0,max=6"`
			OpenTime  string `json:"openTime" binding:"required"`
			CloseTime string `json:"closeTime" binding:"required"`
			IsClosed  bool   `json:"isClosed"`
		} `json:"hours" binding:"required,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	for _, entry := range req.Hours {
		updates := map[string]interface{}{
			"open_time":  entry.OpenTime,
			"close_time": entry.CloseTime,
			"is_closed":  entry.IsClosed,
		}
		result := h.DB.Model(&models.StoreHours{}).
			Where("store_id = ? AND day_of_week = ?", store.ID, entry.DayOfWeek).
			Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store hours"})
			return
		}
		if result.RowsAffected == 0 {
			hours := models.StoreHours{
				StoreID:   store.ID,
				DayOfWeek: entry.DayOfWeek,
				OpenTime:  entry.OpenTime,
				CloseTime: entry.CloseTime,
				IsClosed:  entry.IsClosed,
			}
			if err := h.DB.Create(&hours).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store hours"})
				return
			}
		}
	}

	var hours []models.StoreHours
	h.DB.Where("store_id = ?", store.ID).Order("day_of_week ASC").Find(&hours)
	c.JSON(http.StatusOK, gin.H{"message": "Store hours updated successfully", "hours": hours})
}
