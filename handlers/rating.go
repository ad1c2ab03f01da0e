package handlers

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"rating-voyage-backend/models"
	"rating-voyage-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingHandler struct {
	DB *gorm.DB
}

func (h *RatingHandler) ListRatings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.Rating{})

	if storeID := c.Query("store"); storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}
	if userID := c.Query("user"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	query.Count(&total)

	sortBy := c.DefaultQuery("sortBy", "created_at")
	switch sortBy {
	case "score", "helpful_votes", "created_at":
	default:
		sortBy = "created_at"
	}
	sortOrder := c.DefaultQuery("sortOrder", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var ratings []models.Rating
	if err := query.Preload("User").Preload("Store").Preload("Images").
		Order(sortBy + " " + sortOrder).Offset(offset).Limit(limit).Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings":     ratings,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"total":       total,
	})
}

func (h *RatingHandler) GetRating(c *gin.Context) {
	id := c.Param("id")

	var rating models.Rating
	if err := h.DB.Preload("User").Preload("Store").Preload("Images").
		Where("id = ?", id).First(&rating).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) CreateRating(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req struct {
		StoreID string   `json:"storeId" binding:"required"`
		Score   int      `json:"rating" binding:"required,min=1,max=5"`
		Review  string   `json:"review" binding:"max=1000"`
		Images  []string `json:"images"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	for _, url := range req.Images {
		if !utils.ValidImageURL(url) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide valid image URLs"})
			return
		}
	}

	var store models.Store
	if err := h.DB.Where("id = ?", req.StoreID).First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	var existing models.Rating
	if err := h.DB.Where("user_id = ? AND store_id = ?", userID, store.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already rated this store"})
		return
	}

	rating := models.Rating{
		UserID:  userID.(uuid.UUID),
		StoreID: store.ID,
		Score:   req.Score,
		Review:  req.Review,
	}

	if err := h.DB.Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rating"})
		return
	}

	for _, url := range req.Images {
		image := models.RatingImage{
			RatingID: rating.ID,
			ImageURL: url,
		}
		h.DB.Create(&image)
	}

	// Refresh the store aggregate before responding so readers never see a
	// totalRatings that excludes this rating
	if err := models.RecalculateStoreRating(h.DB, store.ID); err != nil {
		log.Printf("Failed to recalculate rating for store %s: %v", store.ID, err)
	}

	// Notify the store owner (non-blocking)
	var owner models.User
	if err := h.DB.Where("id = ?", store.OwnerID).First(&owner).Error; err == nil {
		utils.SendNewRatingEmail(owner.Email, owner.Name, store.Name, rating.Score)
	}

	h.DB.Preload("User").Preload("Store").Preload("Images").Where("id = ?", rating.ID).First(&rating)
	c.JSON(http.StatusCreated, gin.H{"message": "Rating created successfully", "rating": rating})
}

func (h *RatingHandler) UpdateRating(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	var rating models.Rating
	if err := h.DB.Where("id = ?", id).First(&rating).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	if !utils.IsOwnerOrAdmin(userID.(uuid.UUID), userRole.(string), rating.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this rating"})
		return
	}

	var req struct {
		Score  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
		Review *string `json:"review" binding:"omitempty,max=1000"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Score != nil {
		rating.Score = *req.Score
	}
	if req.Review != nil {
		rating.Review = *req.Review
	}

	if err := h.DB.Save(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}

	if err := models.RecalculateStoreRating(h.DB, rating.StoreID); err != nil {
		log.Printf("Failed to recalculate rating for store %s: %v", rating.StoreID, err)
	}

	h.DB.Preload("User").Preload("Store").Preload("Images").Where("id = ?", rating.ID).First(&rating)
	c.JSON(http.StatusOK, gin.H{"message": "Rating updated successfully", "rating": rating})
}

func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("user_id")
	userRole, _ := c.Get("user_role")

	var rating models.Rating
	if err := h.DB.Where("id = ?", id).First(&rating).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	if !utils.IsOwnerOrAdmin(userID.(uuid.UUID), userRole.(string), rating.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this rating"})
		return
	}

	storeID := rating.StoreID
	h.DB.Where("rating_id = ?", rating.ID).Delete(&models.RatingImage{})
	if err := h.DB.Delete(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rating"})
		return
	}

	if err := models.RecalculateStoreRating(h.DB, storeID); err != nil {
		log.Printf("Failed to recalculate rating for store %s: %v", storeID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

func (h *RatingHandler) GetMyRatings(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var ratings []models.Rating
	if err := h.DB.Preload("Store").Preload("Images").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (h *RatingHandler) MarkHelpful(c *gin.Context) {
	id := c.Param("id")

	var rating models.Rating
	if err := h.DB.Where("id = ?", id).First(&rating).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	if err := h.DB.Model(&rating).Update("helpful_votes", gorm.Expr("helpful_votes + 1")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark rating as helpful"})
		return
	}

	h.DB.Where("id = ?", id).First(&rating)
	c.JSON(http.StatusOK, gin.H{"message": "Marked as helpful", "helpfulVotes": rating.HelpfulVotes})
}
