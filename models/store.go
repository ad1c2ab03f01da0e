package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `gorm:"not null" json:"description"`
	Category      string         `gorm:"not null;index" json:"category"` // restaurant, retail, service, entertainment, health, education, other
	Address       string         `gorm:"not null" json:"address"`
	Phone         string         `gorm:"not null" json:"phone"`
	Email         string         `gorm:"not null" json:"email"`
	Website       string         `json:"website,omitempty"`
	OwnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner         User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	AverageRating float64        `gorm:"default:0" json:"averageRating"`
	TotalRatings  int64          `gorm:"default:0" json:"totalRatings"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
	Latitude      float64        `gorm:"default:0" json:"latitude"`
	Longitude     float64        `gorm:"default:0" json:"longitude"`
	Hours         []StoreHours   `gorm:"foreignKey:StoreID" json:"operatingHours,omitempty"`
	Images        []StoreImage   `gorm:"foreignKey:StoreID" json:"images,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type StoreImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index" json:"storeId"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	IsPrimary bool      `gorm:"default:false" json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (si *StoreImage) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// RecalculateStoreRating refreshes a store's averageRating/totalRatings from
// the current set of ratings. It is called by the rating write paths right
// after a successful create/update/delete rather than from a model hook, so
// the rating-mutation -> store-recompute dependency is visible at the call
// site. The rating write and the store update are not wrapped in a single
// transaction: a failure here leaves the aggregate stale until the next
// rating mutation for the store.
func RecalculateStoreRating(db *gorm.DB, storeID uuid.UUID) error {
	var stats struct {
		Average float64
		Count   int64
	}

	err := db.Model(&Rating{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	average := 0.0
	if stats.Count > 0 {
		// Round half away from zero to one decimal place.
		average = math.Round(stats.Average*10) / 10
	}

	return db.Model(&Store{}).Where("id = ?", storeID).Updates(map[string]interface{}{
		"average_rating": average,
		"total_ratings":  stats.Count,
	}).Error
}
