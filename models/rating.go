package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is deleted for real rather than soft deleted: the unique
// (user_id, store_id) index must only cover live rows so a user can rate a
// store again after removing their previous rating.
type Rating struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_user_store" json:"userId"`
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StoreID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_user_store" json:"storeId"`
	Store        Store         `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Score        int           `gorm:"not null" json:"rating"` // 1-5
	Review       string        `json:"review,omitempty"`
	Images       []RatingImage `gorm:"foreignKey:RatingID" json:"images,omitempty"`
	IsVerified   bool          `gorm:"default:false" json:"isVerified"`
	HelpfulVotes int           `gorm:"default:0" json:"helpfulVotes"`
	Reported     bool          `gorm:"default:false" json:"reported"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type RatingImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RatingID  uuid.UUID `gorm:"type:uuid;not null;index" json:"ratingId"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ri *RatingImage) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
