package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreHours struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;index" json:"storeId"`
	DayOfWeek int       `gorm:"not null" json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	OpenTime  string    `gorm:"not null;default:'09:00'" json:"openTime"`
	CloseTime string    `gorm:"not null;default:'21:00'" json:"closeTime"`
	IsClosed  bool      `gorm:"default:false" json:"isClosed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (sh *StoreHours) BeforeCreate(tx *gorm.DB) error {
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	return nil
}
