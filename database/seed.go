package database

import (
	"fmt"
	"log"

	"rating-voyage-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string
}

type seedStore struct {
	Name        string
	Description string
	Category    string
	Address     string
	Phone       string
	Email       string
	OwnerIdx    int
	Images      []string
}

type seedRating struct {
	UserIdx  int
	StoreIdx int
	Score    int
	Review   string
}

// SeedDemoData wipes the users/stores/ratings tables and repopulates the demo
// dataset. Destructive, so callers must gate it (SEED_DEMO_DATA=true).
func SeedDemoData(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM rating_images").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM ratings").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM store_images").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM store_hours").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM stores").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return err
	}

	seedUsers := []seedUser{
		{"Admin User", "admin@ratingvoyage.com", "admin123", "123 Admin Street, Admin City", "admin"},
		{"John Doe", "john@example.com", "password123", "456 User Street, User City", "user"},
		{"Jane Smith", "jane@example.com", "password123", "789 User Avenue, User City", "user"},
		{"Bob Restaurant", "bob@restaurant.com", "password123", "321 Restaurant Blvd, Food City", "store-owner"},
		{"Alice Retail", "alice@retail.com", "password123", "654 Retail Road, Shop City", "store-owner"},
	}

	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Name:     su.Name,
			Email:    su.Email,
			Password: string(hashed),
			Address:  su.Address,
			Role:     su.Role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.Email, err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))

	seedStores := []seedStore{
		{
			Name:        "The Gourmet Kitchen",
			Description: "Fine dining restaurant serving exquisite cuisine with a modern twist",
			Category:    "restaurant",
			Address:     "123 Gourmet Street, Food City",
			Phone:       "+1234567890",
			Email:       "info@gourmetkitchen.com",
			OwnerIdx:    3,
			Images:      []string{"https://example.com/gourmet1.jpg", "https://example.com/gourmet2.jpg"},
		},
		{
			Name:        "Fashion Boutique",
			Description: "Trendy fashion boutique offering the latest styles and accessories",
			Category:    "retail",
			Address:     "456 Fashion Avenue, Style City",
			Phone:       "+1234567891",
			Email:       "info@fashionboutique.com",
			OwnerIdx:    4,
			Images:      []string{"https://example.com/fashion1.jpg", "https://example.com/fashion2.jpg"},
		},
		{
			Name:        "Tech Service Center",
			Description: "Professional tech services and repairs for all your electronic needs",
			Category:    "service",
			Address:     "789 Tech Street, Tech City",
			Phone:       "+1234567892",
			Email:       "info@techservice.com",
			OwnerIdx:    4,
			Images:      []string{"https://example.com/tech1.jpg", "https://example.com/tech2.jpg"},
		},
	}

	stores := make([]models.Store, 0, len(seedStores))
	for _, ss := range seedStores {
		store := models.Store{
			Name:        ss.Name,
			Description: ss.Description,
			Category:    ss.Category,
			Address:     ss.Address,
			Phone:       ss.Phone,
			Email:       ss.Email,
			OwnerID:     users[ss.OwnerIdx].ID,
			IsActive:    true,
		}
		if err := db.Create(&store).Error; err != nil {
			return fmt.Errorf("failed to seed store %s: %w", ss.Name, err)
		}
		for i, url := range ss.Images {
			image := models.StoreImage{
				StoreID:   store.ID,
				ImageURL:  url,
				IsPrimary: i == 0,
			}
			if err := db.Create(&image).Error; err != nil {
				return err
			}
		}
		for day := 0; day < 7; day++ {
			hours := models.StoreHours{
				StoreID:   store.ID,
				DayOfWeek: day,
				OpenTime:  "09:00",
				CloseTime: "21:00",
			}
			if err := db.Create(&hours).Error; err != nil {
				return err
			}
		}
		stores = append(stores, store)
	}
	log.Printf("Seeded %d stores", len(stores))

	// Link the owners to their primary store
	if err := db.Model(&models.User{}).Where("id = ?", users[3].ID).Update("store_id", stores[0].ID).Error; err != nil {
		return err
	}
	if err := db.Model(&models.User{}).Where("id = ?", users[4].ID).Update("store_id", stores[1].ID).Error; err != nil {
		return err
	}

	seedRatings := []seedRating{
		{1, 0, 5, "Absolutely amazing food and service! The ambiance was perfect for a special dinner."},
		{2, 0, 4, "Great food, but service was a bit slow during peak hours."},
		{1, 1, 4, "Good selection of clothes and reasonable prices."},
		{2, 2, 5, "Excellent service! Fixed my laptop quickly and professionally."},
	}

	for _, sr := range seedRatings {
		rating := models.Rating{
			UserID:  users[sr.UserIdx].ID,
			StoreID: stores[sr.StoreIdx].ID,
			Score:   sr.Score,
			Review:  sr.Review,
		}
		if err := db.Create(&rating).Error; err != nil {
			return fmt.Errorf("failed to seed rating: %w", err)
		}
	}
	log.Printf("Seeded %d ratings", len(seedRatings))

	// Bring the denormalized aggregates in line with the seeded ratings
	for _, store := range stores {
		if err := models.RecalculateStoreRating(db, store.ID); err != nil {
			return err
		}
	}

	log.Println("Database seeded successfully")
	return nil
}
