package db

import (
	"log"

	"github.com/BruksfildServices01/shop-booking/internal/models"
	"gorm.io/gorm"
)

var seedNames = []string{"Alice", "Bruno", "Carla", "Diego", "Elena"}

// SeedUsers creates fixture users on an empty database so bookings can be
// exercised without an admin surface. No-op once any user exists.
func SeedUsers(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("seed users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for _, name := range seedNames {
		if err := db.Create(&models.User{Name: name}).Error; err != nil {
			log.Printf("seed user %q: %v", name, err)
		}
	}

	log.Printf("seeded %d users", len(seedNames))
}
