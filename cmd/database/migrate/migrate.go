package migration

import (
	"StyleMate-Server/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WardrobeItem{}); err != nil {
		log.Fatalf("Error migrating wardrobe item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RetailerProduct{}); err != nil {
		log.Fatalf("Error migrating retailer product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SwipeEvent{}); err != nil {
		log.Fatalf("Error migrating swipe event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PreferenceCounter{}); err != nil {
		log.Fatalf("Error migrating preference counter database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
