package migration

import (
	"Leafia-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Admin{}); err != nil {
		log.Fatalf("Error migrating admin database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Disease{}); err != nil {
		log.Fatalf("Error migrating disease database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PlantObservation{}); err != nil {
		log.Fatalf("Error migrating plant observation database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
