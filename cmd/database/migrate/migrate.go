package migration

import (
	"fmt"
	"log"

	"Campus-Inventory-System/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Request{}, &entities.RequestItem{}); err != nil {
		log.Fatalf("Error migrating request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DeletionLog{}); err != nil {
		log.Fatalf("Error migrating deletion log database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
