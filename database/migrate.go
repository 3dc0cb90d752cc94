package database

import (
	"fmt"
	"log"

	"github.com/portfolio-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the projects table
func Migrate(db *gorm.DB) error {
	log.Println("Migrating projects schema...")
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return fmt.Errorf("failed to migrate projects: %w", err)
	}
	log.Println("✅ Projects schema migrated")
	return nil
}

// Seed upserts projects by id, so running it twice leaves one copy of each
func Seed(db *gorm.DB, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	log.Printf("Seeding %d projects...", len(projects))
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&projects).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}
	log.Println("✅ Projects seeded")
	return nil
}

// Reset drops every project row. Used before seeding a test database.
func Reset(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Project{}).Error; err != nil {
		return fmt.Errorf("failed to reset projects: %w", err)
	}
	return nil
}
