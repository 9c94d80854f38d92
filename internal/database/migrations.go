package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RunMigrations executes all database migrations
func RunMigrations(db *gorm.DB) error {
	// Create indexes for better performance
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes creates database indexes
func createIndexes(db *gorm.DB) error {
	// Index for case searches by status and title
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cases_status_title
		ON cases(status, title)
	`).Error; err != nil {
		return err
	}

	// Index for hearings by date
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_hearings_date
		ON hearings(date)
	`).Error; err != nil {
		return err
	}

	// Index for documents by type
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_documents_type
		ON documents(type)
	`).Error; err != nil {
		return err
	}

	return nil
}
