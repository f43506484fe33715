package db

import (
	"fmt"
	"log"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&model.BusinessType{},
		&model.IndustryType{},
		&model.RegistrationType{},
		&model.State{},
		&model.Category{},
		&model.Role{},
		&model.User{},
		&model.Product{},
		&model.Party{},
		&model.PartyAddress{},
		&model.PartyContact{},
		&model.PartyBankDetail{},
		&model.BusinessProfile{},
		&model.BusinessAddress{},
		&model.BusinessTypeAssignment{},
		&model.Sale{},
		&model.SaleItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return db, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}

// TruncateAllTables removes all data from tables
func TruncateAllTables(db *gorm.DB) error {
	tables := []string{
		"sale_items", "sales",
		"business_type_assignments", "business_addresses", "business_profiles",
		"party_bank_details", "party_contacts", "party_addresses", "parties",
		"products", "users",
		"roles", "categories", "states", "registration_types", "industry_types", "business_types",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
