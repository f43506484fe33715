package db

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/util"
	"gorm.io/gorm"
)

// migrationModels is every table of the app-owned local schema.
var migrationModels = []interface{}{
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
}

// Migrate runs migrations. Only the sqlite dialect owns its schema;
// a SQL Server target is externally managed and never migrated here.
func Migrate() error {
	if DB.Dialector.Name() != "sqlite" {
		logger.Info("Skipping migrations: schema is externally managed", map[string]interface{}{
			"dialect": DB.Dialector.Name(),
		})
		return nil
	}

	logger.Info("Running database migrations...")

	if err := DB.AutoMigrate(migrationModels...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(migrationModels),
	})
	return nil
}

// Seed adds the initial reference data and the bootstrap admin user.
func Seed() error {
	if DB.Dialector.Name() != "sqlite" {
		return nil
	}

	logger.Info("Seeding initial data...")

	if err := seedRoles(); err != nil {
		logger.Error("Failed to seed roles", err)
		return err
	}
	if err := seedStates(); err != nil {
		logger.Error("Failed to seed states", err)
		return err
	}
	if err := seedAdminUser(); err != nil {
		logger.Error("Failed to seed admin user", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

func seedRoles() error {
	var count int64
	if err := DB.Model(&model.Role{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Roles already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	names := []string{"admin", "manager", "cashier"}
	for _, name := range names {
		role := model.Role{LookupFields: model.LookupFields{Name: name, Active: true}}
		if err := DB.Create(&role).Error; err != nil {
			return err
		}
	}

	logger.Info("Roles seeded successfully", map[string]interface{}{
		"total_roles": len(names),
	})
	return nil
}

func seedStates() error {
	var count int64
	if err := DB.Model(&model.State{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("States already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	names := []string{
		"Andhra Pradesh", "Bihar", "Delhi", "Gujarat", "Karnataka",
		"Kerala", "Madhya Pradesh", "Maharashtra", "Punjab", "Rajasthan",
		"Tamil Nadu", "Telangana", "Uttar Pradesh", "West Bengal",
	}
	for _, name := range names {
		state := model.State{LookupFields: model.LookupFields{Name: name, Active: true}}
		if err := DB.Create(&state).Error; err != nil {
			return err
		}
	}

	logger.Info("States seeded successfully", map[string]interface{}{
		"total_states": len(names),
	})
	return nil
}

func seedAdminUser() error {
	var count int64
	if err := DB.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := util.HashPassword("admin@123")
	if err != nil {
		return err
	}

	var adminRole model.Role
	var roleID *uint
	if err := DB.Where("name = ?", "admin").First(&adminRole).Error; err == nil {
		roleID = &adminRole.ID
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	admin := model.User{
		Username:     "admin",
		Email:        "admin@localhost",
		PasswordHash: hash,
		FullName:     "Administrator",
		RoleID:       roleID,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Bootstrap admin user created", map[string]interface{}{
		"username": admin.Username,
	})
	return nil
}
