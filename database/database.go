package database

import (
	"fmt"
	"log"

	"chitrakalakar/config"
	"chitrakalakar/internal/domain/billing"
	"chitrakalakar/internal/domain/exhibitions"
	"chitrakalakar/internal/domain/featured"
	"chitrakalakar/internal/domain/orders"
	"chitrakalakar/internal/domain/users"
	"chitrakalakar/internal/domain/works"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	if err := SeedAdmin(DB); err != nil {
		log.Fatal("❌ Admin seed error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate is shared with the test setup, which runs it against SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&works.Artwork{},
		&exhibitions.Exhibition{},
		&orders.CustomOrder{},
		&featured.Artist{},
		&featured.Artwork{},
		&billing.Payment{},
	)
}

// SeedAdmin creates the default admin account on first boot.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&users.User{}).Where("email = ?", config.ADMIN_EMAIL).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pw := string(hashed)

	admin := users.User{
		Name:       "Admin",
		Email:      config.ADMIN_EMAIL,
		Password:   &pw,
		Role:       users.RoleAdmin,
		IsApproved: true,
		IsActive:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	fmt.Println("✅ Default admin user created:", config.ADMIN_EMAIL)
	return nil
}
