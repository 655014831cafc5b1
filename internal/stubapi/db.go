package stubapi

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/khetconnect/admin-panel/internal/hash"
)

// InitDB opens the sqlite store (":memory:" in tests) and migrates the
// emulator's tables.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&Operator{}, &Farmer{}, &Product{}, &Checkout{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Seed creates an operator account plus a few rows so a fresh dev instance
// has something to render.
func Seed(db *gorm.DB, email, password string) error {
	pwhash, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	op := Operator{Email: email, PasswordHash: pwhash}
	if err := db.Where("email = ?", email).FirstOrCreate(&op).Error; err != nil {
		return fmt.Errorf("seed operator: %w", err)
	}

	var farmers int64
	db.Model(&Farmer{}).Count(&farmers)
	if farmers > 0 {
		return nil
	}

	rows := []any{
		&Farmer{ExtID: newExtID(), Name: "Ravi", Phone: "9876543210", Address: "Pune", LandSize: "2 acres", Crops: "Wheat", CreatedAt: time.Now()},
		&Product{ExtID: newExtID(), ProductName: "Tomatoes", Description: "Fresh farm tomatoes", Price: 40, ProductImg: "tomatoes.jpg", Catagory: "Vegetables", CreatedAt: time.Now()},
		&Checkout{ExtID: newExtID(), User: "anita", TotalAmount: 120, PaymentStatus: "Pending", CreatedAt: time.Now()},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			return fmt.Errorf("seed row: %w", err)
		}
	}
	return nil
}
