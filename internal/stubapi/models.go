package stubapi

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage models for the emulator. JSON tags reproduce the deployed API's
// record shapes, Mongo-ish "_id" included; ids are dashless uuids standing in
// for ObjectIDs.

type Operator struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Farmer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ExtID     string    `gorm:"unique;not null"          json:"_id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Phone     string    `gorm:"not null"                 json:"phone"`
	Address   string    `gorm:"not null"                 json:"address"`
	LandSize  string    `json:"landSize"`
	Crops     string    `json:"crops"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ExtID       string    `gorm:"unique;not null"          json:"_id"`
	ProductName string    `gorm:"not null"                 json:"product_name"`
	Description string    `gorm:"not null"                 json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	ProductImg  string    `json:"product_img"`
	Catagory    string    `json:"catagory"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Checkout struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ExtID         string    `gorm:"unique;not null"          json:"_id"`
	User          string    `gorm:"not null"                 json:"user"`
	TotalAmount   float64   `gorm:"not null"                 json:"totalAmount"`
	PaymentStatus string    `gorm:"not null"                 json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newExtID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
