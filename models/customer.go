package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Customer is the shop-side profile behind an opaque auth identity.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"user_id"` // identity provider's subject
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}

// FindOrCreateCustomer looks up the profile for an identity, creating it on
// first purchase-related action.
func FindOrCreateCustomer(db *gorm.DB, userID, name string) (*Customer, error) {
	var customer Customer
	err := db.Where("user_id = ?", userID).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	customer = Customer{UserID: userID, Name: name}
	if err := db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
