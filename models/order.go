package models

import (
	"time"
)

type OrderStatus string
type BuyingType string

const (
	// Statuses advance strictly forward; completed is terminal.
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"

	BuyingTypeSelf     BuyingType = "self"
	BuyingTypeDelivery BuyingType = "delivery"
)

var statusRank = map[OrderStatus]int{
	OrderStatusNew:        0,
	OrderStatusInProgress: 1,
	OrderStatusReady:      2,
	OrderStatusCompleted:  3,
}

// CanTransition reports whether an order may move from one status to the
// next. Staying in place is not a transition, and nothing leaves completed.
func CanTransition(from, next OrderStatus) bool {
	f, ok := statusRank[from]
	if !ok {
		return false
	}
	n, ok := statusRank[next]
	if !ok {
		return false
	}
	return n > f
}

// ParseOrderStatus validates a client-supplied status name.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := statusRank[status]; !ok {
		return "", ErrInvalidTransition
	}
	return status, nil
}

// ParseBuyingType validates a buying type, defaulting empty to self-pickup.
func ParseBuyingType(s string) (BuyingType, error) {
	switch BuyingType(s) {
	case BuyingTypeSelf, BuyingTypeDelivery:
		return BuyingType(s), nil
	case "":
		return BuyingTypeSelf, nil
	default:
		return "", ErrInvalidTransition
	}
}

// Order is a placed, priced snapshot of a cart. The cart row survives but
// is frozen behind its in_order flag.
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Ref        string      `gorm:"uniqueIndex;not null" json:"ref"`
	CustomerID uint        `gorm:"not null;index" json:"customer_id"`
	Customer   Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	CartID     uint        `gorm:"not null" json:"cart_id"`
	Cart       Cart        `gorm:"foreignKey:CartID" json:"cart"`
	FirstName  string      `gorm:"not null" json:"first_name"`
	LastName   string      `gorm:"not null" json:"last_name"`
	Phone      string      `gorm:"not null" json:"phone"`
	Address    string      `json:"address"`
	Comment    string      `json:"comment"`
	Status     OrderStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
	BuyingType BuyingType  `gorm:"type:varchar(20);default:'self'" json:"buying_type"`
	CreatedAt  time.Time   `json:"created_at"`
	OrderDate  time.Time   `json:"order_date"` // requested hand-off date
}
