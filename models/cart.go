package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRef points at any product variant by (kind, id). No per-variant
// foreign key: new variant tables plug in without touching cart rows.
type ProductRef struct {
	Kind string `gorm:"column:product_kind;not null" json:"kind"`
	ID   uint   `gorm:"column:product_id;not null" json:"id"`
}

// RefOf builds the stored reference for a variant instance.
func RefOf(v ProductVariant) ProductRef {
	return ProductRef{Kind: v.VariantKind(), ID: v.VariantID()}
}

type Cart struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	CustomerID       *uint           `gorm:"index" json:"customer_id"` // nil for anonymous carts
	Items            []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalQuantity    int             `gorm:"not null;default:0" json:"total_quantity"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(9,2);not null;default:0" json:"total_price"`
	InOrder          bool            `gorm:"not null;default:false;index" json:"in_order"`
	ForAnonymousUser bool            `gorm:"not null;default:false" json:"for_anonymous_user"`
	OwnerKey         string          `gorm:"index;not null" json:"-"` // opaque identity the cart was opened for
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CartID     uint            `gorm:"index;not null" json:"cart_id"`
	ProductRef ProductRef      `gorm:"embedded" json:"product"`
	Title      string          `json:"title"` // display copy of the product title
	Quantity   int             `gorm:"not null" json:"quantity"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(9,2);not null" json:"subtotal"`
	AddedAt    time.Time       `json:"added_at"`
}

// Recompute sets the line subtotal from the referenced product's current
// price. Quantity must be positive; remove the line instead of zeroing it.
func (i *CartItem) Recompute(price decimal.Decimal) error {
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Subtotal = price.Mul(decimal.NewFromInt(int64(i.Quantity)))
	return nil
}

// Recalc rebuilds the cached totals from the full current line set. Not
// incremental on purpose: summing from scratch keeps the totals right no
// matter which line mutation ran before it, and it is idempotent.
func (c *Cart) Recalc(items []CartItem) {
	total := decimal.Zero
	qty := 0
	for _, item := range items {
		qty += item.Quantity
		total = total.Add(item.Subtotal)
	}
	c.TotalQuantity = qty
	c.TotalPrice = total
}
