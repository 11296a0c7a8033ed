package cartControllers

import (
	"errors"
	"time"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"gorm.io/gorm"
)

// Owner identifies who a cart belongs to: an authenticated customer's
// identity or a guest session.
type Owner struct {
	Key       string
	Anonymous bool
}

// ActiveCart returns the owner's current (not yet ordered) cart, creating
// one on first interaction. There is exactly one active cart per owner.
func ActiveCart(db *gorm.DB, owner Owner) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").
		Where("owner_key = ? AND in_order = ?", owner.Key, false).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cart = models.Cart{OwnerKey: owner.Key, ForAnonymousUser: owner.Anonymous}
	if err := db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart resolves the product reference and merges it into the owner's
// active cart: an existing line gains qty, a missing one is created. The
// line subtotal and the cart totals are recomputed before anything is
// persisted, all inside one transaction.
func AddToCart(db *gorm.DB, owner Owner, ref models.ProductRef, qty int) (*models.Cart, error) {
	if qty <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = ActiveCart(tx, owner)
		if err != nil {
			return err
		}

		product, err := models.NewCatalog(tx).Resolve(ref)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_kind = ? AND product_id = ?",
			cart.ID, ref.Kind, ref.ID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:     cart.ID,
				ProductRef: ref,
				Title:      product.VariantTitle(),
				Quantity:   qty,
				AddedAt:    time.Now(),
			}
		case err != nil:
			return err
		default:
			item.Quantity += qty
		}

		if err := item.Recompute(product.VariantPrice()); err != nil {
			return err
		}
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return recalcCart(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity replaces a line's quantity. Zero or negative is rejected:
// callers remove the line instead.
func SetQuantity(db *gorm.DB, owner Owner, ref models.ProductRef, qty int) (*models.Cart, error) {
	if qty <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = ActiveCart(tx, owner)
		if err != nil {
			return err
		}

		product, err := models.NewCatalog(tx).Resolve(ref)
		if err != nil {
			return err
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_kind = ? AND product_id = ?",
			cart.ID, ref.Kind, ref.ID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProductNotFound
			}
			return err
		}

		item.Quantity = qty
		if err := item.Recompute(product.VariantPrice()); err != nil {
			return err
		}
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return recalcCart(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart deletes one line and recalculates the cart.
func RemoveFromCart(db *gorm.DB, owner Owner, ref models.ProductRef) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = ActiveCart(tx, owner)
		if err != nil {
			return err
		}

		result := tx.Where("cart_id = ? AND product_kind = ? AND product_id = ?",
			cart.ID, ref.Kind, ref.ID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrProductNotFound
		}
		return recalcCart(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart drops every line of the active cart.
func ClearCart(db *gorm.DB, owner Owner) (*models.Cart, error) {
	var cart *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		cart, err = ActiveCart(tx, owner)
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return recalcCart(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// recalcCart reloads the cart's full line set, rebuilds the cached totals
// and persists them. Runs after every line mutation, inside its transaction.
func recalcCart(tx *gorm.DB, cart *models.Cart) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cart.ID).Order("id").Find(&items).Error; err != nil {
		return err
	}
	cart.Recalc(items)
	cart.Items = items
	return tx.Model(cart).
		Updates(map[string]interface{}{
			"total_quantity": cart.TotalQuantity,
			"total_price":    cart.TotalPrice,
		}).Error
}
