package models

import (
	"errors"

	"gorm.io/gorm"
)

// Catalog resolves polymorphic product references against the variant
// tables. It is the only place that knows which kind lives in which table.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Resolve loads the exact variant instance a reference points at.
func (c *Catalog) Resolve(ref ProductRef) (ProductVariant, error) {
	return c.load(ref.Kind, "id = ?", ref.ID)
}

// ResolveBySlug is the detail-page lookup.
func (c *Catalog) ResolveBySlug(kind, slug string) (ProductVariant, error) {
	return c.load(kind, "slug = ?", slug)
}

func (c *Catalog) load(kind string, query string, arg interface{}) (ProductVariant, error) {
	switch kind {
	case KindNotebook:
		var n Notebook
		if err := c.first(&n, query, arg); err != nil {
			return nil, err
		}
		return &n, nil
	case KindSmartphone:
		var s Smartphone
		if err := c.first(&s, query, arg); err != nil {
			return nil, err
		}
		return &s, nil
	default:
		return nil, ErrProductNotFound
	}
}

func (c *Catalog) first(dest interface{}, query string, arg interface{}) error {
	err := c.db.Preload("Category").Where(query, arg).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

// Latest returns the main-page feed: each requested kind's products newest
// first, concatenated in argument order. Unknown kinds are skipped.
// When withRespectTo names one of the requested kinds, that kind's items
// are partitioned to the front; anything else leaves the feed untouched.
func (c *Catalog) Latest(kinds []string, withRespectTo string) ([]ProductVariant, error) {
	var products []ProductVariant
	for _, kind := range kinds {
		switch kind {
		case KindNotebook:
			var notebooks []Notebook
			if err := c.db.Preload("Category").Order("id DESC").Find(&notebooks).Error; err != nil {
				return nil, err
			}
			for i := range notebooks {
				products = append(products, &notebooks[i])
			}
		case KindSmartphone:
			var smartphones []Smartphone
			if err := c.db.Preload("Category").Order("id DESC").Find(&smartphones).Error; err != nil {
				return nil, err
			}
			for i := range smartphones {
				products = append(products, &smartphones[i])
			}
		}
	}
	return PartitionByKind(products, withRespectTo, kinds), nil
}

// PartitionByKind stably moves products of the named kind to the front,
// preserving relative order inside both groups. A kind that was not part of
// the request is a documented pass-through, not an error.
func PartitionByKind(products []ProductVariant, kind string, requested []string) []ProductVariant {
	if kind == "" || !containsKind(requested, kind) {
		return products
	}
	front := make([]ProductVariant, 0, len(products))
	rest := make([]ProductVariant, 0, len(products))
	for _, p := range products {
		if p.VariantKind() == kind {
			front = append(front, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(front, rest...)
}

func containsKind(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
