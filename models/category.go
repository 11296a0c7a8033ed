package models

import "gorm.io/gorm"

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}

// CategoryCount is the sidebar view of a category: name, slug and how many
// products it holds across every variant table.
type CategoryCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int64  `json:"count"`
}

// CategoriesWithCounts sums products over all registered variant tables
// per category. Variant tables are independent, so each gets its own
// count query; category lists are small, so the extra round trips are fine.
func CategoriesWithCounts(db *gorm.DB) ([]CategoryCount, error) {
	var categories []Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}

	counts := make([]CategoryCount, 0, len(categories))
	for _, cat := range categories {
		var total int64
		for _, kind := range VariantKinds() {
			var n int64
			if err := db.Model(variantModel(kind)).
				Where("category_id = ?", cat.ID).
				Count(&n).Error; err != nil {
				return nil, err
			}
			total += n
		}
		counts = append(counts, CategoryCount{Name: cat.Name, Slug: cat.Slug, Count: total})
	}
	return counts, nil
}
