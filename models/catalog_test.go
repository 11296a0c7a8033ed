package models

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Category{}, &Notebook{}, &Smartphone{},
		&Cart{}, &CartItem{}, &Customer{}, &Order{},
	))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (notebooks Category, smartphones Category) {
	t.Helper()
	notebooks = Category{Name: "Notebooks", Slug: "notebooks"}
	smartphones = Category{Name: "Smartphones", Slug: "smartphones"}
	require.NoError(t, db.Create(&notebooks).Error)
	require.NoError(t, db.Create(&smartphones).Error)

	for i := 1; i <= 3; i++ {
		nb := Notebook{
			Product: Product{
				CategoryID:  notebooks.ID,
				Title:       fmt.Sprintf("Notebook %d", i),
				Slug:        fmt.Sprintf("notebook-%d", i),
				Price:       decimal.RequireFromString("50000.00"),
				Description: "test notebook",
			},
			Diagonal:          "15.6",
			DisplayType:       "IPS",
			ProcessorFreq:     "3.2 GHz",
			RAM:               "16 GB",
			Video:             "GeForce",
			TimeWithoutCharge: "6 hours",
		}
		require.NoError(t, db.Create(&nb).Error)
	}
	for i := 1; i <= 2; i++ {
		sp := Smartphone{
			Product: Product{
				CategoryID:  smartphones.ID,
				Title:       fmt.Sprintf("Smartphone %d", i),
				Slug:        fmt.Sprintf("smartphone-%d", i),
				Price:       decimal.RequireFromString("120000.00"),
				Description: "test smartphone",
			},
			Diagonal:     "6.5",
			DisplayType:  "OLED",
			Resolution:   "2400x1080",
			AccumVolume:  "4500 mAh",
			RAM:          "8 GB",
			SD:           true,
			MainCamMP:    "48 MP",
			FrontalCamMP: "12 MP",
		}
		require.NoError(t, db.Create(&sp).Error)
	}
	return notebooks, smartphones
}

func TestResolveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	variant, err := catalog.ResolveBySlug(KindNotebook, "notebook-2")
	require.NoError(t, err)

	ref := RefOf(variant)
	assert.Equal(t, KindNotebook, ref.Kind)

	resolved, err := catalog.Resolve(ref)
	require.NoError(t, err)
	assert.Equal(t, variant.VariantID(), resolved.VariantID())
	assert.Equal(t, "Notebook 2", resolved.VariantTitle())
	assert.True(t, resolved.VariantPrice().Equal(decimal.RequireFromString("50000.00")))
}

func TestResolveMissingProduct(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	catalog := NewCatalog(db)

	_, err := catalog.Resolve(ProductRef{Kind: KindNotebook, ID: 999})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = catalog.Resolve(ProductRef{Kind: "tablet", ID: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = catalog.ResolveBySlug(KindSmartphone, "no-such-slug")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLatestNewestFirstPerKind(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	products, err := NewCatalog(db).Latest([]string{KindNotebook, KindSmartphone}, "")
	require.NoError(t, err)
	require.Len(t, products, 5)

	// Notebooks first (argument order), each kind newest first.
	titles := make([]string, len(products))
	for i, p := range products {
		titles[i] = p.VariantTitle()
	}
	assert.Equal(t, []string{
		"Notebook 3", "Notebook 2", "Notebook 1",
		"Smartphone 2", "Smartphone 1",
	}, titles)
}

func TestLatestWithRespectTo(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	products, err := NewCatalog(db).Latest([]string{KindNotebook, KindSmartphone}, KindSmartphone)
	require.NoError(t, err)
	require.Len(t, products, 5)

	titles := make([]string, len(products))
	for i, p := range products {
		titles[i] = p.VariantTitle()
	}
	// Smartphones partitioned to the front, order inside each group kept.
	assert.Equal(t, []string{
		"Smartphone 2", "Smartphone 1",
		"Notebook 3", "Notebook 2", "Notebook 1",
	}, titles)
}

func TestLatestUnrequestedWithRespectToIsPassThrough(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	plain, err := NewCatalog(db).Latest([]string{KindNotebook, KindSmartphone}, "")
	require.NoError(t, err)
	reordered, err := NewCatalog(db).Latest([]string{KindNotebook, KindSmartphone}, "tablet")
	require.NoError(t, err)

	require.Len(t, reordered, len(plain))
	for i := range plain {
		assert.Equal(t, plain[i].VariantTitle(), reordered[i].VariantTitle())
	}
}

func TestPartitionByKindStable(t *testing.T) {
	products := []ProductVariant{
		&Notebook{Product: Product{ID: 3, Title: "n3"}},
		&Smartphone{Product: Product{ID: 9, Title: "s9"}},
		&Notebook{Product: Product{ID: 2, Title: "n2"}},
		&Smartphone{Product: Product{ID: 7, Title: "s7"}},
	}
	requested := []string{KindNotebook, KindSmartphone}

	out := PartitionByKind(products, KindSmartphone, requested)
	titles := make([]string, len(out))
	for i, p := range out {
		titles[i] = p.VariantTitle()
	}
	assert.Equal(t, []string{"s9", "s7", "n3", "n2"}, titles)

	// Unknown kind: untouched slice.
	same := PartitionByKind(products, "tablet", requested)
	assert.Equal(t, products, same)
}

func TestCategoriesWithCounts(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	counts, err := CategoriesWithCounts(db)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	assert.Equal(t, "notebooks", counts[0].Slug)
	assert.Equal(t, int64(3), counts[0].Count)
	assert.Equal(t, "smartphones", counts[1].Slug)
	assert.Equal(t, int64(2), counts[1].Count)
}
