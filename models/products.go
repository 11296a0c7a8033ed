package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant kind names. Cart and order rows reference products by
// (kind, id), so adding a new product table never touches their schema.
const (
	KindNotebook   = "notebook"
	KindSmartphone = "smartphone"
)

// Product holds the fields every variant shares. It is embedded, never
// persisted on its own.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"category"`
	Title       string          `gorm:"not null" json:"title"`
	Slug        string          `gorm:"uniqueIndex;not null" json:"slug"`
	Price       decimal.Decimal `gorm:"type:decimal(9,2);not null" json:"price"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SpecRow is one label/value line of a product's spec table.
type SpecRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductVariant is the contract every concrete product type satisfies.
type ProductVariant interface {
	VariantKind() string
	VariantID() uint
	VariantTitle() string
	VariantSlug() string
	VariantPrice() decimal.Decimal
	Spec() []SpecRow
}

type Notebook struct {
	Product
	Diagonal          string `gorm:"not null" json:"diagonal"`
	DisplayType       string `gorm:"not null" json:"display_type"`
	ProcessorFreq     string `gorm:"not null" json:"processor_freq"`
	RAM               string `gorm:"not null" json:"ram"`
	Video             string `gorm:"not null" json:"video"`
	TimeWithoutCharge string `gorm:"not null" json:"time_without_charge"`
}

func (n *Notebook) VariantKind() string { return KindNotebook }
func (n *Notebook) VariantID() uint { return n.ID }
func (n *Notebook) VariantTitle() string { return n.Title }
func (n *Notebook) VariantSlug() string { return n.Slug }
func (n *Notebook) VariantPrice() decimal.Decimal { return n.Price }

func (n *Notebook) Spec() []SpecRow {
	return []SpecRow{
		{"Diagonal", n.Diagonal},
		{"Display type", n.DisplayType},
		{"Processor frequency", n.ProcessorFreq},
		{"RAM", n.RAM},
		{"Video card", n.Video},
		{"Battery life", n.TimeWithoutCharge},
	}
}

type Smartphone struct {
	Product
	Diagonal     string  `gorm:"not null" json:"diagonal"`
	DisplayType  string  `gorm:"not null" json:"display_type"`
	Resolution   string  `gorm:"not null" json:"resolution"`
	AccumVolume  string  `gorm:"not null" json:"accum_volume"`
	RAM          string  `gorm:"not null" json:"ram"`
	SD           bool    `json:"sd"`
	SDVolumeMax  *string `json:"sd_volume_max,omitempty"`
	MainCamMP    string  `gorm:"not null" json:"main_cam_mp"`
	FrontalCamMP string  `gorm:"not null" json:"frontal_cam_mp"`
}

func (s *Smartphone) VariantKind() string { return KindSmartphone }
func (s *Smartphone) VariantID() uint { return s.ID }
func (s *Smartphone) VariantTitle() string { return s.Title }
func (s *Smartphone) VariantSlug() string { return s.Slug }
func (s *Smartphone) VariantPrice() decimal.Decimal { return s.Price }

// Spec lists the smartphone's display rows. The SD-card capacity row only
// appears when the phone actually has an SD slot.
func (s *Smartphone) Spec() []SpecRow {
	rows := []SpecRow{
		{"Diagonal", s.Diagonal},
		{"Display type", s.DisplayType},
		{"Resolution", s.Resolution},
		{"Battery volume", s.AccumVolume},
		{"RAM", s.RAM},
		{"SD card support", boolLabel(s.SD)},
	}
	if s.SD && s.SDVolumeMax != nil {
		rows = append(rows, SpecRow{"Max SD card volume", *s.SDVolumeMax})
	}
	rows = append(rows,
		SpecRow{"Main camera", s.MainCamMP},
		SpecRow{"Front camera", s.FrontalCamMP},
	)
	return rows
}

func boolLabel(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// VariantKinds returns the registered kind names in display order.
func VariantKinds() []string {
	return []string{KindNotebook, KindSmartphone}
}

// variantModel maps a kind name to a zero model for GORM queries.
// Returns nil for unknown kinds; callers check with KnownKind first.
func variantModel(kind string) interface{} {
	switch kind {
	case KindNotebook:
		return &Notebook{}
	case KindSmartphone:
		return &Smartphone{}
	default:
		return nil
	}
}

// KnownKind reports whether kind names a registered variant table.
func KnownKind(kind string) bool {
	return variantModel(kind) != nil
}
