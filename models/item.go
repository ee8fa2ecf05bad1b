package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ItemStatus is the lifecycle state of a tracked possession. The numeric
// values are part of the wire contract and must not be reordered.
type ItemStatus int

const (
	StatusInUse ItemStatus = iota
	StatusIdle
	StatusDamaged
	StatusLost
	StatusSold
	StatusDonated
	StatusExpired
)

var statusLabels = map[ItemStatus]string{
	StatusInUse:   "in_use",
	StatusIdle:    "idle",
	StatusDamaged: "damaged",
	StatusLost:    "lost",
	StatusSold:    "sold",
	StatusDonated: "donated",
	StatusExpired: "expired",
}

// Valid reports whether s is one of the defined status values.
func (s ItemStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable name for a status, used in reports.
func (s ItemStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "unknown"
}

// Item represents a tracked physical possession. Items are hard-deleted on
// explicit delete, unlike categories.
type Item struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	SubCategory  string     `json:"sub_category" gorm:"size:50"`
	Brand        string     `json:"brand" gorm:"size:50"`
	Model        string     `json:"model" gorm:"size:50"`
	Status       ItemStatus `json:"status" gorm:"default:0"`
	Location     string     `json:"location" gorm:"size:100"`
	Notes        string     `json:"notes" gorm:"size:1000"`
	ImageURL     string     `json:"image_url" gorm:"size:2000"`
	Price        *float64   `json:"price"`
	Quantity     int        `json:"quantity" gorm:"default:1"`
	PurchaseDate *time.Time `json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Condition    *int       `json:"condition"`
	Tags         string     `json:"tags" gorm:"size:100"`
	CategoryID   *uint      `json:"category_id"`
	Category     *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Version      int        `json:"version" gorm:"default:1"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Images returns the item's ordered image references.
func (i *Item) Images() ImageList {
	return ParseImageList(i.ImageURL)
}

// SetImages re-encodes the ordered image references into the stored field.
func (i *Item) SetImages(images ImageList) {
	i.ImageURL = images.Encode()
}

// BeforeSave hook to normalize free-text fields and enforce the quantity floor
func (i *Item) BeforeSave(tx *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	return nil
}
