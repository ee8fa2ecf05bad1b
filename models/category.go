package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultCategoryColor is applied when a category is created without one.
const DefaultCategoryColor = "#007bff"

// Category groups items into a self-referential tree. Categories are never
// physically removed through the API; deletion flips IsActive to false.
type Category struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"size:50;not null"`
	NameZh        string     `json:"name_zh" gorm:"size:50"`
	NameEn        string     `json:"name_en" gorm:"size:50"`
	Description   string     `json:"description" gorm:"size:200"`
	Icon          string     `json:"icon" gorm:"size:50"`
	Color         string     `json:"color" gorm:"size:7"`
	ParentID      *uint      `json:"parent_id"`
	Parent        *Category  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	SubCategories []Category `json:"sub_categories,omitempty" gorm:"foreignKey:ParentID"`
	Items         []Item     `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
	SortOrder     int        `json:"sort_order" gorm:"default:0"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	IsDefault     bool       `json:"is_default" gorm:"default:false"`
	Version       int        `json:"version" gorm:"default:1"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeSave hook to keep names and colors in canonical form
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}
