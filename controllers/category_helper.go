package controllers

import (
	"fmt"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/models"
	"github.com/stuffkeeper/stuffkeeper/utils"
)

// maxCategoryDepth bounds the parent-chain walk so pre-existing bad data
// cannot loop the cycle check forever.
const maxCategoryDepth = 100

// wouldCreateCycle reports whether pointing categoryID at parentID would
// close a loop in the category tree.
func wouldCreateCycle(categoryID, parentID uint) (bool, error) {
	current := parentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		if current == categoryID {
			return true, nil
		}

		var parent models.Category
		if err := config.DB.Select("id", "parent_id").First(&parent, current).Error; err != nil {
			return false, fmt.Errorf("failed to walk category chain: %w", err)
		}
		if parent.ParentID == nil {
			return false, nil
		}
		current = *parent.ParentID
	}
	return true, fmt.Errorf("category chain deeper than %d levels", maxCategoryDepth)
}

// CreateDefaultCategory seeds the fallback "uncategorized" bucket if no
// default category exists yet.
func CreateDefaultCategory() error {
	var count int64
	if err := config.DB.Model(&models.Category{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for default category: %w", err)
	}
	if count > 0 {
		return nil
	}

	category := models.Category{
		Name:        "Uncategorized",
		NameZh:      "未分类",
		NameEn:      "Uncategorized",
		Description: "Default bucket for items without a category",
		Color:       models.DefaultCategoryColor,
		IsActive:    true,
		IsDefault:   true,
		Version:     1,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		return fmt.Errorf("failed to create default category: %w", err)
	}

	utils.LogInfo("Created default category (id=%d)", category.ID)
	return nil
}
