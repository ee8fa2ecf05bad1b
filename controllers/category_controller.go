package controllers

import (
	"strconv"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/models"
	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// activeSubCategories preloads only active children, ordered like the list.
func activeSubCategories(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("sort_order").Order("name")
}

// GetCategories returns all active categories with their parent and active
// sub-categories, ordered by sort order then name.
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	var categories []models.Category
	if err := config.DB.
		Preload("Parent").
		Preload("SubCategories", activeSubCategories).
		Where("is_active = ?", true).
		Order("sort_order").Order("name").
		Find(&categories).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch categories", err)
		return
	}

	utils.LogDebug("Retrieved %d active categories", len(categories))
	utils.Success(c, "Categories retrieved successfully", gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategory returns one active category with parent, children and items.
func GetCategory(c *gin.Context) {
	utils.LogInfo("GetCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", "Category ID must be a valid number")
		return
	}

	var category models.Category
	if err := config.DB.
		Preload("Parent").
		Preload("SubCategories", activeSubCategories).
		Preload("Items").
		Where("id = ? AND is_active = ?", id, true).
		First(&category).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	utils.Success(c, "Category retrieved successfully", gin.H{"category": category})
}

// GetCategoryTree returns the active root categories with their active
// sub-categories.
func GetCategoryTree(c *gin.Context) {
	utils.LogInfo("GetCategoryTree called")

	var roots []models.Category
	if err := config.DB.
		Preload("SubCategories", activeSubCategories).
		Where("parent_id IS NULL AND is_active = ?", true).
		Order("sort_order").Order("name").
		Find(&roots).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch category tree", err)
		return
	}

	utils.LogDebug("Retrieved %d root categories", len(roots))
	utils.Success(c, "Category tree retrieved successfully", gin.H{
		"categories": roots,
		"count":      len(roots),
	})
}
