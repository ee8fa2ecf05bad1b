package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/models"
	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-gonic/gin"
)

// CategoryRequest represents the category creation/update request
type CategoryRequest struct {
	Name        string `json:"name"`
	NameZh      string `json:"name_zh"`
	NameEn      string `json:"name_en"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	ParentID    *uint  `json:"parent_id"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
	IsDefault   *bool  `json:"is_default"`
	Version     int    `json:"version"`
}

func validateCategoryRequest(req *CategoryRequest) utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors
	checks := []*utils.FieldValidationError{
		utils.ValidateRequiredString("name", req.Name, 50),
		utils.ValidateOptionalString("name_zh", req.NameZh, 50),
		utils.ValidateOptionalString("name_en", req.NameEn, 50),
		utils.ValidateOptionalString("description", req.Description, 200),
		utils.ValidateOptionalString("icon", req.Icon, 50),
		utils.ValidateHexColor("color", req.Color),
	}
	for _, check := range checks {
		if check != nil {
			errs = append(errs, *check)
		}
	}
	return errs
}

// validateParentLink checks that a proposed parent exists, is active, and
// does not close a cycle through categoryID. categoryID is 0 on create.
func validateParentLink(categoryID uint, parentID uint) *utils.AppError {
	if categoryID != 0 && parentID == categoryID {
		return utils.InvalidInputError("A category cannot be its own parent", nil)
	}

	var parent models.Category
	if err := config.DB.Where("id = ? AND is_active = ?", parentID, true).First(&parent).Error; err != nil {
		return utils.InvalidInputError("Parent category not found or inactive", err)
	}

	if categoryID != 0 {
		cyclic, err := wouldCreateCycle(categoryID, parentID)
		if err != nil {
			return utils.InternalError("Failed to check category hierarchy", err)
		}
		if cyclic {
			return utils.InvalidInputError("Parent link would create a cycle in the category tree", nil)
		}
	}
	return nil
}

// CreateCategory handles category creation
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := validateCategoryRequest(&req); len(errs) > 0 {
		utils.LogError("Category validation failed: %v", errs)
		utils.ValidationError(c, "Invalid category data", errs)
		return
	}

	if req.ParentID != nil {
		if appErr := validateParentLink(0, *req.ParentID); appErr != nil {
			utils.LogError("Parent validation failed: %v", appErr)
			utils.RespondWithError(c, appErr)
			return
		}
	}

	category := models.Category{
		Name:        strings.TrimSpace(req.Name),
		NameZh:      req.NameZh,
		NameEn:      req.NameEn,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
		IsActive:    true,
		IsDefault:   req.IsDefault != nil && *req.IsDefault,
		Version:     1,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.InternalServerError(c, "Failed to create category", err)
		return
	}

	utils.LogInfo("Category created successfully: %s (id=%d)", category.Name, category.ID)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory handles category updates with an optimistic concurrency
// check: a stale version in the request is rejected with 409.
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", "Category ID must be a valid number")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := validateCategoryRequest(&req); len(errs) > 0 {
		utils.LogError("Category validation failed: %v", errs)
		utils.ValidationError(c, "Invalid category data", errs)
		return
	}

	if req.ParentID != nil {
		if appErr := validateParentLink(uint(id), *req.ParentID); appErr != nil {
			utils.LogError("Parent validation failed: %v", appErr)
			utils.RespondWithError(c, appErr)
			return
		}
	}

	expectedVersion := req.Version
	if expectedVersion == 0 {
		expectedVersion = category.Version
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = models.DefaultCategoryColor
	}
	isActive := category.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	isDefault := category.IsDefault
	if req.IsDefault != nil {
		isDefault = *req.IsDefault
	}

	updates := map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"name_zh":     req.NameZh,
		"name_en":     req.NameEn,
		"description": req.Description,
		"icon":        req.Icon,
		"color":       color,
		"parent_id":   req.ParentID,
		"sort_order":  req.SortOrder,
		"is_active":   isActive,
		"is_default":  isDefault,
		"version":     expectedVersion + 1,
		"updated_at":  time.Now(),
	}

	result := config.DB.Model(&models.Category{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to update category", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.LogError("Concurrent modification detected for category %d", id)
		utils.Conflict(c, "Category was modified by another request", "Refetch the category and retry")
		return
	}

	if err := config.DB.First(&category, id).Error; err != nil {
		utils.InternalServerError(c, "Failed to reload category", err)
		return
	}

	utils.LogInfo("Category updated successfully: %s (id=%d)", category.Name, category.ID)
	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory soft-deletes a category by flipping its active flag.
// Deletion is blocked while active sub-categories or linked items exist.
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", "Category ID must be a valid number")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	var childCount int64
	if err := config.DB.Model(&models.Category{}).
		Where("parent_id = ? AND is_active = ?", id, true).
		Count(&childCount).Error; err != nil {
		utils.InternalServerError(c, "Failed to check sub-categories", err)
		return
	}
	if childCount > 0 {
		utils.LogError("Cannot delete category %d with %d active sub-categories", id, childCount)
		utils.Conflict(c, "Cannot delete a category that has sub-categories", gin.H{
			"sub_category_count": childCount,
		})
		return
	}

	var itemCount int64
	if err := config.DB.Model(&models.Item{}).
		Where("category_id = ?", id).
		Count(&itemCount).Error; err != nil {
		utils.InternalServerError(c, "Failed to check category usage", err)
		return
	}
	if itemCount > 0 {
		utils.LogError("Cannot delete category %d with %d items", id, itemCount)
		utils.Conflict(c, "Cannot delete a category that has items", gin.H{
			"item_count": itemCount,
		})
		return
	}

	updates := map[string]interface{}{
		"is_active":  false,
		"version":    category.Version + 1,
		"updated_at": time.Now(),
	}
	if err := config.DB.Model(&category).Updates(updates).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete category", err)
		return
	}

	utils.LogInfo("Category deactivated successfully: %s (id=%d)", category.Name, category.ID)
	utils.Success(c, "Category deleted successfully", nil)
}
