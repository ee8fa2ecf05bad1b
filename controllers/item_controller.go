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

// ItemRequest represents the item creation/update request. Updates are a full
// replace: every mutable field is overwritten from the request.
type ItemRequest struct {
	Name         string     `json:"name"`
	SubCategory  string     `json:"sub_category"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Status       *int       `json:"status"`
	Location     string     `json:"location"`
	Notes        string     `json:"notes"`
	ImageURL     string     `json:"image_url"`
	Price        *float64   `json:"price"`
	Quantity     *int       `json:"quantity"`
	PurchaseDate *time.Time `json:"purchase_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	Condition    *int       `json:"condition"`
	Tags         string     `json:"tags"`
	CategoryID   *uint      `json:"category_id"`
	Version      int        `json:"version"`
}

func validateItemRequest(req *ItemRequest) utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, utils.FieldValidationError{Field: "name", Message: "item name is required"})
	}

	checks := []*utils.FieldValidationError{
		utils.ValidateOptionalString("name", req.Name, 100),
		utils.ValidateOptionalString("sub_category", req.SubCategory, 50),
		utils.ValidateOptionalString("brand", req.Brand, 50),
		utils.ValidateOptionalString("model", req.Model, 50),
		utils.ValidateOptionalString("location", req.Location, 100),
		utils.ValidateOptionalString("notes", req.Notes, 1000),
		utils.ValidateOptionalString("image_url", req.ImageURL, 2000),
		utils.ValidateOptionalString("tags", req.Tags, 100),
	}
	for _, check := range checks {
		if check != nil {
			errs = append(errs, *check)
		}
	}

	if req.Status != nil && !models.ItemStatus(*req.Status).Valid() {
		errs = append(errs, utils.FieldValidationError{Field: "status", Message: "status must be one of 0-6"})
	}
	if req.Price != nil && *req.Price < 0 {
		errs = append(errs, utils.FieldValidationError{Field: "price", Message: "price must not be negative"})
	}
	if req.Condition != nil {
		if check := utils.ValidateIntRange("condition", *req.Condition, 0, 10); check != nil {
			errs = append(errs, *check)
		}
	}
	if images := models.ParseImageList(req.ImageURL); len(images) > models.MaxImagesPerItem {
		errs = append(errs, utils.FieldValidationError{
			Field:   "image_url",
			Message: "an item may hold at most 10 images",
		})
	}

	return errs
}

// itemQuantity applies the quantity floor: non-positive values become 1.
func itemQuantity(req *ItemRequest) int {
	if req.Quantity == nil || *req.Quantity < 1 {
		return 1
	}
	return *req.Quantity
}

func itemStatus(req *ItemRequest) models.ItemStatus {
	if req.Status == nil {
		return models.StatusInUse
	}
	return models.ItemStatus(*req.Status)
}

// checkItemCategory verifies a requested category link points at an active
// category.
func checkItemCategory(categoryID uint) *utils.AppError {
	var category models.Category
	if err := config.DB.Where("id = ? AND is_active = ?", categoryID, true).First(&category).Error; err != nil {
		return utils.InvalidInputError("Category not found or inactive", err)
	}
	return nil
}

// GetItem returns one item with its resolved category.
func GetItem(c *gin.Context) {
	utils.LogInfo("GetItem called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid item ID format: %v", err)
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	var item models.Item
	if err := config.DB.Preload("Category").First(&item, id).Error; err != nil {
		utils.LogError("Item not found: %v", err)
		utils.NotFound(c, "Item not found")
		return
	}

	utils.Success(c, "Item retrieved successfully", gin.H{"item": item})
}

// CreateItem handles item creation
func CreateItem(c *gin.Context) {
	utils.LogInfo("CreateItem called")

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := validateItemRequest(&req); len(errs) > 0 {
		utils.LogError("Item validation failed: %v", errs)
		utils.ValidationError(c, "Invalid item data", errs)
		return
	}

	if req.CategoryID != nil {
		if appErr := checkItemCategory(*req.CategoryID); appErr != nil {
			utils.LogError("Category check failed: %v", appErr)
			utils.RespondWithError(c, appErr)
			return
		}
	}

	item := models.Item{
		Name:         strings.TrimSpace(req.Name),
		SubCategory:  req.SubCategory,
		Brand:        req.Brand,
		Model:        req.Model,
		Status:       itemStatus(&req),
		Location:     req.Location,
		Notes:        req.Notes,
		ImageURL:     models.ParseImageList(req.ImageURL).Encode(),
		Price:        req.Price,
		Quantity:     itemQuantity(&req),
		PurchaseDate: req.PurchaseDate,
		ExpiryDate:   req.ExpiryDate,
		Condition:    req.Condition,
		Tags:         req.Tags,
		CategoryID:   req.CategoryID,
		Version:      1,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.InternalServerError(c, "Failed to create item", err)
		return
	}

	utils.LogInfo("Item created successfully: %s (id=%d)", item.Name, item.ID)
	utils.Created(c, "Item created successfully", gin.H{"item": item})
}

// UpdateItem overwrites all mutable fields of an item. A stale version in
// the request is rejected with 409 so concurrent edits never overwrite each
// other silently.
func UpdateItem(c *gin.Context) {
	utils.LogInfo("UpdateItem called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid item ID format: %v", err)
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	var item models.Item
	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("Item not found: %v", err)
		utils.NotFound(c, "Item not found")
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if errs := validateItemRequest(&req); len(errs) > 0 {
		utils.LogError("Item validation failed: %v", errs)
		utils.ValidationError(c, "Invalid item data", errs)
		return
	}

	if req.CategoryID != nil {
		if appErr := checkItemCategory(*req.CategoryID); appErr != nil {
			utils.LogError("Category check failed: %v", appErr)
			utils.RespondWithError(c, appErr)
			return
		}
	}

	expectedVersion := req.Version
	if expectedVersion == 0 {
		expectedVersion = item.Version
	}

	result := config.DB.Model(&models.Item{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(itemUpdates(&req, expectedVersion))
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to update item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.LogError("Concurrent modification detected for item %d", id)
		utils.Conflict(c, "Item was modified by another request", "Refetch the item and retry")
		return
	}

	if err := config.DB.Preload("Category").First(&item, id).Error; err != nil {
		utils.InternalServerError(c, "Failed to reload item", err)
		return
	}

	utils.LogInfo("Item updated successfully: %s (id=%d)", item.Name, item.ID)
	utils.Success(c, "Item updated successfully", gin.H{"item": item})
}

// itemUpdates builds the full-replace column map for an item update.
func itemUpdates(req *ItemRequest, expectedVersion int) map[string]interface{} {
	return map[string]interface{}{
		"name":          strings.TrimSpace(req.Name),
		"sub_category":  req.SubCategory,
		"brand":         req.Brand,
		"model":         req.Model,
		"status":        itemStatus(req),
		"location":      req.Location,
		"notes":         req.Notes,
		"image_url":     models.ParseImageList(req.ImageURL).Encode(),
		"price":         req.Price,
		"quantity":      itemQuantity(req),
		"purchase_date": req.PurchaseDate,
		"expiry_date":   req.ExpiryDate,
		"condition":     req.Condition,
		"tags":          req.Tags,
		"category_id":   req.CategoryID,
		"version":       expectedVersion + 1,
		"updated_at":    time.Now(),
	}
}

// DeleteItem physically removes an item. Items have no soft-delete.
func DeleteItem(c *gin.Context) {
	utils.LogInfo("DeleteItem called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid item ID format: %v", err)
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	var item models.Item
	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("Item not found: %v", err)
		utils.NotFound(c, "Item not found")
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete item", err)
		return
	}

	utils.LogInfo("Item deleted successfully: %s (id=%d)", item.Name, item.ID)
	utils.Success(c, "Item deleted successfully", nil)
}
