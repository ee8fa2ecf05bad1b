package controllers

import (
	"strconv"
	"strings"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/models"
	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-gonic/gin"
)

// GetItems returns the filtered item list. All three criteria are optional
// and combine: exact category match, exact status match, then a
// case-insensitive substring search across name, brand, model, notes and
// tags (an item matches when the term appears in any of them). Results are
// ordered by creation time, newest first; the full matching set is returned
// without pagination.
func GetItems(c *gin.Context) {
	utils.LogInfo("GetItems called with query params: %v", c.Request.URL.Query())

	query := config.DB.Model(&models.Item{}).Preload("Category")

	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.LogError("Invalid categoryId: %v", err)
			utils.BadRequest(c, "Invalid categoryId", "categoryId must be a valid number")
			return
		}
		query = query.Where("category_id = ?", categoryID)
	}

	if raw := c.Query("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil || !models.ItemStatus(status).Valid() {
			utils.LogError("Invalid status filter: %q", raw)
			utils.BadRequest(c, "Invalid status", "status must be one of 0-6")
			return
		}
		query = query.Where("status = ?", status)
	}

	if term := c.Query("searchTerm"); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(notes) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var items []models.Item
	// Secondary id ordering keeps the result deterministic when items share
	// a creation timestamp.
	if err := query.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch items", err)
		return
	}

	utils.LogDebug("Retrieved %d items", len(items))
	utils.Success(c, "Items retrieved successfully", gin.H{
		"items": items,
		"count": len(items),
	})
}
