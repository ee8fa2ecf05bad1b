package controllers

import (
	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/models"
	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// uncategorizedLabel buckets items without a category link in statistics.
const uncategorizedLabel = "uncategorized"

// StatusCount is one row of the per-status breakdown.
type StatusCount struct {
	Status models.ItemStatus `json:"status"`
	Label  string            `json:"label"`
	Count  int64             `json:"count"`
}

// CategoryCount is one row of the top-categories breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// InventoryStatistics is the statistics aggregate over the whole item set.
type InventoryStatistics struct {
	TotalItems     int64           `json:"total_items"`
	TotalValue     float64         `json:"total_value"`
	StatusCounts   []StatusCount   `json:"status_counts"`
	CategoryCounts []CategoryCount `json:"category_counts"`
}

// collectItemStatistics computes totals, the monetary value (price times
// quantity over priced items), the per-status counts, and the ten largest
// categories by item count.
func collectItemStatistics(db *gorm.DB) (*InventoryStatistics, error) {
	stats := &InventoryStatistics{
		StatusCounts:   []StatusCount{},
		CategoryCounts: []CategoryCount{},
	}

	if err := db.Model(&models.Item{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, utils.WrapError(err, "failed to count items")
	}

	valueRow := db.Model(&models.Item{}).
		Where("price IS NOT NULL").
		Select("COALESCE(SUM(price * quantity), 0)").
		Row()
	if err := valueRow.Scan(&stats.TotalValue); err != nil {
		return nil, utils.WrapError(err, "failed to sum item values")
	}

	var statusRows []StatusCount
	if err := db.Model(&models.Item{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&statusRows).Error; err != nil {
		return nil, utils.WrapError(err, "failed to count items by status")
	}
	for _, row := range statusRows {
		row.Label = row.Status.Label()
		stats.StatusCounts = append(stats.StatusCounts, row)
	}

	var categoryRows []CategoryCount
	if err := db.Table("items").
		Select("COALESCE(categories.name, '" + uncategorizedLabel + "') AS category, COUNT(*) AS count").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Group("COALESCE(categories.name, '" + uncategorizedLabel + "')").
		Order("count DESC").
		Limit(10).
		Scan(&categoryRows).Error; err != nil {
		return nil, utils.WrapError(err, "failed to count items by category")
	}
	stats.CategoryCounts = append(stats.CategoryCounts, categoryRows...)

	return stats, nil
}

// GetItemStatistics returns the statistics aggregate.
func GetItemStatistics(c *gin.Context) {
	utils.LogInfo("GetItemStatistics called")

	stats, err := collectItemStatistics(config.DB)
	if err != nil {
		utils.InternalServerError(c, "Failed to compute statistics", err)
		return
	}

	utils.LogDebug("Statistics: %d items, total value %.2f", stats.TotalItems, stats.TotalValue)
	utils.Success(c, "Statistics retrieved successfully", stats)
}
