package controllers

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/models"
	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-gonic/gin"
)

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatOptionalPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

// DownloadInventoryExcel exports the full inventory as an Excel workbook.
func DownloadInventoryExcel(c *gin.Context) {
	utils.LogInfo("DownloadInventoryExcel called")

	var items []models.Item
	if err := config.DB.Preload("Category").
		Order("created_at DESC").Order("id DESC").
		Find(&items).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch items", err)
		return
	}
	utils.LogDebug("Exporting %d items to Excel", len(items))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		utils.InternalServerError(c, "Failed to create Excel sheet", err)
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("StuffKeeper - Inventory Export")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"ID", "Name", "Category", "Status", "Quantity", "Price", "Location", "Brand", "Model", "Purchase Date", "Expiry Date", "Tags"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, item := range items {
		categoryName := uncategorizedLabel
		if item.Category != nil {
			categoryName = item.Category.Name
		}

		row := sheet.AddRow()
		row.AddCell().SetInt(int(item.ID))
		row.AddCell().SetString(item.Name)
		row.AddCell().SetString(categoryName)
		row.AddCell().SetString(item.Status.Label())
		row.AddCell().SetInt(item.Quantity)
		row.AddCell().SetString(formatOptionalPrice(item.Price))
		row.AddCell().SetString(item.Location)
		row.AddCell().SetString(item.Brand)
		row.AddCell().SetString(item.Model)
		row.AddCell().SetString(formatOptionalDate(item.PurchaseDate))
		row.AddCell().SetString(formatOptionalDate(item.ExpiryDate))
		row.AddCell().SetString(item.Tags)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=inventory_%s.xlsx", time.Now().Format("2006-01-02")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
	}
}

// DownloadInventoryPDF exports the statistics aggregate as a PDF summary.
func DownloadInventoryPDF(c *gin.Context) {
	utils.LogInfo("DownloadInventoryPDF called")

	stats, err := collectItemStatistics(config.DB)
	if err != nil {
		utils.InternalServerError(c, "Failed to compute statistics", err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "StuffKeeper - Inventory Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Totals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total items: %d", stats.TotalItems))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total value: %.2f", stats.TotalValue))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Items by status")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, row := range stats.StatusCounts {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", row.Label, row.Count))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Top categories")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, row := range stats.CategoryCounts {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", row.Category, row.Count))
		pdf.Ln(7)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=inventory_summary_%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
	}
}
