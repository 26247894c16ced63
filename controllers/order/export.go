package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sph0ngl3/Pazarm/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "ProfileID", "MarketID", "Status", "DeliveryType",
			"Subtotal", "Total", "LoyaltyEarned", "LoyaltySpent", "PaymentMethod",
			"ItemCount", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.ProfileID)
			row.AddCell().SetValue(o.MarketID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.DeliveryType))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(o.LoyaltyEarned)
			row.AddCell().SetValue(o.LoyaltySpent)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
