package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Karen-Karapetyan-20/Portfolio-2--Shop/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportCatalogToExcel writes the whole catalog as an xlsx workbook with
// one sheet per variant kind.
func ExportCatalogToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()

		var notebooks []models.Notebook
		if err := db.Preload("Category").Order("id").Find(&notebooks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notebooks"})
			return
		}
		if err := writeNotebookSheet(file, notebooks); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		var smartphones []models.Smartphone
		if err := db.Preload("Category").Order("id").Find(&smartphones).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch smartphones"})
			return
		}
		if err := writeSmartphoneSheet(file, smartphones); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=catalog.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func writeNotebookSheet(file *xlsx.File, notebooks []models.Notebook) error {
	sheet, err := file.AddSheet("Notebooks")
	if err != nil {
		return err
	}

	headers := []string{
		"ID", "Title", "Slug", "Category", "Price", "Diagonal", "DisplayType",
		"ProcessorFreq", "RAM", "Video", "TimeWithoutCharge", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, n := range notebooks {
		row := sheet.AddRow()
		row.AddCell().SetValue(n.ID)
		row.AddCell().SetValue(n.Title)
		row.AddCell().SetValue(n.Slug)
		row.AddCell().SetValue(n.Category.Name)
		row.AddCell().SetValue(n.Price.String())
		row.AddCell().SetValue(n.Diagonal)
		row.AddCell().SetValue(n.DisplayType)
		row.AddCell().SetValue(n.ProcessorFreq)
		row.AddCell().SetValue(n.RAM)
		row.AddCell().SetValue(n.Video)
		row.AddCell().SetValue(n.TimeWithoutCharge)
		row.AddCell().SetValue(n.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func writeSmartphoneSheet(file *xlsx.File, smartphones []models.Smartphone) error {
	sheet, err := file.AddSheet("Smartphones")
	if err != nil {
		return err
	}

	headers := []string{
		"ID", "Title", "Slug", "Category", "Price", "Diagonal", "DisplayType",
		"Resolution", "AccumVolume", "RAM", "SD", "SDVolumeMax",
		"MainCamMP", "FrontalCamMP", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, s := range smartphones {
		row := sheet.AddRow()
		row.AddCell().SetValue(s.ID)
		row.AddCell().SetValue(s.Title)
		row.AddCell().SetValue(s.Slug)
		row.AddCell().SetValue(s.Category.Name)
		row.AddCell().SetValue(s.Price.String())
		row.AddCell().SetValue(s.Diagonal)
		row.AddCell().SetValue(s.DisplayType)
		row.AddCell().SetValue(s.Resolution)
		row.AddCell().SetValue(s.AccumVolume)
		row.AddCell().SetValue(s.RAM)
		row.AddCell().SetValue(strconv.FormatBool(s.SD))
		if s.SDVolumeMax != nil {
			row.AddCell().SetValue(*s.SDVolumeMax)
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(s.MainCamMP)
		row.AddCell().SetValue(s.FrontalCamMP)
		row.AddCell().SetValue(s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
