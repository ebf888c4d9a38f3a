package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"opticat/internal/model"
	"opticat/internal/template"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadTemplate 下载指定分类的录入模板
// GET /api/templates/:kind
func (h *Handler) DownloadTemplate(c *gin.Context) {
	kind := model.ProductKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown template kind"})
		return
	}

	data, err := template.Generate(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", template.Filename(kind)))
	c.Data(http.StatusOK, xlsxContentType, data)
}
