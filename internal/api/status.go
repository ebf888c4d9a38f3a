package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized  bool `json:"initialized"`  // 是否已有产品数据
	ProductCount int  `json:"productCount"` // 产品总数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountProducts()
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{
		Initialized:  count > 0,
		ProductCount: count,
	})
}
