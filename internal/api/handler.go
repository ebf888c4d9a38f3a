package api

import (
	"github.com/gin-gonic/gin"

	"opticat/internal/config"
	"opticat/internal/importer"
	"opticat/internal/store"
)

// Handler 导入 API 处理器
type Handler struct {
	store    *store.Store
	orch     *importer.Orchestrator
	sessions *sessionRegistry
}

// NewHandler 创建 API 处理器
func NewHandler(store *store.Store, cfg config.ImportConfig) *Handler {
	return &Handler{
		store:    store,
		orch:     importer.NewOrchestrator(store, cfg),
		sessions: newSessionRegistry(cfg.SessionTTL()),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 导入会话
	router.POST("/import/upload", h.Upload)
	router.GET("/import/:id", h.GetSession)
	router.POST("/import/:id/commit", h.Commit)
	router.POST("/import/:id/reset", h.Reset)

	// 录入模板下载
	router.GET("/templates/:kind", h.DownloadTemplate)
}
