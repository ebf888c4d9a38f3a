package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"opticat/internal/importer"
	"opticat/internal/reader"
)

// 上传文件大小上限
const maxUploadBytes = 20 << 20

// Upload 上传表格并解析为预览
// POST /api/import/upload
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" && ext != ".xlsm" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .xlsx files are supported"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	if len(data) > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	sess := importer.NewSession(data, header.Filename)
	if err := h.orch.Parse(sess); err != nil {
		if errors.Is(err, reader.ErrUnclassifiable) || errors.Is(err, reader.ErrMissingHeaders) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.sessions.put(sess)
	c.JSON(http.StatusOK, sess)
}

// GetSession 查询会话当前状态与预览
// GET /api/import/:id
func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Commit 提交会话，分批写入产品
// POST /api/import/:id/commit
func (h *Handler) Commit(c *gin.Context) {
	sess, ok := h.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	report, err := h.orch.Commit(sess)
	switch {
	case errors.Is(err, importer.ErrNotInPreview):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, importer.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "validation": sess.Outcome})
		return
	case errors.Is(err, importer.ErrImportFailedCompletely):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "report": report})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.sessions.touch(sess)
	c.JSON(http.StatusOK, report)
}

// Reset 放弃预览，会话回到 upload 状态
// POST /api/import/:id/reset
func (h *Handler) Reset(c *gin.Context) {
	sess, ok := h.sessions.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	if err := h.orch.Reset(sess); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.sessions.touch(sess)
	c.JSON(http.StatusOK, sess)
}
