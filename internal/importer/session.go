package importer

import (
	"time"

	"github.com/google/uuid"

	"opticat/internal/model"
	"opticat/internal/reader"
	"opticat/internal/validator"
)

// State 导入会话状态
type State string

const (
	StateUpload  State = "upload"
	StatePreview State = "preview"
	StateDone    State = "done"
)

// Session 一次导入会话：显式传递于各流水线阶段之间
// 上传创建，Parse 进入 preview，Commit 进入 done，Reset 回到 upload
type Session struct {
	ID       string `json:"id"`
	State    State  `json:"state"`
	Filename string `json:"filename"`
	FileData []byte `json:"-"`

	Kind    model.ProductKind `json:"kind,omitempty"`
	Headers []string          `json:"headers,omitempty"`
	Rows    []reader.Row      `json:"-"`

	Outcome *validator.Outcome `json:"validation,omitempty"`
	Preview []PreviewRow       `json:"preview,omitempty"`

	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Messages     []string `json:"messages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewSession 创建处于 upload 状态的新会话
func NewSession(data []byte, filename string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		State:     StateUpload,
		Filename:  filename,
		FileData:  data,
		CreatedAt: time.Now(),
	}
}

// Reset 丢弃解析结果，回到 upload 状态
func (s *Session) Reset() {
	s.State = StateUpload
	s.Kind = ""
	s.Headers = nil
	s.Rows = nil
	s.Outcome = nil
	s.Preview = nil
	s.SuccessCount = 0
	s.ErrorCount = 0
	s.Messages = nil
}

// PreviewRow 预览行（含未保留的试算编码），供上传后人工确认
type PreviewRow struct {
	RowNumber int    `json:"rowNumber"` // 原始表格行号
	Code      string `json:"code"`      // 试算编码，提交时重新分配
	FullName  string `json:"fullName"`
	EngName   string `json:"engName,omitempty"`
	TradeName string `json:"tradeName,omitempty"`
	Group     string `json:"group,omitempty"`
	Brand     string `json:"brand,omitempty"`

	RetailPrice    float64 `json:"retailPrice"`
	WholesalePrice float64 `json:"wholesalePrice"`
	CostPrice      float64 `json:"costPrice"`

	// 镜片列
	Index    string `json:"index,omitempty"`
	Design1  string `json:"design1,omitempty"`
	Material string `json:"material,omitempty"`

	// 镜架列
	Sku       string `json:"sku,omitempty"`
	Model     string `json:"model,omitempty"`
	FrameType string `json:"frameType,omitempty"`

	HasError     bool   `json:"hasError"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Report 提交结果报告
type Report struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Messages     []string `json:"messages"`
}
