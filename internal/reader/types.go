package reader

import "opticat/internal/model"

// Cell 单元格值：文本或嵌入图片（二者取其一）
type Cell struct {
	Text  string
	Image []byte
}

// Row 一行已解析数据，SheetRow 为表格中的原始行号（1 起始）
type Row struct {
	SheetRow int
	Cells    map[string]Cell
}

// Get 按表头取文本值，缺失返回空串
func (r Row) Get(header string) string {
	return r.Cells[header].Text
}

// Has 该表头下是否有值（文本或图片）
func (r Row) Has(header string) bool {
	c, ok := r.Cells[header]
	if !ok {
		return false
	}
	return c.Text != "" || len(c.Image) > 0
}

// Image 按表头取图片数据
func (r Row) Image(header string) []byte {
	return r.Cells[header].Image
}

// Result 文件解析结果
type Result struct {
	Kind     model.ProductKind `json:"kind"`
	Headers  []string          `json:"headers"`
	Rows     []Row             `json:"-"`
	Filename string            `json:"filename"`
	RowCount int               `json:"rowCount"`
}
