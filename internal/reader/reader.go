package reader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"opticat/internal/model"
)

// 模板固定布局：D3 为标题单元格，第 10 行为英文表头，数据从第 11 行开始
const (
	titleCell        = "D3"
	defaultHeaderRow = 10
	defaultDataRow   = 11

	// ImageHeader 图片列表头，文本为空时回退读取锚定在该单元格的图片
	ImageHeader = "Image"
)

var (
	// ErrUnclassifiable 标题单元格无法识别产品分类
	ErrUnclassifiable = errors.New("unclassifiable input")
	// ErrMissingHeaders 表头行为空
	ErrMissingHeaders = errors.New("missing headers")
)

// 分类关键词（越南语模板标题，含去声调写法）
var kindKeywords = []struct {
	kind     model.ProductKind
	keywords []string
}{
	{model.KindLens, []string{"MẮT", "MAT"}},
	{model.KindOptical, []string{"GỌNG", "GONG", "KÍNH", "KINH"}},
	{model.KindAccessory, []string{"PHỤ KIỆN", "PHU KIEN"}},
}

// Options 解析参数
type Options struct {
	HeaderRow    int // 表头所在行
	DataStartRow int // 数据起始行
	MaxRows      int // 最多读取的数据行数
	MaxEmptyRows int // 连续空行达到此数即停止
}

// DefaultOptions 默认解析参数
func DefaultOptions() Options {
	return Options{
		HeaderRow:    defaultHeaderRow,
		DataStartRow: defaultDataRow,
		MaxRows:      1000,
		MaxEmptyRows: 5,
	}
}

// Parse 解析上传的 Excel 文件
func Parse(data []byte, filename string, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open excel file %q: %w", filename, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("excel file %q has no sheets", filename)
	}

	kind, err := detectKind(f, sheet)
	if err != nil {
		return nil, err
	}

	headers, err := parseHeaders(f, sheet, opts.HeaderRow)
	if err != nil {
		return nil, err
	}

	rows, err := parseDataRows(f, sheet, headers, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:     kind,
		Headers:  headers,
		Rows:     rows,
		Filename: filename,
		RowCount: len(rows),
	}, nil
}

// detectKind 从标题单元格识别产品分类
func detectKind(f *excelize.File, sheet string) (model.ProductKind, error) {
	title, err := f.GetCellValue(sheet, titleCell)
	if err != nil {
		return "", fmt.Errorf("read title cell %s: %w", titleCell, err)
	}
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: cell %s is empty", ErrUnclassifiable, titleCell)
	}

	upper := strings.ToUpper(title)
	for _, entry := range kindKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(upper, kw) {
				return entry.kind, nil
			}
		}
	}

	return "", fmt.Errorf("%w: unknown product type in cell %s: %q", ErrUnclassifiable, titleCell, title)
}

// parseHeaders 从表头行自左向右读取列名，遇到第一个空单元格停止
func parseHeaders(f *excelize.File, sheet string, headerRow int) ([]string, error) {
	var headers []string
	for col := 1; ; col++ {
		cell, err := excelize.CoordinatesToCellName(col, headerRow)
		if err != nil {
			return nil, err
		}
		value, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return nil, fmt.Errorf("read header cell %s: %w", cell, err)
		}
		value = strings.TrimSpace(value)
		if value == "" {
			break
		}
		headers = append(headers, value)
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: no headers found in row %d", ErrMissingHeaders, headerRow)
	}
	return headers, nil
}

// parseDataRows 读取数据行，连续空行达到上限或到达行数上限即停止
func parseDataRows(f *excelize.File, sheet string, headers []string, opts Options) ([]Row, error) {
	var rows []Row
	emptyRows := 0

	for rowNum := opts.DataStartRow; rowNum < opts.DataStartRow+opts.MaxRows && emptyRows < opts.MaxEmptyRows; rowNum++ {
		cells := make(map[string]Cell)
		empty := true

		for colIdx, header := range headers {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			value, err := f.GetCellValue(sheet, cellName)
			if err != nil {
				return nil, fmt.Errorf("read cell %s: %w", cellName, err)
			}
			value = strings.TrimSpace(value)
			if value != "" {
				cells[header] = Cell{Text: value}
				empty = false
				continue
			}

			// 图片列：文本为空时检查锚定在该单元格的嵌入图片
			if header == ImageHeader {
				if img := cellPicture(f, sheet, cellName); img != nil {
					cells[header] = Cell{Image: img}
					empty = false
				}
			}
		}

		if empty {
			emptyRows++
			continue
		}
		emptyRows = 0
		rows = append(rows, Row{SheetRow: rowNum, Cells: cells})
	}

	return rows, nil
}

// cellPicture 返回锚定在指定单元格的第一张图片，无图片返回 nil
func cellPicture(f *excelize.File, sheet, cell string) []byte {
	pics, err := f.GetPictures(sheet, cell)
	if err != nil || len(pics) == 0 {
		return nil
	}
	return pics[0].File
}
