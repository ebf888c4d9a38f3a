package reader

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/xuri/excelize/v2"

	"opticat/internal/model"
)

// buildWorkbook 按模板布局生成测试文件：D3 标题、第 10 行表头、第 11 行起数据
func buildWorkbook(t *testing.T, title string, headers []string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetCellValue(sheet, "D3", title); err != nil {
		t.Fatalf("set title: %v", err)
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 10)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	for i, values := range rows {
		for col, value := range values {
			if value == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, 11+i)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParse_KindDetection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  model.ProductKind
	}{
		{"BẢNG NHẬP HÀNG MẮT", model.KindLens},
		{"bang nhap hang mat", model.KindLens},
		{"BẢNG NHẬP HÀNG GỌNG / KÍNH", model.KindOptical},
		{"NHAP KINH 2026", model.KindOptical},
		{"BẢNG NHẬP HÀNG PHỤ KIỆN", model.KindAccessory},
		{"phu kien thang 9", model.KindAccessory},
	}
	for _, c := range cases {
		data := buildWorkbook(t, c.title, []string{"Group", "FullName"}, [][]string{{"LK", "A"}})
		result, err := Parse(data, "test.xlsx", DefaultOptions())
		if err != nil {
			t.Fatalf("parse %q: %v", c.title, err)
		}
		if result.Kind != c.want {
			t.Fatalf("title %q: kind = %s, want %s", c.title, result.Kind, c.want)
		}
	}
}

// 镜片关键词优先于镜架关键词：标题同时含 MẮT 与 KÍNH 时按镜片处理
func TestParse_KindDetection_LensWinsOverOptical(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, "BẢNG NHẬP HÀNG MẮT KÍNH", []string{"Group"}, [][]string{{"LK"}})
	result, err := Parse(data, "test.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.Kind != model.KindLens {
		t.Fatalf("kind = %s, want %s", result.Kind, model.KindLens)
	}
}

func TestParse_Unclassifiable(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"", "DANH SÁCH NHÂN VIÊN"} {
		data := buildWorkbook(t, title, []string{"Group"}, [][]string{{"LK"}})
		if _, err := Parse(data, "test.xlsx", DefaultOptions()); !errors.Is(err, ErrUnclassifiable) {
			t.Fatalf("title %q: expected ErrUnclassifiable, got %v", title, err)
		}
	}
}

func TestParse_MissingHeaders(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, "BẢNG NHẬP HÀNG MẮT", nil, nil)
	if _, err := Parse(data, "test.xlsx", DefaultOptions()); !errors.Is(err, ErrMissingHeaders) {
		t.Fatalf("expected ErrMissingHeaders, got %v", err)
	}
}

// 表头自左向右读取，遇到空列即停止，其后的列不参与解析
func TestParse_HeadersStopAtBlank(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "D3", "BẢNG NHẬP HÀNG MẮT")
	f.SetCellValue(sheet, "A10", "Group")
	f.SetCellValue(sheet, "B10", "FullName")
	// C10 留空
	f.SetCellValue(sheet, "D10", "Ignored")
	f.SetCellValue(sheet, "A11", "LK")
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	result, err := Parse(buf.Bytes(), "test.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(result.Headers) != 2 || result.Headers[0] != "Group" || result.Headers[1] != "FullName" {
		t.Fatalf("unexpected headers: %v", result.Headers)
	}
}

func TestParse_RowsTaggedWithSheetRow(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, "BẢNG NHẬP HÀNG MẮT", []string{"Group", "FullName"}, [][]string{
		{"LK", "Lens A"},
		{"", ""}, // 第 12 行为空，后续行号仍按表格行计
		{"LK", "Lens B"},
	})
	result, err := Parse(data, "test.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if result.RowCount != 2 {
		t.Fatalf("row count = %d, want 2", result.RowCount)
	}
	if result.Rows[0].SheetRow != 11 || result.Rows[1].SheetRow != 13 {
		t.Fatalf("sheet rows = %d, %d", result.Rows[0].SheetRow, result.Rows[1].SheetRow)
	}
	if got := result.Rows[1].Get("FullName"); got != "Lens B" {
		t.Fatalf("row 13 FullName = %q", got)
	}
}

func TestParse_StopsAfterConsecutiveEmptyRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"LK", "Lens A"}}
	for i := 0; i < 5; i++ {
		rows = append(rows, []string{"", ""})
	}
	// 超过连续空行阈值后的数据不再读取
	rows = append(rows, []string{"LK", "Lens Z"})

	data := buildWorkbook(t, "BẢNG NHẬP HÀNG MẮT", []string{"Group", "FullName"}, rows)
	result, err := Parse(data, "test.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.RowCount != 1 {
		t.Fatalf("row count = %d, want 1", result.RowCount)
	}
}

func TestParse_MaxRowsLimit(t *testing.T) {
	t.Parallel()

	var rows [][]string
	for i := 0; i < 30; i++ {
		rows = append(rows, []string{"LK", "Lens"})
	}
	opts := DefaultOptions()
	opts.MaxRows = 10

	data := buildWorkbook(t, "BẢNG NHẬP HÀNG MẮT", []string{"Group", "FullName"}, rows)
	result, err := Parse(data, "test.xlsx", opts)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.RowCount != 10 {
		t.Fatalf("row count = %d, want 10", result.RowCount)
	}
}

func TestParse_CellValuesTrimmed(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, "BẢNG NHẬP HÀNG MẮT", []string{"Group", "FullName"}, [][]string{
		{"  LK  ", "  Lens A  "},
	})
	result, err := Parse(data, "test.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := result.Rows[0].Get("Group"); got != "LK" {
		t.Fatalf("Group = %q, want trimmed", got)
	}
	if got := result.Rows[0].Get("FullName"); got != "Lens A" {
		t.Fatalf("FullName = %q, want trimmed", got)
	}
}

// pngBytes 生成一张可解码的 1x1 PNG 用于图片单元格
func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// Image 列文本为空时回退读取锚定在该单元格的嵌入图片
func TestParse_ImageCellFallback(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetCellValue(sheet, "D3", "BẢNG NHẬP HÀNG MẮT"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	for col, header := range []string{"Group", "FullName", "Image"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 10)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}

	// 第 11 行：文本列有值，Image 单元格只有嵌入图片
	_ = f.SetCellValue(sheet, "A11", "LK")
	_ = f.SetCellValue(sheet, "B11", "Lens A")
	img := pngBytes(t)
	if err := f.AddPictureFromBytes(sheet, "C11", &excelize.Picture{
		Extension: ".png",
		File:      img,
	}); err != nil {
		t.Fatalf("add picture: %v", err)
	}

	// 第 12 行：除嵌入图片外整行为空，仍应按数据行读取
	if err := f.AddPictureFromBytes(sheet, "C12", &excelize.Picture{
		Extension: ".png",
		File:      img,
	}); err != nil {
		t.Fatalf("add picture row 12: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	result, err := Parse(buf.Bytes(), "test.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}

	row := result.Rows[0]
	if !row.Has(ImageHeader) {
		t.Fatal("expected image cell to count as present")
	}
	if got := row.Image(ImageHeader); !bytes.Equal(got, img) {
		t.Fatalf("image payload = %d bytes, want %d", len(got), len(img))
	}
	if row.Get(ImageHeader) != "" {
		t.Fatalf("image text = %q, want empty", row.Get(ImageHeader))
	}

	if got := result.Rows[1].Image(ImageHeader); !bytes.Equal(got, img) {
		t.Fatalf("picture-only row image = %d bytes, want %d", len(got), len(img))
	}
}

// Image 单元格同时有文本与图片时，文本优先，图片不再读取
func TestParse_ImageTextWinsOverPicture(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetCellValue(sheet, "D3", "BẢNG NHẬP HÀNG MẮT"); err != nil {
		t.Fatalf("set title: %v", err)
	}
	for col, header := range []string{"Group", "Image"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 10)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	_ = f.SetCellValue(sheet, "A11", "LK")
	_ = f.SetCellValue(sheet, "B11", "photo.jpg")
	if err := f.AddPictureFromBytes(sheet, "B11", &excelize.Picture{
		Extension: ".png",
		File:      pngBytes(t),
	}); err != nil {
		t.Fatalf("add picture: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	result, err := Parse(buf.Bytes(), "test.xlsx", DefaultOptions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	row := result.Rows[0]
	if got := row.Get(ImageHeader); got != "photo.jpg" {
		t.Fatalf("image text = %q, want photo.jpg", got)
	}
	if row.Image(ImageHeader) != nil {
		t.Fatal("picture must not be read when the cell has text")
	}
}
