package template

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"opticat/internal/model"
)

// 配色与前端展示一致
const (
	colorPrimary  = "2E5BBA"
	colorWarning  = "F5A623"
	colorLight    = "F8F9FA"
	colorWhite    = "FFFFFF"
	colorText     = "2C3E50"
	colorBorder   = "E1E8ED"
	colorHeaderBg = "34495E"

	colorManual    = "4A90E2" // 蓝：手工填写
	colorCodeRule  = "F5A623" // 黄：按编码规则填写
	colorMultiCode = "388E3C" // 绿：编码规则且可多值
)

const (
	sheetName = "Sheet1"
	fontName  = "Segoe UI"

	// 空白数据区预置行数
	blankDataRows = 100
)

// sheetSpec 单个分类模板的静态描述
type sheetSpec struct {
	title       string
	label       string
	headersVI   []string
	headersEN   []string
	widths      []float64
	codeFields  map[string]bool
	multiFields map[string]bool
}

func fieldSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func sheetFor(kind model.ProductKind) (sheetSpec, bool) {
	switch kind {
	case model.KindLens:
		return lensSheet, true
	case model.KindOptical:
		return opticalSheet, true
	case model.KindAccessory:
		return accessorySheet, true
	}
	return sheetSpec{}, false
}

// Generate 生成指定分类的进货登记模板工作簿
func Generate(kind model.ProductKind) ([]byte, error) {
	spec, ok := sheetFor(kind)
	if !ok {
		return nil, fmt.Errorf("no template for product kind %q", kind)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, spec, kind); err != nil {
		return nil, fmt.Errorf("failed to build %s template: %w", kind, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize template: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename 模板下载文件名
func Filename(kind model.ProductKind) string {
	return fmt.Sprintf("import_template_%s.xlsx", kind)
}

func writeSheet(f *excelize.File, spec sheetSpec, kind model.ProductKind) error {
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	for row, height := range map[int]float64{1: 30, 2: 22, 3: 35, 6: 22, 7: 22, 8: 22, 9: 25, 10: 25} {
		if err := f.SetRowHeight(sheetName, row, height); err != nil {
			return err
		}
	}

	if err := writeMerged(f, st.company, "A1", "C1", companyName); err != nil {
		return err
	}
	if err := writeMerged(f, st.address, "A2", "C2", companyAddress); err != nil {
		return err
	}
	if err := writeMerged(f, st.title, "D3", "L3", spec.title); err != nil {
		return err
	}
	// 徽标预留区
	if err := writeMerged(f, st.logo, "A3", "C8", ""); err != nil {
		return err
	}

	// 填写方式图例
	legends := []struct {
		cell  string
		text  string
		style int
	}{
		{"G6", legendManual, st.legendManual},
		{"G7", legendCode, st.legendCode},
		{"G8", legendMultiCode, st.legendMulti},
		{"D8", typeLabel, st.typeLabel},
		{"E8", spec.label, st.typeValue},
	}
	for _, l := range legends {
		if err := writeCell(f, l.cell, l.text, l.style); err != nil {
			return err
		}
	}

	// 镜架模板额外标注性别取值
	if kind == model.KindOptical {
		for i, text := range genderLegend {
			cell := fmt.Sprintf("Q%d", 6+i)
			if err := writeCell(f, cell, text, st.gender); err != nil {
				return err
			}
		}
	}

	if err := writeHeaders(f, st, spec); err != nil {
		return err
	}
	if err := writeBlankRows(f, st, len(spec.headersEN)); err != nil {
		return err
	}

	return f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      3,
		YSplit:      10,
		TopLeftCell: "D11",
		ActivePane:  "bottomRight",
	})
}

// writeHeaders 第 9 行越南语表头、第 10 行英文表头（按填写方式着色）
func writeHeaders(f *excelize.File, st styles, spec sheetSpec) error {
	for col, header := range spec.headersVI {
		cell, err := excelize.CoordinatesToCellName(col+1, 9)
		if err != nil {
			return err
		}
		if err := writeCell(f, cell, header, st.headerVI); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		width := 15.0
		if col < len(spec.widths) {
			width = spec.widths[col]
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return err
		}
	}

	for col, header := range spec.headersEN {
		cell, err := excelize.CoordinatesToCellName(col+1, 10)
		if err != nil {
			return err
		}
		style := st.headerManual
		switch {
		case spec.codeFields[header]:
			style = st.headerCode
		case spec.multiFields[header]:
			style = st.headerMulti
		}
		if err := writeCell(f, cell, header, style); err != nil {
			return err
		}
	}
	return nil
}

// writeBlankRows 数据区预置奇偶交替底色的空行
func writeBlankRows(f *excelize.File, st styles, cols int) error {
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	for row := 11; row < 11+blankDataRows; row++ {
		if err := f.SetRowHeight(sheetName, row, 35); err != nil {
			return err
		}
		style := st.dataOdd
		if row%2 == 0 {
			style = st.dataEven
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), style); err != nil {
			return err
		}
	}
	return nil
}

func writeMerged(f *excelize.File, style int, from, to, value string) error {
	if err := f.MergeCell(sheetName, from, to); err != nil {
		return err
	}
	return writeCell(f, from, value, style)
}

func writeCell(f *excelize.File, cell string, value interface{}, style int) error {
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell, cell, style)
}

type styles struct {
	company      int
	address      int
	title        int
	logo         int
	legendManual int
	legendCode   int
	legendMulti  int
	typeLabel    int
	typeValue    int
	gender       int
	headerVI     int
	headerManual int
	headerCode   int
	headerMulti  int
	dataOdd      int
	dataEven     int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	centerWrap := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}
	thinBox := []excelize.Border{
		{Type: "left", Color: colorBorder, Style: 1},
		{Type: "right", Color: colorBorder, Style: 1},
		{Type: "top", Color: colorBorder, Style: 1},
		{Type: "bottom", Color: colorBorder, Style: 1},
	}

	if st.company, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 14, Bold: true, Color: colorPrimary},
		Fill:      fill(colorLight),
		Alignment: center,
		Border:    []excelize.Border{{Type: "bottom", Color: colorPrimary, Style: 2}},
	}); err != nil {
		return st, err
	}
	if st.address, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 10, Italic: true, Color: colorText},
		Fill:      fill(colorLight),
		Alignment: center,
	}); err != nil {
		return st, err
	}
	if st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 18, Bold: true, Color: colorWhite},
		Fill:      fill(colorPrimary),
		Alignment: center,
		Border: []excelize.Border{
			{Type: "left", Color: colorPrimary, Style: 2},
			{Type: "right", Color: colorPrimary, Style: 2},
			{Type: "top", Color: colorPrimary, Style: 2},
			{Type: "bottom", Color: colorPrimary, Style: 2},
		},
	}); err != nil {
		return st, err
	}
	if st.logo, err = f.NewStyle(&excelize.Style{
		Fill: fill(colorWhite),
		Border: []excelize.Border{
			{Type: "left", Color: colorPrimary, Style: 2},
			{Type: "right", Color: colorPrimary, Style: 2},
			{Type: "top", Color: colorPrimary, Style: 2},
			{Type: "bottom", Color: colorPrimary, Style: 2},
		},
	}); err != nil {
		return st, err
	}

	legend := func(color string) *excelize.Style {
		return &excelize.Style{
			Font:      &excelize.Font{Family: fontName, Size: 12, Bold: true, Color: colorWhite},
			Fill:      fill(color),
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Border:    thinBox,
		}
	}
	if st.legendManual, err = f.NewStyle(legend(colorManual)); err != nil {
		return st, err
	}
	if st.legendCode, err = f.NewStyle(legend(colorCodeRule)); err != nil {
		return st, err
	}
	if st.legendMulti, err = f.NewStyle(legend(colorMultiCode)); err != nil {
		return st, err
	}

	if st.typeLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 12, Bold: true, Color: colorWhite},
		Fill:      fill(colorHeaderBg),
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.typeValue, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 12, Bold: true, Color: colorWhite},
		Fill:      fill(colorHeaderBg),
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.gender, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 11, Bold: true, Color: colorText},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return st, err
	}

	if st.headerVI, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 11, Bold: true, Color: colorText},
		Fill:      fill(colorWarning),
		Alignment: centerWrap,
		Border: []excelize.Border{
			{Type: "top", Color: colorPrimary, Style: 2},
			{Type: "left", Color: colorBorder, Style: 1},
			{Type: "right", Color: colorBorder, Style: 1},
			{Type: "bottom", Color: colorBorder, Style: 1},
		},
	}); err != nil {
		return st, err
	}

	headerEN := func(color string) *excelize.Style {
		return &excelize.Style{
			Font:      &excelize.Font{Family: fontName, Size: 10, Bold: true, Color: colorWhite},
			Fill:      fill(color),
			Alignment: centerWrap,
			Border: []excelize.Border{
				{Type: "left", Color: colorBorder, Style: 1},
				{Type: "right", Color: colorBorder, Style: 1},
				{Type: "top", Color: colorBorder, Style: 1},
				{Type: "bottom", Color: colorPrimary, Style: 2},
			},
		}
	}
	if st.headerManual, err = f.NewStyle(headerEN(colorManual)); err != nil {
		return st, err
	}
	if st.headerCode, err = f.NewStyle(headerEN(colorCodeRule)); err != nil {
		return st, err
	}
	if st.headerMulti, err = f.NewStyle(headerEN(colorMultiCode)); err != nil {
		return st, err
	}

	if st.dataOdd, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 10, Color: colorText},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBox,
	}); err != nil {
		return st, err
	}
	if st.dataEven, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 10, Color: colorText},
		Fill:      fill(colorLight),
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBox,
	}); err != nil {
		return st, err
	}

	return st, nil
}
