package validator

import (
	"fmt"
	"strconv"
	"strings"

	"opticat/internal/model"
	"opticat/internal/reader"
	"opticat/internal/refcache"
)

// Issue 一条校验结果，Row 为原始表格行号（跨行问题为 nil）
type Issue struct {
	Row     *int   `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Outcome 一次会话的全部校验结果
type Outcome struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Valid 无错误即可提交，警告不阻塞
func (o *Outcome) Valid() bool {
	return len(o.Errors) == 0
}

// NameChecker 批量查询已存在的产品名称（由 store 实现）
type NameChecker interface {
	ExistingNames(names []string) (map[string]bool, error)
}

// ValidateAll 校验全部数据行：各检查独立累积，不因单项失败中断该行
func ValidateAll(cache *refcache.Cache, names NameChecker, rows []reader.Row, kind model.ProductKind) (*Outcome, error) {
	out := &Outcome{}

	if err := checkDuplicates(out, names, rows); err != nil {
		return nil, err
	}

	for _, row := range rows {
		checkRequired(out, row, kind)
		checkNumeric(out, row, kind)
		checkForeignKeys(out, cache, row, kind)

		if !row.Has(reader.ImageHeader) {
			out.Warnings = append(out.Warnings, Issue{
				Row:     rowRef(row.SheetRow),
				Field:   reader.ImageHeader,
				Message: "No image provided",
			})
		}
	}

	return out, nil
}

// checkRequired 必填表头必须存在且非空
func checkRequired(out *Outcome, row reader.Row, kind model.ProductKind) {
	required := append(append([]string{}, commonRequired...), kindRequired[kind]...)
	for _, field := range required {
		if !row.Has(field) {
			out.Errors = append(out.Errors, Issue{
				Row:     rowRef(row.SheetRow),
				Message: fmt.Sprintf("Required field '%s' is missing or empty", field),
			})
		}
	}
}

// checkNumeric 声明为数值的列必须可解析，失败报告原始值
func checkNumeric(out *Outcome, row reader.Row, kind model.ProductKind) {
	for _, field := range priceFields {
		value := row.Get(field)
		if value == "" {
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			out.Errors = append(out.Errors, Issue{
				Row:     rowRef(row.SheetRow),
				Message: fmt.Sprintf("Field '%s' must be a number, got: %s", field, value),
			})
		}
	}

	switch kind {
	case model.KindOptical:
		for _, field := range opticalIntFields {
			value := row.Get(field)
			if value == "" {
				continue
			}
			if _, err := strconv.Atoi(value); err != nil {
				out.Errors = append(out.Errors, Issue{
					Row:     rowRef(row.SheetRow),
					Message: fmt.Sprintf("Field '%s' must be an integer, got: %s", field, value),
				})
			}
		}
	case model.KindAccessory:
		for _, field := range accessoryFloatFields {
			value := row.Get(field)
			if value == "" {
				continue
			}
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				out.Errors = append(out.Errors, Issue{
					Row:     rowRef(row.SheetRow),
					Message: fmt.Sprintf("Field '%s' must be a number, got: %s", field, value),
				})
			}
		}
	}
}

// checkForeignKeys 引用主数据的列必须能在缓存中解析到记录
func checkForeignKeys(out *Outcome, cache *refcache.Cache, row reader.Row, kind model.ProductKind) {
	checks := append(append([]fkCheck{}, commonFKChecks...), kindFKChecks[kind]...)
	for _, check := range checks {
		value := row.Get(check.Header)
		if value == "" {
			continue
		}
		if _, ok := cache.Lookup(check.Kind, value); !ok {
			out.Errors = append(out.Errors, Issue{
				Row:     rowRef(row.SheetRow),
				Field:   check.Header,
				Message: fmt.Sprintf("%s not found: '%s'", check.Display, value),
			})
		}
	}

	// 多值列按逗号拆分后逐项检查
	for _, check := range kindMultiFKChecks[kind] {
		value := row.Get(check.Header)
		if value == "" {
			continue
		}
		for _, token := range strings.Split(value, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if _, ok := cache.Lookup(check.Kind, token); !ok {
				out.Errors = append(out.Errors, Issue{
					Row:     rowRef(row.SheetRow),
					Field:   check.Header,
					Message: fmt.Sprintf("%s not found: '%s'", check.Display, token),
				})
			}
		}
	}
}

// checkDuplicates 批次内产品名去重，并以单次批量查询对照已存在产品
func checkDuplicates(out *Outcome, names NameChecker, rows []reader.Row) error {
	seen := make(map[string]int)
	var order []string

	for _, row := range rows {
		name := row.Get("FullName")
		if name == "" {
			continue
		}
		if prev, ok := seen[name]; ok {
			out.Errors = append(out.Errors, Issue{
				Field:   "FullName",
				Message: fmt.Sprintf("Duplicate product name '%s' found in rows %d and %d", name, prev, row.SheetRow),
			})
			continue
		}
		seen[name] = row.SheetRow
		order = append(order, name)
	}

	if len(order) == 0 {
		return nil
	}

	existing, err := names.ExistingNames(order)
	if err != nil {
		return fmt.Errorf("check existing product names: %w", err)
	}
	for _, name := range order {
		if existing[name] {
			out.Errors = append(out.Errors, Issue{
				Field:   "FullName",
				Message: fmt.Sprintf("Product '%s' already exists in database (row %d)", name, seen[name]),
			})
		}
	}

	return nil
}

func rowRef(row int) *int {
	return &row
}
