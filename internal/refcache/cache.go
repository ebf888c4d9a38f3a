package refcache

import (
	"fmt"
	"strings"
)

// Kind 主数据实体类型（封闭枚举）
type Kind string

const (
	KindGroup     Kind = "group"
	KindBrand     Kind = "brand"
	KindCountry   Kind = "country"
	KindCurrency  Kind = "currency"
	KindWarranty  Kind = "warranty"
	KindSupplier  Kind = "supplier"
	KindDesign    Kind = "design"
	KindMaterial  Kind = "material"
	KindUV        Kind = "uv"
	KindCoating   Kind = "coating"
	KindColor     Kind = "color"
	KindLensIndex Kind = "lensindex"
	KindFrame     Kind = "frame"
	KindFrameType Kind = "frametype"
	KindShape     Kind = "shape"
	KindVe        Kind = "ve"
	KindTemple    Kind = "temple"
	KindTax       Kind = "tax"
)

// AllKinds 全部实体类型，按加载顺序
var AllKinds = []Kind{
	KindGroup, KindBrand, KindCountry, KindCurrency, KindWarranty,
	KindSupplier, KindDesign, KindMaterial, KindUV, KindCoating,
	KindColor, KindLensIndex, KindFrame, KindFrameType, KindShape,
	KindVe, KindTemple, KindTax,
}

// 这些类型在编码缺失时允许按显示名称回退索引
var nameIndexedKinds = map[Kind]bool{
	KindBrand:    true,
	KindWarranty: true,
}

// Entry 主数据记录
type Entry struct {
	ID   int64
	Code string
	Name string
}

// Source 主数据来源（由 store 实现）
type Source interface {
	ListReference(kind Kind) ([]Entry, error)
	CreateReference(kind Kind, code, name string) (int64, error)
}

// Cache 一次导入会话的主数据快照
// 构建后只读，仅 GetOrCreate 会在提交期间插入新建记录避免重复创建
type Cache struct {
	source Source
	byCode map[Kind]map[string]int64
	codeOf map[Kind]map[int64]string
}

// Load 从记录存储一次性加载全部主数据
func Load(source Source) (*Cache, error) {
	c := &Cache{
		source: source,
		byCode: make(map[Kind]map[string]int64, len(AllKinds)),
		codeOf: make(map[Kind]map[int64]string, len(AllKinds)),
	}

	for _, kind := range AllKinds {
		entries, err := source.ListReference(kind)
		if err != nil {
			return nil, fmt.Errorf("load reference data %s: %w", kind, err)
		}

		codes := make(map[string]int64, len(entries))
		ids := make(map[int64]string, len(entries))
		for _, e := range entries {
			// 重复编码后加载者覆盖，数据质量问题不在此处理
			if key := Normalize(e.Code); key != "" {
				codes[key] = e.ID
				ids[e.ID] = e.Code
			}
			if nameIndexedKinds[kind] && e.Name != "" {
				codes[Normalize(e.Name)] = e.ID
			}
		}
		c.byCode[kind] = codes
		c.codeOf[kind] = ids
	}

	return c, nil
}

// Normalize 编码归一化：去首尾空白并转大写
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup 按编码查找记录，未命中返回 ok=false，从不报错
func (c *Cache) Lookup(kind Kind, code string) (int64, bool) {
	key := Normalize(code)
	if key == "" {
		return 0, false
	}
	id, ok := c.byCode[kind][key]
	return id, ok
}

// Code 按 ID 反查编码（用于编码分配时取镜片折射率短码）
func (c *Cache) Code(kind Kind, id int64) (string, bool) {
	code, ok := c.codeOf[kind][id]
	return code, ok
}

// Put 将新建记录写回快照，同一会话内后续查找即可命中
func (c *Cache) Put(kind Kind, code string, id int64) {
	key := Normalize(code)
	if key == "" {
		return
	}
	c.byCode[kind][key] = id
	c.codeOf[kind][id] = code
}

// GetOrCreate 查找记录，未命中时在存储中创建并写回快照
func (c *Cache) GetOrCreate(kind Kind, code, name string) (int64, error) {
	if id, ok := c.Lookup(kind, code); ok {
		return id, nil
	}

	id, err := c.source.CreateReference(kind, code, name)
	if err != nil {
		return 0, fmt.Errorf("create %s %q: %w", kind, code, err)
	}
	c.Put(kind, code, id)
	return id, nil
}
