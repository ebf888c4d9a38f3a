package codegen

import (
	"fmt"
	"sort"
)

// Request 一条编码分配请求，0 表示对应段缺失
type Request struct {
	GroupID     int64
	BrandID     int64
	LensIndexID int64
}

// CodeSource 查询已存在的前缀匹配编码（由 store 实现）
type CodeSource interface {
	CodesByPrefix(prefix string) ([]string, error)
}

// Allocator 确定性产品编码分配器
// indexCode 按 ID 解析折射率短码（通常由主数据缓存提供）
type Allocator struct {
	source    CodeSource
	indexCode func(id int64) (string, bool)
}

// NewAllocator 创建编码分配器
func NewAllocator(source CodeSource, indexCode func(id int64) (string, bool)) *Allocator {
	return &Allocator{source: source, indexCode: indexCode}
}

// Prefix 由请求三元组推导 8 位前缀
func (a *Allocator) Prefix(req Request) string {
	groupPart := "00"
	if req.GroupID > 0 {
		groupPart = fmt.Sprintf("%02d", req.GroupID)
	}

	brandPart := "000"
	if req.BrandID > 0 {
		brandPart = fmt.Sprintf("%03d", req.BrandID)
	}

	indexPart := "000"
	if req.LensIndexID > 0 && a.indexCode != nil {
		if code, ok := a.indexCode(req.LensIndexID); ok && code != "" {
			if len(code) > 3 {
				code = code[:3]
			}
			for len(code) < 3 {
				code += "0"
			}
			indexPart = code
		}
	}

	return groupPart + brandPart + indexPart
}

// Allocate 为单条请求分配编码
func (a *Allocator) Allocate(req Request) (string, error) {
	codes, err := a.AllocateBatch([]Request{req})
	if err != nil {
		return "", err
	}
	return codes[0], nil
}

// AllocateBatch 按请求顺序批量分配编码
// 按前缀分组，每个前缀只查询一次已有编码，之后在内存中推进序列，
// 保证同批次同前缀的编码严格递增且互不相同。
func (a *Allocator) AllocateBatch(reqs []Request) ([]string, error) {
	codes := make([]string, len(reqs))

	groups := make(map[string][]int)
	var prefixes []string
	for i, req := range reqs {
		prefix := a.Prefix(req)
		if _, ok := groups[prefix]; !ok {
			prefixes = append(prefixes, prefix)
		}
		groups[prefix] = append(groups[prefix], i)
	}

	for _, prefix := range prefixes {
		existing, err := a.source.CodesByPrefix(prefix)
		if err != nil {
			return nil, fmt.Errorf("find existing codes for prefix %s: %w", prefix, err)
		}

		seq, err := firstFree(prefix, existing)
		if err != nil {
			return nil, err
		}

		for j, idx := range groups[prefix] {
			codes[idx] = prefix + seq
			if j == len(groups[prefix])-1 {
				break
			}
			seq, err = NextSequence(seq)
			if err != nil {
				return nil, err
			}
		}
	}

	return codes, nil
}

// firstFree 求前缀下第一个可用序列：取已有编码中字典序最大的后缀并前进一步
func firstFree(prefix string, existing []string) (string, error) {
	var suffixes []string
	for _, code := range existing {
		if len(code) >= CodeLength && code[:PrefixLength] == prefix {
			suffixes = append(suffixes, code[PrefixLength:CodeLength])
		}
	}
	if len(suffixes) == 0 {
		return FirstSequence, nil
	}
	sort.Strings(suffixes)
	return NextSequence(suffixes[len(suffixes)-1])
}
