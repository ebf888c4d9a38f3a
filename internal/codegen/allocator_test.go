package codegen

import (
	"errors"
	"testing"
)

type fakeCodeSource struct {
	codes   map[string][]string
	queries int
	err     error
}

func (f *fakeCodeSource) CodesByPrefix(prefix string) ([]string, error) {
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	return f.codes[prefix], nil
}

func indexCodes(codes map[int64]string) func(int64) (string, bool) {
	return func(id int64) (string, bool) {
		code, ok := codes[id]
		return code, ok
	}
}

func TestAllocator_Prefix(t *testing.T) {
	t.Parallel()

	a := NewAllocator(&fakeCodeSource{}, indexCodes(map[int64]string{
		7: "156",
		8: "16",
		9: "15678",
	}))

	cases := []struct {
		req  Request
		want string
	}{
		{Request{GroupID: 1, BrandID: 23, LensIndexID: 7}, "01023156"},
		{Request{GroupID: 1, BrandID: 23}, "01023000"},
		{Request{GroupID: 12, BrandID: 345, LensIndexID: 8}, "12345160"}, // 短码右补 0
		{Request{GroupID: 12, BrandID: 345, LensIndexID: 9}, "12345156"}, // 长码截断
		{Request{}, "00000000"},
	}
	for _, c := range cases {
		if got := a.Prefix(c.req); got != c.want {
			t.Fatalf("Prefix(%+v) = %q, want %q", c.req, got, c.want)
		}
	}
}

func TestAllocator_Allocate_EmptyPrefix(t *testing.T) {
	t.Parallel()

	a := NewAllocator(&fakeCodeSource{}, nil)
	code, err := a.Allocate(Request{GroupID: 2, BrandID: 7})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if code != "02007000"+FirstSequence {
		t.Fatalf("unexpected code: %q", code)
	}
}

func TestAllocator_Allocate_ContinuesFromMax(t *testing.T) {
	t.Parallel()

	src := &fakeCodeSource{codes: map[string][]string{
		"02007000": {"0200700000000", "0200700000001", "020070000000Z"},
	}}
	a := NewAllocator(src, nil)

	code, err := a.Allocate(Request{GroupID: 2, BrandID: 7})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if code != "0200700000010" {
		t.Fatalf("unexpected code: %q", code)
	}
}

func TestAllocator_AllocateBatch(t *testing.T) {
	t.Parallel()

	src := &fakeCodeSource{codes: map[string][]string{
		"01005000": {"0100500000003"},
	}}
	a := NewAllocator(src, nil)

	reqs := []Request{
		{GroupID: 1, BrandID: 5},
		{GroupID: 2, BrandID: 9},
		{GroupID: 1, BrandID: 5},
		{GroupID: 1, BrandID: 5},
	}
	codes, err := a.AllocateBatch(reqs)
	if err != nil {
		t.Fatalf("allocate batch: %v", err)
	}

	want := []string{
		"0100500000004",
		"0200900000000",
		"0100500000005",
		"0100500000006",
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes[%d] = %q, want %q", i, codes[i], want[i])
		}
	}

	// 每个前缀只查询一次
	if src.queries != 2 {
		t.Fatalf("expected 2 prefix queries, got %d", src.queries)
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		if len(code) != CodeLength {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		if seen[code] {
			t.Fatalf("duplicate code %q in batch", code)
		}
		seen[code] = true
	}
}

func TestAllocator_AllocateBatch_IgnoresForeignCodes(t *testing.T) {
	t.Parallel()

	// 前缀查询可能返回 LIKE 命中的异形编码，分配时必须跳过
	src := &fakeCodeSource{codes: map[string][]string{
		"03001000": {"03001000", "030010000000", "0300100000002"},
	}}
	a := NewAllocator(src, nil)

	code, err := a.Allocate(Request{GroupID: 3, BrandID: 1})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if code != "0300100000003" {
		t.Fatalf("unexpected code: %q", code)
	}
}

func TestAllocator_AllocateBatch_SourceError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("store unavailable")
	a := NewAllocator(&fakeCodeSource{err: wantErr}, nil)

	if _, err := a.AllocateBatch([]Request{{GroupID: 1, BrandID: 1}}); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
