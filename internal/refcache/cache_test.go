package refcache

import (
	"testing"
)

type fakeSource struct {
	entries map[Kind][]Entry
	nextID  int64
	created []string
}

func (f *fakeSource) ListReference(kind Kind) ([]Entry, error) {
	return f.entries[kind], nil
}

func (f *fakeSource) CreateReference(kind Kind, code, name string) (int64, error) {
	f.nextID++
	f.created = append(f.created, string(kind)+":"+code)
	return f.nextID, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		nextID: 100,
		entries: map[Kind][]Entry{
			KindGroup: {
				{ID: 1, Code: "LK", Name: "Lens group"},
			},
			KindBrand: {
				{ID: 5, Code: "ESS", Name: "Essilor"},
				{ID: 6, Code: "", Name: "Hoya"},
			},
			KindLensIndex: {
				{ID: 9, Code: "156", Name: "1.56"},
			},
		},
	}
}

func TestCache_Lookup_Normalized(t *testing.T) {
	t.Parallel()

	c, err := Load(newFakeSource())
	if err != nil {
		t.Fatalf("load cache: %v", err)
	}

	for _, code := range []string{"LK", "lk", "  Lk  "} {
		id, ok := c.Lookup(KindGroup, code)
		if !ok || id != 1 {
			t.Fatalf("Lookup(group, %q) = %d, %v", code, id, ok)
		}
	}

	if _, ok := c.Lookup(KindGroup, "NOPE"); ok {
		t.Fatal("unexpected hit for unknown code")
	}
	if _, ok := c.Lookup(KindGroup, "   "); ok {
		t.Fatal("unexpected hit for blank code")
	}
}

// 品牌允许按显示名称回退查找，编码缺失的记录仍可命中
func TestCache_Lookup_NameFallback(t *testing.T) {
	t.Parallel()

	c, err := Load(newFakeSource())
	if err != nil {
		t.Fatalf("load cache: %v", err)
	}

	if id, ok := c.Lookup(KindBrand, "hoya"); !ok || id != 6 {
		t.Fatalf("Lookup(brand, hoya) = %d, %v", id, ok)
	}
	if id, ok := c.Lookup(KindBrand, "Essilor"); !ok || id != 5 {
		t.Fatalf("Lookup(brand, Essilor) = %d, %v", id, ok)
	}

	// 非品牌类型不做名称回退
	if _, ok := c.Lookup(KindLensIndex, "1.56"); ok {
		t.Fatal("lens index must not be name-indexed")
	}
}

func TestCache_Code(t *testing.T) {
	t.Parallel()

	c, err := Load(newFakeSource())
	if err != nil {
		t.Fatalf("load cache: %v", err)
	}

	if code, ok := c.Code(KindLensIndex, 9); !ok || code != "156" {
		t.Fatalf("Code(lensindex, 9) = %q, %v", code, ok)
	}
	if _, ok := c.Code(KindLensIndex, 404); ok {
		t.Fatal("unexpected hit for unknown id")
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	c, err := Load(src)
	if err != nil {
		t.Fatalf("load cache: %v", err)
	}

	// 已有记录直接返回，不创建
	id, err := c.GetOrCreate(KindGroup, "LK", "Lens group")
	if err != nil {
		t.Fatalf("get existing: %v", err)
	}
	if id != 1 || len(src.created) != 0 {
		t.Fatalf("expected cache hit, id=%d created=%v", id, src.created)
	}

	// 未命中时创建一次，同会话内再次查找命中快照
	id, err = c.GetOrCreate(KindSupplier, "ACME", "ACME Optics")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 101 {
		t.Fatalf("unexpected created id %d", id)
	}

	again, err := c.GetOrCreate(KindSupplier, "acme", "ACME Optics")
	if err != nil {
		t.Fatalf("get created: %v", err)
	}
	if again != id {
		t.Fatalf("second GetOrCreate returned %d, want %d", again, id)
	}
	if len(src.created) != 1 {
		t.Fatalf("expected single create call, got %v", src.created)
	}
}
