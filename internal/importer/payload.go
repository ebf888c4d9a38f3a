package importer

import (
	"strconv"
	"strings"

	"opticat/internal/model"
	"opticat/internal/reader"
	"opticat/internal/refcache"
)

// buildProduct 把校验通过的行换算为产品记录
// 供应商与质保缺失时即时创建（同一会话内复用），其余参照查不到保持零值
func buildProduct(cache *refcache.Cache, row reader.Row, kind model.ProductKind, filename string) (*model.Product, error) {
	p := &model.Product{
		Kind:      kind,
		Name:      row.Get("FullName"),
		EngName:   row.Get("EngName"),
		TradeName: row.Get("TradeName"),
		Unit:      row.Get("Unit"),

		OriginPrice:       parseFloat(row.Get("Origin_Price")),
		CostPrice:         parseFloat(row.Get("Cost_Price")),
		RetailPrice:       parseFloat(row.Get("Retail_Price")),
		WholesalePrice:    parseFloat(row.Get("Wholesale_Price")),
		WholesalePriceMax: parseFloat(row.Get("Wholesale_Price_Max")),
		WholesalePriceMin: parseFloat(row.Get("Wholesale_Price_Min")),

		Uses:        row.Get("Use"),
		Guide:       row.Get("Guide"),
		Warning:     row.Get("Warning"),
		Preserve:    row.Get("Preserve"),
		Description: row.Get("Description"),
		Note:        row.Get("Note"),

		Image:      row.Image(reader.ImageHeader),
		SourceRow:  row.SheetRow,
		SourceFile: filename,
	}

	p.GroupID = lookup(cache, refcache.KindGroup, row.Get("Group"))
	p.BrandID = lookup(cache, refcache.KindBrand, row.Get("TradeMark"))
	p.CountryID = lookup(cache, refcache.KindCountry, row.Get("Country"))
	p.CurrencyID = lookup(cache, refcache.KindCurrency, row.Get("Currency"))
	p.WarrantyID = lookup(cache, refcache.KindWarranty, row.Get("Warranty"))

	var err error
	if v := row.Get("Supplier"); v != "" {
		if p.SupplierID, err = cache.GetOrCreate(refcache.KindSupplier, v, v); err != nil {
			return nil, err
		}
	}
	if v := row.Get("Supplier_Warranty"); v != "" {
		if p.SupplierWarrantyID, err = cache.GetOrCreate(refcache.KindWarranty, v, v); err != nil {
			return nil, err
		}
	}

	switch kind {
	case model.KindLens:
		p.Lens = buildLensAttrs(cache, row)
	case model.KindOptical:
		p.Optical = buildOpticalAttrs(cache, row)
	case model.KindAccessory:
		p.Accessory = buildAccessoryAttrs(cache, row)
	}
	return p, nil
}

func buildLensAttrs(cache *refcache.Cache, row reader.Row) *model.LensAttrs {
	return &model.LensAttrs{
		Sph:       row.Get("SPH"),
		Cyl:       row.Get("CYL"),
		Add:       row.Get("ADD"),
		Axis:      row.Get("AXIS"),
		Prism:     row.Get("PRISM"),
		PrismBase: row.Get("PRISMBASE"),
		Base:      row.Get("BASE"),
		Abbe:      row.Get("Abbe"),
		Polarized: row.Get("Polarized"),
		Diameter:  row.Get("Diameter"),
		ColorInt:  row.Get("ColorInt"),
		Corridor:  row.Get("Corridor"),
		MirCoat:   row.Get("MirCoating"),

		Design1ID:  lookup(cache, refcache.KindDesign, row.Get("Design1")),
		Design2ID:  lookup(cache, refcache.KindDesign, row.Get("Design2")),
		MaterialID: lookup(cache, refcache.KindMaterial, row.Get("Material")),
		IndexID:    lookup(cache, refcache.KindLensIndex, row.Get("Index")),
		UvID:       lookup(cache, refcache.KindUV, row.Get("Uv")),
		HmcID:      lookup(cache, refcache.KindColor, row.Get("HMC")),
		PhoID:      lookup(cache, refcache.KindColor, row.Get("PHO")),
		TintID:     lookup(cache, refcache.KindColor, row.Get("TIND")),

		CoatingIDs: lookupMulti(cache, refcache.KindCoating, row.Get("Coating")),
	}
}

func buildOpticalAttrs(cache *refcache.Cache, row reader.Row) *model.OpticalAttrs {
	return &model.OpticalAttrs{
		Sku:           row.Get("Sku"),
		Model:         row.Get("Model"),
		ModelSupplier: row.Get("Model_Supplier"),
		Serial:        row.Get("Serial"),
		ColorCode:     row.Get("Color_Code"),
		Season:        row.Get("Season"),
		Gender:        row.Get("Gender"),

		LensWidth:   parseInt(row.Get("Lens_Width")),
		BridgeWidth: parseInt(row.Get("Bridge_Width")),
		TempleWidth: parseInt(row.Get("Temple_Width")),
		LensHeight:  parseInt(row.Get("Lens_Height")),
		LensSpan:    parseInt(row.Get("Lens_Span")),

		FrameID:        lookup(cache, refcache.KindFrame, row.Get("Frame")),
		FrameTypeID:    lookup(cache, refcache.KindFrameType, row.Get("Frame_Type")),
		ShapeID:        lookup(cache, refcache.KindShape, row.Get("Shape")),
		VeID:           lookup(cache, refcache.KindVe, row.Get("Ve")),
		TempleID:       lookup(cache, refcache.KindTemple, row.Get("Temple")),
		MaterialVeID:   lookup(cache, refcache.KindMaterial, row.Get("Material_Ve")),
		MaterialTipID:  lookup(cache, refcache.KindMaterial, row.Get("Material_TempleTip")),
		MaterialLensID: lookup(cache, refcache.KindMaterial, row.Get("Material_Lens")),
		ColorLensID:    lookup(cache, refcache.KindColor, row.Get("Color_Lens")),
		ColorFrontID:   lookup(cache, refcache.KindColor, row.Get("Color_Opt_Front")),
		ColorTempleID:  lookup(cache, refcache.KindColor, row.Get("Color_Opt_Temple")),

		FrontMaterialIDs:  lookupMulti(cache, refcache.KindMaterial, row.Get("Material_Opt_Front")),
		TempleMaterialIDs: lookupMulti(cache, refcache.KindMaterial, row.Get("Material_Opt_Temple")),
		CoatingIDs:        lookupMulti(cache, refcache.KindCoating, row.Get("Coating")),
	}
}

func buildAccessoryAttrs(cache *refcache.Cache, row reader.Row) *model.AccessoryAttrs {
	return &model.AccessoryAttrs{
		DesignID:   lookup(cache, refcache.KindDesign, row.Get("Design")),
		ShapeID:    lookup(cache, refcache.KindShape, row.Get("Shape")),
		MaterialID: lookup(cache, refcache.KindMaterial, row.Get("Material")),

		Color:  row.Get("Color"),
		Width:  parseFloat(row.Get("Width")),
		Length: parseFloat(row.Get("Length")),
		Height: parseFloat(row.Get("Height")),
		Head:   parseFloat(row.Get("Head")),
		Body:   parseFloat(row.Get("Body")),
	}
}

func lookup(cache *refcache.Cache, kind refcache.Kind, code string) int64 {
	id, _ := cache.Lookup(kind, code)
	return id
}

// lookupMulti 解析逗号分隔的多值列，查不到的值跳过
func lookupMulti(cache *refcache.Cache, kind refcache.Kind, raw string) []int64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []int64
	for _, token := range strings.Split(raw, ",") {
		if id, ok := cache.Lookup(kind, token); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// 数值列已通过校验，解析失败按零处理
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
