package validator

import (
	"opticat/internal/model"
	"opticat/internal/refcache"
)

// fkCheck 外键存在性检查项
type fkCheck struct {
	Header  string
	Kind    refcache.Kind
	Display string
}

// 所有分类共用的必填表头
var commonRequired = []string{"Group", "FullName", "TradeMark", "Origin_Price"}

// 分类专属必填表头
var kindRequired = map[model.ProductKind][]string{
	model.KindLens:      {},
	model.KindOptical:   {"Model"},
	model.KindAccessory: {},
}

// 价格列，必须可解析为数值
var priceFields = []string{
	"Origin_Price", "Cost_Price", "Retail_Price",
	"Wholesale_Price", "Wholesale_Price_Max", "Wholesale_Price_Min",
}

// 镜架尺寸列，必须为整数
var opticalIntFields = []string{
	"Lens_Width", "Bridge_Width", "Temple_Width", "Lens_Height", "Lens_Span",
}

// 配件尺寸列，必须为数值
var accessoryFloatFields = []string{"Width", "Length", "Height", "Head", "Body"}

// 共用外键列
var commonFKChecks = []fkCheck{
	{"Group", refcache.KindGroup, "Product Group"},
	{"TradeMark", refcache.KindBrand, "Brand"},
	{"Supplier", refcache.KindSupplier, "Supplier"},
	{"Country", refcache.KindCountry, "Country"},
	{"Currency", refcache.KindCurrency, "Currency"},
	{"Warranty", refcache.KindWarranty, "Warranty"},
	{"Supplier_Warranty", refcache.KindWarranty, "Supplier Warranty"},
}

// 分类专属外键列
var kindFKChecks = map[model.ProductKind][]fkCheck{
	model.KindLens: {
		{"Design1", refcache.KindDesign, "Design 1"},
		{"Design2", refcache.KindDesign, "Design 2"},
		{"Material", refcache.KindMaterial, "Material"},
		{"Index", refcache.KindLensIndex, "Lens Index"},
		{"Uv", refcache.KindUV, "UV"},
		{"HMC", refcache.KindColor, "HMC Color"},
		{"PHO", refcache.KindColor, "PHO Color"},
		{"TIND", refcache.KindColor, "TIND Color"},
	},
	model.KindOptical: {
		{"Frame", refcache.KindFrame, "Frame"},
		{"Frame_Type", refcache.KindFrameType, "Frame Type"},
		{"Shape", refcache.KindShape, "Shape"},
		{"Ve", refcache.KindVe, "Ve"},
		{"Temple", refcache.KindTemple, "Temple"},
		{"Material_Ve", refcache.KindMaterial, "Ve Material"},
		{"Material_TempleTip", refcache.KindMaterial, "Temple Tip Material"},
		{"Material_Lens", refcache.KindMaterial, "Lens Material"},
		{"Color_Lens", refcache.KindColor, "Lens Color"},
		{"Color_Opt_Front", refcache.KindColor, "Front Color"},
		{"Color_Opt_Temple", refcache.KindColor, "Temple Color"},
	},
	model.KindAccessory: {
		{"Design", refcache.KindDesign, "Design"},
		{"Shape", refcache.KindShape, "Shape"},
		{"Material", refcache.KindMaterial, "Material"},
	},
}

// 逗号分隔的多值外键列
var kindMultiFKChecks = map[model.ProductKind][]fkCheck{
	model.KindLens: {
		{"Coating", refcache.KindCoating, "Coating"},
	},
	model.KindOptical: {
		{"Material_Opt_Front", refcache.KindMaterial, "Front Material"},
		{"Material_Opt_Temple", refcache.KindMaterial, "Temple Material"},
		{"Coating", refcache.KindCoating, "Coating"},
	},
	model.KindAccessory: nil,
}
