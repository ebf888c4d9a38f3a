package model

// ProductKind 产品分类（从模板标题单元格识别）
type ProductKind string

const (
	KindLens      ProductKind = "lens"
	KindOptical   ProductKind = "opt"
	KindAccessory ProductKind = "accessory"
)

// Valid 是否为已知分类
func (k ProductKind) Valid() bool {
	switch k {
	case KindLens, KindOptical, KindAccessory:
		return true
	}
	return false
}

// Product 产品记录（对应 products 表，FK 字段 0 表示未设置）
type Product struct {
	ID   int64       `json:"id"`
	Code string      `json:"code"`
	Kind ProductKind `json:"kind"`

	Name      string `json:"name"`
	EngName   string `json:"engName"`
	TradeName string `json:"tradeName"`
	Unit      string `json:"unit"`

	GroupID            int64 `json:"groupId"`
	BrandID            int64 `json:"brandId"`
	SupplierID         int64 `json:"supplierId"`
	CountryID          int64 `json:"countryId"`
	CurrencyID         int64 `json:"currencyId"`
	WarrantyID         int64 `json:"warrantyId"`
	SupplierWarrantyID int64 `json:"supplierWarrantyId"`

	OriginPrice       float64 `json:"originPrice"`
	CostPrice         float64 `json:"costPrice"`
	RetailPrice       float64 `json:"retailPrice"`
	WholesalePrice    float64 `json:"wholesalePrice"`
	WholesalePriceMax float64 `json:"wholesalePriceMax"`
	WholesalePriceMin float64 `json:"wholesalePriceMin"`

	Uses        string `json:"uses"`
	Guide       string `json:"guide"`
	Warning     string `json:"warning"`
	Preserve    string `json:"preserve"`
	Description string `json:"description"`
	Note        string `json:"note"`

	Image []byte `json:"-"`

	SourceRow  int    `json:"sourceRow"`  // 原始表格行号
	SourceFile string `json:"sourceFile"` // 上传文件名

	Lens      *LensAttrs      `json:"lens,omitempty"`
	Optical   *OpticalAttrs   `json:"optical,omitempty"`
	Accessory *AccessoryAttrs `json:"accessory,omitempty"`
}

// LensAttrs 镜片专属属性
type LensAttrs struct {
	Sph       string `json:"sph"`
	Cyl       string `json:"cyl"`
	Add       string `json:"add"`
	Axis      string `json:"axis"`
	Prism     string `json:"prism"`
	PrismBase string `json:"prismBase"`
	Base      string `json:"base"`
	Abbe      string `json:"abbe"`
	Polarized string `json:"polarized"`
	Diameter  string `json:"diameter"`
	ColorInt  string `json:"colorInt"`
	Corridor  string `json:"corridor"`
	MirCoat   string `json:"mirCoat"`

	Design1ID  int64 `json:"design1Id"`
	Design2ID  int64 `json:"design2Id"`
	MaterialID int64 `json:"materialId"`
	IndexID    int64 `json:"indexId"`
	UvID       int64 `json:"uvId"`
	HmcID      int64 `json:"hmcId"`
	PhoID      int64 `json:"phoId"`
	TintID     int64 `json:"tintId"`

	CoatingIDs []int64 `json:"coatingIds"`
}

// OpticalAttrs 镜架/眼镜专属属性
type OpticalAttrs struct {
	Sku           string `json:"sku"`
	Model         string `json:"model"`
	ModelSupplier string `json:"modelSupplier"`
	Serial        string `json:"serial"`
	ColorCode     string `json:"colorCode"`
	Season        string `json:"season"`
	Gender        string `json:"gender"`

	LensWidth   int `json:"lensWidth"`
	BridgeWidth int `json:"bridgeWidth"`
	TempleWidth int `json:"templeWidth"`
	LensHeight  int `json:"lensHeight"`
	LensSpan    int `json:"lensSpan"`

	FrameID        int64 `json:"frameId"`
	FrameTypeID    int64 `json:"frameTypeId"`
	ShapeID        int64 `json:"shapeId"`
	VeID           int64 `json:"veId"`
	TempleID       int64 `json:"templeId"`
	MaterialVeID   int64 `json:"materialVeId"`
	MaterialTipID  int64 `json:"materialTipId"`
	MaterialLensID int64 `json:"materialLensId"`
	ColorLensID    int64 `json:"colorLensId"`
	ColorFrontID   int64 `json:"colorFrontId"`
	ColorTempleID  int64 `json:"colorTempleId"`

	FrontMaterialIDs  []int64 `json:"frontMaterialIds"`
	TempleMaterialIDs []int64 `json:"templeMaterialIds"`
	CoatingIDs        []int64 `json:"coatingIds"`
}

// AccessoryAttrs 配件专属属性
type AccessoryAttrs struct {
	DesignID   int64 `json:"designId"`
	ShapeID    int64 `json:"shapeId"`
	MaterialID int64 `json:"materialId"`

	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
	Head   float64 `json:"head"`
	Body   float64 `json:"body"`
}
