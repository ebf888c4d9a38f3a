package template

// 模板静态内容：公司抬头、双语表头、列宽与填写方式分类，均与现行纸面模板一致

const (
	companyName    = "CÔNG TY TNHH CÔNG NGHỆ QUANG HỌC VIỆT NAM"
	companyAddress = "Số 63 phố Lê Duẩn, Phường Cửa Nam, Quận Hoàn Kiếm, Thành phố Hà Nội, Việt Nam"
)

const (
	typeLabel       = "LOẠI HÀNG:"
	legendManual    = "🔵 Tự nhập tay"
	legendCode      = "🟡 Mã tự quy định"
	legendMultiCode = "🟢 Mã tự quy định, nhiều"
)

// 镜架模板的性别取值说明
var genderLegend = []string{"0 - Nam", "1 - Nữ", "2 - Unisex"}

var lensSheet = sheetSpec{
	title: "BẢNG NHẬP HÀNG MẮT",
	label: "Mắt",
	headersVI: []string{
		"Nhóm", "Ảnh", "Tên đầy đủ", "Tên tiếng Anh", "Tên thương mại", "Đơn vị",
		"Thương hiệu", "Nhà cung cấp", "Quốc gia", "Độ cầu", "Độ trụ",
		"Độ cộng thêm", "Trục", "Lăng kính", "Đáy lăng kính", "Độ cong kính",
		"Chỉ số tán sắc", "Phân cực", "Đường kính", "Thiết kế 1", "Thiết kế 2",
		"Chất liệu", "Chiết suất", "Chống UV", "Lớp phủ", "Ánh mạ", "Đổi màu",
		"Mạ màu", "Độ đậm màu", "Corridor", "Phủ gương", "Bảo hành NCC", "Bảo hành",
		"Bảo hành bán lẻ", "Phụ kiện", "Giá gốc", "Loại tiền tệ", "Giá nhập kho",
		"Giá bán lẻ", "Giá bán buôn theo %", "Giá buôn tối đa",
		"Giá bán buôn tối thiểu", "Công dụng", "Hướng dẫn", "Cảnh báo", "Bảo quản",
		"Mô tả", "Ghi chú",
	},
	headersEN: []string{
		"Group", "Image", "FullName", "EngName", "TradeName", "Unit", "TradeMark", "Supplier", "Country",
		"SPH", "CYL", "ADD", "AXIS", "PRISM", "PRISMBASE", "BASE", "Abbe", "Polarized", "Diameter",
		"Design1", "Design2", "Material", "Index", "Uv", "Coating", "HMC", "PHO", "TIND", "ColorInt",
		"Corridor", "MirCoating", "Supplier_Warranty", "Warranty", "Warranty_Retail", "Accessory",
		"Origin_Price", "Currency", "Cost_Price", "Retail_Price", "Wholesale_Price",
		"Wholesale_Price_Max", "Wholesale_Price_Min", "Use", "Guide", "Warning", "Preserve",
		"Description", "Note",
	},
	widths: []float64{
		12, 15, 25, 22, 18, 8, 18, 20, 12, 10, 10, 15, 10, 15, 15, 15, 15, 15, 15, 14, 14, 14, 14, 12, 14,
		14, 14, 14, 15, 12, 14, 17, 12, 17, 16, 12, 16, 15, 12, 20, 17, 20, 16, 16, 16, 16, 25, 25,
	},
	codeFields: fieldSet(
		"Group", "TradeMark", "Supplier", "Country", "Design1", "Design2", "Material", "Index", "Uv",
		"HMC", "PHO", "TIND", "Supplier_Warranty", "Warranty", "Warranty_Retail", "Currency",
	),
	multiFields: fieldSet(
		"Coating", "Accessory",
	),
}

var opticalSheet = sheetSpec{
	title: "BẢNG NHẬP HÀNG GỌNG / KÍNH",
	label: "Gọng",
	headersVI: []string{
		"Nhóm", "Ảnh", "Tên đầy đủ", "Tên tiếng Anh", "Tên thương mại", "Đơn vị",
		"Thương hiệu", "Nhà cung cấp", "Quốc gia", "Mã SKU", "Mẫu", "Mẫu NCC", "Serial",
		"Mã màu", "Mùa", "Kiểu Gọng", "Giới tính", "Loại gọng", "Hình dạng", "Ve",
		"Càng kính", "Chất liệu ve", "Chất liệu chuôi càng", "Chất liệu tròng",
		"Chất liệu mặt trước", "Chất liệu càng", "Màu tròng", "Lớp phủ",
		"Màu mặt trước", "Màu càng", "Dài mắt", "Cầu kính", "Dài càng", "Cao tròng",
		"Ngang mắt", "Bảo hành NCC", "Bảo hành", "Bảo hành bán lẻ", "Phụ kiện",
		"Giá gốc", "Loại tiền tệ", "Giá nhập kho", "Giá bán lẻ", "Giá bán buôn theo %",
		"Giá buôn tối đa", "Giá bán buôn tối thiểu", "Công dụng", "Hướng dẫn",
		"Cảnh báo", "Bảo quản", "Mô tả", "Ghi chú",
	},
	headersEN: []string{
		"Group", "Image", "FullName", "EngName", "TradeName", "Unit", "TradeMark", "Supplier", "Country",
		"Sku", "Model", "Model_Supplier", "Serial", "Color_Code", "Season", "Frame", "Gender",
		"Frame_Type", "Shape", "Ve", "Temple", "Material_Ve", "Material_TempleTip", "Material_Lens",
		"Material_Opt_Front", "Material_Opt_Temple", "Color_Lens", "Coating", "Color_Opt_Front",
		"Color_Opt_Temple", "Lens_Width", "Bridge_Width", "Temple_Width", "Lens_Height", "Lens_Span",
		"Supplier_Warranty", "Warranty", "Warranty_Retail", "Accessory", "Origin_Price", "Currency",
		"Cost_Price", "Retail_Price", "Wholesale_Price", "Wholesale_Price_Max", "Wholesale_Price_Min",
		"Use", "Guide", "Warning", "Preserve", "Description", "Note",
	},
	widths: []float64{
		12, 15, 25, 22, 18, 8, 18, 20, 12, 18, 18, 18, 18, 12, 12, 12, 10, 12, 12, 8, 17, 16, 16, 16, 21,
		18, 12, 12, 19, 16, 12, 12, 12, 12, 12, 16, 12, 16, 16, 12, 16, 15, 12, 22, 17, 22, 16, 16, 16,
		16, 25, 25,
	},
	codeFields: fieldSet(
		"Group", "TradeMark", "Supplier", "Country", "Frame", "Gender", "Frame_Type", "Shape", "Ve",
		"Temple", "Material_Ve", "Material_TempleTip", "Material_Lens", "Color_Lens", "Supplier_Warranty",
		"Warranty", "Warranty_Retail", "Currency",
	),
	multiFields: fieldSet(
		"Material_Opt_Front", "Material_Opt_Temple", "Coating", "Accessory",
	),
}

var accessorySheet = sheetSpec{
	title: "BẢNG NHẬP HÀNG PHỤ KIỆN",
	label: "Phụ kiện",
	headersVI: []string{
		"Nhóm", "Ảnh", "Tên đầy đủ", "Tên tiếng Anh", "Tên thương mại", "Đơn vị",
		"Thương hiệu", "Nhà cung cấp", "Quốc gia", "Thiết kế", "Hình dáng",
		"Chất liệu", "Màu sắc", "Chiều rộng", "Chiều dài", "Chiều cao", "Đầu", "Thân",
		"Bảo hành NCC", "Bảo hành", "Bảo hành bán lẻ", "Phụ kiện", "Giá gốc",
		"Loại tiền tệ", "Giá nhập kho", "Giá bán lẻ", "Giá bán buôn theo %",
		"Giá buôn tối đa", "Giá bán buôn tối thiểu", "Công dụng", "Hướng dẫn",
		"Cảnh báo", "Bảo quản", "Mô tả", "Ghi chú",
	},
	headersEN: []string{
		"Group", "Image", "FullName", "EngName", "TradeName", "Unit", "TradeMark", "Supplier", "Country",
		"Design", "Shape", "Material", "Color", "Width", "Length", "Height", "Head", "Body",
		"Supplier_Warranty", "Warranty", "Warranty_Retail", "Accessory", "Origin_Price", "Currency",
		"Cost_Price", "Retail_Price", "Wholesale_Price", "Wholesale_Price_Max", "Wholesale_Price_Min",
		"Use", "Guide", "Warning", "Preserve", "Description", "Note",
	},
	widths: []float64{
		12, 15, 25, 22, 18, 8, 18, 20, 12, 16, 16, 16, 16, 12, 12, 12, 12, 12, 16, 12, 16, 16, 12, 16, 15,
		12, 22, 17, 22, 16, 16, 16, 16, 25, 25,
	},
	codeFields: fieldSet(
		"Group", "TradeMark", "Supplier", "Country", "Design", "Shape", "Material", "Supplier_Warranty",
		"Warranty", "Warranty_Retail", "Currency",
	),
	multiFields: fieldSet(
		"Accessory",
	),
}
