package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"opticat/internal/model"
)

// CodesByPrefix 批量查询匹配前缀的已有产品编码
func (s *Store) CodesByPrefix(prefix string) ([]string, error) {
	rows, err := s.db.Query("SELECT code FROM products WHERE code LIKE ?", prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query codes by prefix: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// ExistingNames 批量查询已存在的产品名称（单次查询，不逐行往返）
func (s *Store) ExistingNames(names []string) (map[string]bool, error) {
	result := make(map[string]bool, len(names))
	if len(names) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
	args := make([]interface{}, len(names))
	for i, name := range names {
		args[i] = name
	}

	rows, err := s.db.Query("SELECT name FROM products WHERE name IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		result[name] = true
	}
	return result, rows.Err()
}

// CountProducts 产品总数
func (s *Store) CountProducts() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

// InsertProductsBatch 在保存点内整批插入产品
// 任一记录失败则回滚到保存点，批内记录全部不落库；释放保存点即持久提交，
// 之前已提交的批次不受后续批次失败影响。
func (s *Store) InsertProductsBatch(savepoint string, products []*model.Product) error {
	if len(products) == 0 {
		return nil
	}

	ctx := context.Background()
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
		return fmt.Errorf("failed to open savepoint %s: %w", savepoint, err)
	}

	if err := insertProducts(ctx, conn, products); err != nil {
		_, _ = conn.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint)
		_, _ = conn.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint)
		return err
	}

	if _, err := conn.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint); err != nil {
		return fmt.Errorf("failed to release savepoint %s: %w", savepoint, err)
	}
	return nil
}

func insertProducts(ctx context.Context, conn *sql.Conn, products []*model.Product) error {
	stmt, err := conn.PrepareContext(ctx, `
		INSERT INTO products (
			code, kind, name, eng_name, trade_name, unit,
			group_id, brand_id, supplier_id, country_id,
			currency_id, warranty_id, supplier_warranty_id,
			origin_price, cost_price, retail_price,
			wholesale_price, wholesale_price_max, wholesale_price_min,
			uses, guide, warning, preserve, description, note,
			image, source_row, source_file
		) VALUES (
			?, ?, ?, ?, ?, ?,
			?, ?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?, ?, ?, ?,
			?, ?, ?
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		result, err := stmt.ExecContext(ctx,
			p.Code, string(p.Kind), p.Name, p.EngName, p.TradeName, p.Unit,
			nullID(p.GroupID), nullID(p.BrandID), nullID(p.SupplierID), nullID(p.CountryID),
			nullID(p.CurrencyID), nullID(p.WarrantyID), nullID(p.SupplierWarrantyID),
			p.OriginPrice, p.CostPrice, p.RetailPrice,
			p.WholesalePrice, p.WholesalePriceMax, p.WholesalePriceMin,
			p.Uses, p.Guide, p.Warning, p.Preserve, p.Description, p.Note,
			p.Image, p.SourceRow, p.SourceFile,
		)
		if err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.Name, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read product id: %w", err)
		}
		p.ID = id

		if err := insertKindAttrs(ctx, conn, p); err != nil {
			return err
		}
	}

	return nil
}

func insertKindAttrs(ctx context.Context, conn *sql.Conn, p *model.Product) error {
	switch {
	case p.Lens != nil:
		l := p.Lens
		_, err := conn.ExecContext(ctx, `
			INSERT INTO product_lens (
				product_id, sph, cyl, len_add, axis, prism, prism_base, base,
				abbe, polarized, diameter, color_int, corridor, mir_coat,
				design1_id, design2_id, material_id, index_id, uv_id,
				hmc_id, pho_id, tint_id
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			p.ID, l.Sph, l.Cyl, l.Add, l.Axis, l.Prism, l.PrismBase, l.Base,
			l.Abbe, l.Polarized, l.Diameter, l.ColorInt, l.Corridor, l.MirCoat,
			nullID(l.Design1ID), nullID(l.Design2ID), nullID(l.MaterialID),
			nullID(l.IndexID), nullID(l.UvID),
			nullID(l.HmcID), nullID(l.PhoID), nullID(l.TintID),
		)
		if err != nil {
			return fmt.Errorf("failed to insert lens attrs for %q: %w", p.Name, err)
		}
		return insertLinks(ctx, conn, "product_coating", "coating_id", p.ID, l.CoatingIDs)

	case p.Optical != nil:
		o := p.Optical
		_, err := conn.ExecContext(ctx, `
			INSERT INTO product_opt (
				product_id, sku, model, model_supplier, serial, color_code, season, gender,
				lens_width, bridge_width, temple_width, lens_height, lens_span,
				frame_id, frame_type_id, shape_id, ve_id, temple_id,
				material_ve_id, material_tip_id, material_lens_id,
				color_lens_id, color_front_id, color_temple_id
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			p.ID, o.Sku, o.Model, o.ModelSupplier, o.Serial, o.ColorCode, o.Season, o.Gender,
			o.LensWidth, o.BridgeWidth, o.TempleWidth, o.LensHeight, o.LensSpan,
			nullID(o.FrameID), nullID(o.FrameTypeID), nullID(o.ShapeID),
			nullID(o.VeID), nullID(o.TempleID),
			nullID(o.MaterialVeID), nullID(o.MaterialTipID), nullID(o.MaterialLensID),
			nullID(o.ColorLensID), nullID(o.ColorFrontID), nullID(o.ColorTempleID),
		)
		if err != nil {
			return fmt.Errorf("failed to insert optical attrs for %q: %w", p.Name, err)
		}
		if err := insertLinks(ctx, conn, "product_coating", "coating_id", p.ID, o.CoatingIDs); err != nil {
			return err
		}
		if err := insertLinks(ctx, conn, "product_front_material", "material_id", p.ID, o.FrontMaterialIDs); err != nil {
			return err
		}
		return insertLinks(ctx, conn, "product_temple_material", "material_id", p.ID, o.TempleMaterialIDs)

	case p.Accessory != nil:
		a := p.Accessory
		_, err := conn.ExecContext(ctx, `
			INSERT INTO product_accessory (
				product_id, design_id, shape_id, material_id,
				color, width, length, height, head, body
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			p.ID, nullID(a.DesignID), nullID(a.ShapeID), nullID(a.MaterialID),
			a.Color, a.Width, a.Length, a.Height, a.Head, a.Body,
		)
		if err != nil {
			return fmt.Errorf("failed to insert accessory attrs for %q: %w", p.Name, err)
		}
		return nil
	}

	return nil
}

func insertLinks(ctx context.Context, conn *sql.Conn, table, column string, productID int64, ids []int64) error {
	for _, id := range ids {
		query := fmt.Sprintf("INSERT INTO %s (product_id, %s) VALUES (?, ?)", table, column)
		if _, err := conn.ExecContext(ctx, query, productID, id); err != nil {
			return fmt.Errorf("failed to insert %s link: %w", table, err)
		}
	}
	return nil
}

// nullID FK 为 0 时写入 NULL
func nullID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
