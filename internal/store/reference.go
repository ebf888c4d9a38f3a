package store

import (
	"fmt"

	"opticat/internal/refcache"
)

// ListReference 加载指定类型的全部有效主数据记录
func (s *Store) ListReference(kind refcache.Kind) ([]refcache.Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, code, name FROM reference_entries WHERE kind = ? AND active = 1 ORDER BY id",
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reference entries: %w", err)
	}
	defer rows.Close()

	var entries []refcache.Entry
	for rows.Next() {
		var e refcache.Entry
		if err := rows.Scan(&e.ID, &e.Code, &e.Name); err != nil {
			return nil, fmt.Errorf("failed to scan reference entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateReference 新建主数据记录并返回 ID
func (s *Store) CreateReference(kind refcache.Kind, code, name string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO reference_entries (kind, code, name) VALUES (?, ?, ?)",
		string(kind), code, name,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert reference entry: %w", err)
	}
	return result.LastInsertId()
}
