package store

import (
	"fmt"
	"strings"
)

// ImportLog 一次导入提交的记录
type ImportLog struct {
	SessionID    string
	Filename     string
	Kind         string
	SuccessCount int
	ErrorCount   int
	Messages     []string
}

// InsertImportLog 写入导入记录
func (s *Store) InsertImportLog(entry ImportLog) error {
	_, err := s.db.Exec(`
		INSERT INTO import_log (session_id, filename, kind, success_count, error_count, messages)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		entry.SessionID, entry.Filename, entry.Kind,
		entry.SuccessCount, entry.ErrorCount, strings.Join(entry.Messages, "\n"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert import log: %w", err)
	}
	return nil
}
