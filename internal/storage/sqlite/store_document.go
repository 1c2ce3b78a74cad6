package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MochamaB/eboard/internal/storage"
)

// PutDocument inserts or replaces a document metadata record.
func (s *Store) PutDocument(ctx context.Context, doc storage.DocumentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(doc.ID) == "" {
		return fmt.Errorf("document id is required")
	}
	if strings.TrimSpace(doc.MeetingID) == "" {
		return fmt.Errorf("meeting id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO documents (id, meeting_id, name, type, page_count, confidential, watermark, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.MeetingID, doc.Name, doc.Type, doc.PageCount,
		boolToInt(doc.Confidential), boolToInt(doc.Watermark), toMillis(doc.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

// GetDocument fetches one document metadata record.
func (s *Store) GetDocument(ctx context.Context, meetingID, documentID string) (storage.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.DocumentRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DocumentRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, meeting_id, name, type, page_count, confidential, watermark, created_at
FROM documents WHERE meeting_id = ? AND id = ?`, meetingID, documentID)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DocumentRecord{}, storage.ErrNotFound
		}
		return storage.DocumentRecord{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns every document attached to a meeting.
func (s *Store) ListDocuments(ctx context.Context, meetingID string) ([]storage.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(meetingID) == "" {
		return nil, fmt.Errorf("meeting id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, meeting_id, name, type, page_count, confidential, watermark, created_at
FROM documents WHERE meeting_id = ? ORDER BY created_at, id`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []storage.DocumentRecord
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func scanDocument(row rowScanner) (storage.DocumentRecord, error) {
	var doc storage.DocumentRecord
	var confidential, watermark, createdAt int64
	if err := row.Scan(&doc.ID, &doc.MeetingID, &doc.Name, &doc.Type, &doc.PageCount, &confidential, &watermark, &createdAt); err != nil {
		return storage.DocumentRecord{}, err
	}
	doc.Confidential = confidential != 0
	doc.Watermark = watermark != 0
	doc.CreatedAt = fromMillis(createdAt)
	return doc, nil
}
