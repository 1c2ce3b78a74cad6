package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MochamaB/eboard/internal/storage"
)

// PutMeeting inserts or replaces a meeting metadata record.
func (s *Store) PutMeeting(ctx context.Context, m storage.MeetingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("meeting id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO meetings (id, title, location, scheduled_at, quorum_percent, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.Location, toMillis(m.ScheduledAt), m.QuorumPercent,
		toMillis(m.CreatedAt), toMillis(m.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put meeting: %w", err)
	}
	return nil
}

// GetMeeting fetches a meeting metadata record by ID.
func (s *Store) GetMeeting(ctx context.Context, id string) (storage.MeetingRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.MeetingRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.MeetingRecord{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return storage.MeetingRecord{}, fmt.Errorf("meeting id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, title, location, scheduled_at, quorum_percent, created_at, updated_at
FROM meetings WHERE id = ?`, id)

	var m storage.MeetingRecord
	var scheduledAt, createdAt, updatedAt int64
	err := row.Scan(&m.ID, &m.Title, &m.Location, &scheduledAt, &m.QuorumPercent, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.MeetingRecord{}, storage.ErrNotFound
		}
		return storage.MeetingRecord{}, fmt.Errorf("get meeting: %w", err)
	}

	m.ScheduledAt = fromMillis(scheduledAt)
	m.CreatedAt = fromMillis(createdAt)
	m.UpdatedAt = fromMillis(updatedAt)
	return m, nil
}
