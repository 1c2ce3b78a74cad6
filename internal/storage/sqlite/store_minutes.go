package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/MochamaB/eboard/internal/storage"
)

// AppendMinute inserts one minute entry. Minutes are append-only; there is
// no update or delete path.
func (s *Store) AppendMinute(ctx context.Context, minute storage.MinuteRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(minute.ID) == "" {
		return fmt.Errorf("minute id is required")
	}
	if strings.TrimSpace(minute.MeetingID) == "" {
		return fmt.Errorf("meeting id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO minutes (id, meeting_id, author_id, text, recorded_at)
VALUES (?, ?, ?, ?, ?)`,
		minute.ID, minute.MeetingID, minute.AuthorID, minute.Text, toMillis(minute.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("append minute: %w", err)
	}
	return nil
}

// ListMinutes returns a meeting's minutes in recording order.
func (s *Store) ListMinutes(ctx context.Context, meetingID string) ([]storage.MinuteRecord, error) {
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
SELECT id, meeting_id, author_id, text, recorded_at
FROM minutes WHERE meeting_id = ? ORDER BY recorded_at, id`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list minutes: %w", err)
	}
	defer rows.Close()

	var minutes []storage.MinuteRecord
	for rows.Next() {
		var m storage.MinuteRecord
		var recordedAt int64
		if err := rows.Scan(&m.ID, &m.MeetingID, &m.AuthorID, &m.Text, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan minute: %w", err)
		}
		m.RecordedAt = fromMillis(recordedAt)
		minutes = append(minutes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate minutes: %w", err)
	}
	return minutes, nil
}
