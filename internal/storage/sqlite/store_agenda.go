package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MochamaB/eboard/internal/storage"
)

// PutAgendaItem inserts or replaces an agenda item record.
func (s *Store) PutAgendaItem(ctx context.Context, item storage.AgendaItemRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("agenda item id is required")
	}
	if strings.TrimSpace(item.MeetingID) == "" {
		return fmt.Errorf("meeting id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO agenda_items (id, meeting_id, title, presenter, position, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.MeetingID, item.Title, item.Presenter, item.Position, item.Status,
		toMillis(item.CreatedAt), toMillis(item.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put agenda item: %w", err)
	}
	return nil
}

// GetAgendaItem fetches one agenda item.
func (s *Store) GetAgendaItem(ctx context.Context, meetingID, itemID string) (storage.AgendaItemRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.AgendaItemRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.AgendaItemRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, meeting_id, title, presenter, position, status, created_at, updated_at
FROM agenda_items WHERE meeting_id = ? AND id = ?`, meetingID, itemID)

	item, err := scanAgendaItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.AgendaItemRecord{}, storage.ErrNotFound
		}
		return storage.AgendaItemRecord{}, fmt.Errorf("get agenda item: %w", err)
	}
	return item, nil
}

// ListAgendaItems returns the meeting's agenda ordered by position.
func (s *Store) ListAgendaItems(ctx context.Context, meetingID string) ([]storage.AgendaItemRecord, error) {
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
SELECT id, meeting_id, title, presenter, position, status, created_at, updated_at
FROM agenda_items WHERE meeting_id = ? ORDER BY position, id`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list agenda items: %w", err)
	}
	defer rows.Close()

	var items []storage.AgendaItemRecord
	for rows.Next() {
		item, err := scanAgendaItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan agenda item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agenda items: %w", err)
	}
	return items, nil
}

// SetAgendaItemStatus updates one item's status field.
func (s *Store) SetAgendaItemStatus(ctx context.Context, meetingID, itemID, status string, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE agenda_items SET status = ?, updated_at = ? WHERE meeting_id = ? AND id = ?`,
		status, toMillis(updatedAt), meetingID, itemID,
	)
	if err != nil {
		return fmt.Errorf("set agenda item status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set agenda item status: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanAgendaItem(row rowScanner) (storage.AgendaItemRecord, error) {
	var item storage.AgendaItemRecord
	var createdAt, updatedAt int64
	if err := row.Scan(&item.ID, &item.MeetingID, &item.Title, &item.Presenter, &item.Position, &item.Status, &createdAt, &updatedAt); err != nil {
		return storage.AgendaItemRecord{}, err
	}
	item.CreatedAt = fromMillis(createdAt)
	item.UpdatedAt = fromMillis(updatedAt)
	return item, nil
}
