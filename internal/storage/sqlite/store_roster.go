package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MochamaB/eboard/internal/storage"
)

// PutParticipant inserts or replaces a roster entry.
func (s *Store) PutParticipant(ctx context.Context, p storage.ParticipantRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("participant id is required")
	}
	if strings.TrimSpace(p.MeetingID) == "" {
		return fmt.Errorf("meeting id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO roster (id, meeting_id, user_id, display_name, role, guest, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.MeetingID, p.UserID, p.DisplayName, p.Role, boolToInt(p.Guest), toMillis(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put participant: %w", err)
	}
	return nil
}

// GetParticipant fetches one roster entry.
func (s *Store) GetParticipant(ctx context.Context, meetingID, participantID string) (storage.ParticipantRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.ParticipantRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ParticipantRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, meeting_id, user_id, display_name, role, guest, created_at
FROM roster WHERE meeting_id = ? AND id = ?`, meetingID, participantID)

	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ParticipantRecord{}, storage.ErrNotFound
		}
		return storage.ParticipantRecord{}, fmt.Errorf("get participant: %w", err)
	}
	return p, nil
}

// ListRoster returns every roster entry for a meeting ordered by creation.
func (s *Store) ListRoster(ctx context.Context, meetingID string) ([]storage.ParticipantRecord, error) {
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
SELECT id, meeting_id, user_id, display_name, role, guest, created_at
FROM roster WHERE meeting_id = ? ORDER BY created_at, id`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	var roster []storage.ParticipantRecord
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		roster = append(roster, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}
	return roster, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row rowScanner) (storage.ParticipantRecord, error) {
	var p storage.ParticipantRecord
	var guest, createdAt int64
	if err := row.Scan(&p.ID, &p.MeetingID, &p.UserID, &p.DisplayName, &p.Role, &guest, &createdAt); err != nil {
		return storage.ParticipantRecord{}, err
	}
	p.Guest = guest != 0
	p.CreatedAt = fromMillis(createdAt)
	return p, nil
}
