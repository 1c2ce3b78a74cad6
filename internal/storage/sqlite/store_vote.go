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

// PutVote inserts or replaces a vote record.
func (s *Store) PutVote(ctx context.Context, vote storage.VoteRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(vote.ID) == "" {
		return fmt.Errorf("vote id is required")
	}
	if strings.TrimSpace(vote.MeetingID) == "" {
		return fmt.Errorf("meeting id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO votes (id, meeting_id, motion, status, created_by, created_at, updated_at, opened_at, closed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		vote.ID, vote.MeetingID, vote.Motion, vote.Status, vote.CreatedBy,
		toMillis(vote.CreatedAt), toMillis(vote.UpdatedAt),
		toNullMillis(vote.OpenedAt), toNullMillis(vote.ClosedAt),
	)
	if err != nil {
		return fmt.Errorf("put vote: %w", err)
	}
	return nil
}

// GetVote fetches one vote record.
func (s *Store) GetVote(ctx context.Context, meetingID, voteID string) (storage.VoteRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.VoteRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.VoteRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, meeting_id, motion, status, created_by, created_at, updated_at, opened_at, closed_at
FROM votes WHERE meeting_id = ? AND id = ?`, meetingID, voteID)

	vote, err := scanVote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.VoteRecord{}, storage.ErrNotFound
		}
		return storage.VoteRecord{}, fmt.Errorf("get vote: %w", err)
	}
	return vote, nil
}

// SetVoteStatus updates a vote's status and stamps the matching timestamp
// column: opened_at when the vote opens, closed_at when it closes.
func (s *Store) SetVoteStatus(ctx context.Context, meetingID, voteID, status string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	millis := toMillis(at)
	query := `UPDATE votes SET status = ?, updated_at = ? WHERE meeting_id = ? AND id = ?`
	args := []any{status, millis, meetingID, voteID}
	switch status {
	case "open":
		query = `UPDATE votes SET status = ?, updated_at = ?, opened_at = ? WHERE meeting_id = ? AND id = ?`
		args = []any{status, millis, millis, meetingID, voteID}
	case "closed":
		query = `UPDATE votes SET status = ?, updated_at = ?, closed_at = ? WHERE meeting_id = ? AND id = ?`
		args = []any{status, millis, millis, meetingID, voteID}
	}

	result, err := s.sqlDB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set vote status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set vote status: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListVotes returns every vote record for a meeting ordered by creation.
func (s *Store) ListVotes(ctx context.Context, meetingID string) ([]storage.VoteRecord, error) {
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
SELECT id, meeting_id, motion, status, created_by, created_at, updated_at, opened_at, closed_at
FROM votes WHERE meeting_id = ? ORDER BY created_at, id`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	var votes []storage.VoteRecord
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}
	return votes, nil
}

func scanVote(row rowScanner) (storage.VoteRecord, error) {
	var vote storage.VoteRecord
	var createdAt, updatedAt int64
	var openedAt, closedAt sql.NullInt64
	if err := row.Scan(&vote.ID, &vote.MeetingID, &vote.Motion, &vote.Status, &vote.CreatedBy, &createdAt, &updatedAt, &openedAt, &closedAt); err != nil {
		return storage.VoteRecord{}, err
	}
	vote.CreatedAt = fromMillis(createdAt)
	vote.UpdatedAt = fromMillis(updatedAt)
	vote.OpenedAt = fromNullMillis(openedAt)
	vote.ClosedAt = fromNullMillis(closedAt)
	return vote, nil
}
