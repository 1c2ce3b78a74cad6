// Package agenda is the agenda collaborator: it supplies the ordered agenda
// item list for a meeting and accepts item-status updates from the room.
package agenda

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
	"github.com/MochamaB/eboard/internal/storage"
)

// Service reads and updates agenda items through an AgendaStore.
type Service struct {
	store storage.AgendaStore
	clock func() time.Time
}

// NewService creates an agenda service with default dependencies.
func NewService(store storage.AgendaStore) *Service {
	return &Service{store: store, clock: time.Now}
}

// ListItems returns the meeting's agenda ordered by position.
func (s *Service) ListItems(ctx context.Context, meetingID string) ([]domain.AgendaItem, error) {
	if s == nil || s.store == nil {
		return nil, errors.New(errors.CodeCollaboratorFailure, "agenda store is not configured")
	}

	records, err := s.store.ListAgendaItems(ctx, meetingID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeCollaboratorFailure, "list agenda items", err)
	}

	items := make([]domain.AgendaItem, 0, len(records))
	for _, record := range records {
		if strings.TrimSpace(record.Title) == "" {
			return nil, errors.WithMetadata(errors.CodeAgendaItemEmptyTitle,
				"agenda item has no title", map[string]string{"ItemID": record.ID})
		}
		items = append(items, recordToItem(record))
	}
	return items, nil
}

// SetItemStatus transitions one item's status. Only completed and skipped
// are accepted; the room never moves an item back to pending.
func (s *Service) SetItemStatus(ctx context.Context, meetingID, itemID string, status domain.AgendaItemStatus) error {
	if s == nil || s.store == nil {
		return errors.New(errors.CodeCollaboratorFailure, "agenda store is not configured")
	}
	if status != domain.AgendaItemCompleted && status != domain.AgendaItemSkipped {
		return errors.WithMetadata(errors.CodeAgendaInvalidStatus,
			"agenda item status must be completed or skipped",
			map[string]string{"Status": status.String()})
	}

	err := s.store.SetAgendaItemStatus(ctx, meetingID, itemID, status.String(), s.clock().UTC())
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return errors.New(errors.CodeNotFound, "agenda item not found")
		}
		return errors.Wrap(errors.CodeCollaboratorFailure, "set agenda item status", err)
	}
	return nil
}

func recordToItem(record storage.AgendaItemRecord) domain.AgendaItem {
	return domain.AgendaItem{
		ID:        record.ID,
		MeetingID: record.MeetingID,
		Title:     record.Title,
		Presenter: record.Presenter,
		Position:  record.Position,
		Status:    statusFromString(record.Status),
	}
}

func statusFromString(status string) domain.AgendaItemStatus {
	switch status {
	case "pending":
		return domain.AgendaItemPending
	case "completed":
		return domain.AgendaItemCompleted
	case "skipped":
		return domain.AgendaItemSkipped
	default:
		return domain.AgendaItemUnspecified
	}
}
