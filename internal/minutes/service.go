// Package minutes is the minutes collaborator: an append-only log of minute
// entries recorded while the session runs.
package minutes

import (
	"context"
	"strings"
	"time"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/platform/id"
	"github.com/MochamaB/eboard/internal/room/domain"
	"github.com/MochamaB/eboard/internal/storage"
)

// Service records and lists minutes through a MinutesStore.
type Service struct {
	store       storage.MinutesStore
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService creates a minutes service with default dependencies.
func NewService(store storage.MinutesStore) *Service {
	return &Service{
		store:       store,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// Record appends one minute entry.
func (s *Service) Record(ctx context.Context, meetingID, authorID, text string) (domain.MinuteEntry, error) {
	if s == nil || s.store == nil {
		return domain.MinuteEntry{}, errors.New(errors.CodeCollaboratorFailure, "minutes store is not configured")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.MinuteEntry{}, errors.New(errors.CodeMinuteEmptyText, "minute text is required")
	}

	minuteID, err := s.idGenerator()
	if err != nil {
		return domain.MinuteEntry{}, errors.Wrap(errors.CodeCollaboratorFailure, "generate minute id", err)
	}

	record := storage.MinuteRecord{
		ID:         minuteID,
		MeetingID:  meetingID,
		AuthorID:   authorID,
		Text:       text,
		RecordedAt: s.clock().UTC(),
	}
	if err := s.store.AppendMinute(ctx, record); err != nil {
		return domain.MinuteEntry{}, errors.Wrap(errors.CodeCollaboratorFailure, "append minute", err)
	}

	return domain.MinuteEntry{
		ID:        minuteID,
		MeetingID: meetingID,
		AuthorID:  authorID,
		Text:      text,
	}, nil
}

// List returns a meeting's minutes in recording order.
func (s *Service) List(ctx context.Context, meetingID string) ([]domain.MinuteEntry, error) {
	if s == nil || s.store == nil {
		return nil, errors.New(errors.CodeCollaboratorFailure, "minutes store is not configured")
	}

	records, err := s.store.ListMinutes(ctx, meetingID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeCollaboratorFailure, "list minutes", err)
	}

	entries := make([]domain.MinuteEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.MinuteEntry{
			ID:        record.ID,
			MeetingID: record.MeetingID,
			AuthorID:  record.AuthorID,
			Text:      record.Text,
		})
	}
	return entries, nil
}
