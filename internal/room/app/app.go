// Package app composes one live room: storage, collaborators, the session
// engine and its realtime sync gateway.
package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/MochamaB/eboard/internal/agenda"
	"github.com/MochamaB/eboard/internal/auth"
	"github.com/MochamaB/eboard/internal/document"
	"github.com/MochamaB/eboard/internal/minutes"
	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
	"github.com/MochamaB/eboard/internal/room/engine"
	roomsync "github.com/MochamaB/eboard/internal/room/sync"
	"github.com/MochamaB/eboard/internal/storage"
	"github.com/MochamaB/eboard/internal/storage/sqlite"
	"github.com/MochamaB/eboard/internal/voting"
)

// Config holds room composition configuration.
type Config struct {
	DBPath      string
	MeetingID   string
	TokenSecret string
	SyncBuffer  int
}

// Room bundles a composed engine with its sync gateway. Callers resolve
// room tokens into engine callers through Authorize.
type Room struct {
	Engine  *engine.Engine
	Gateway *roomsync.Gateway

	meetingID   string
	tokenSecret []byte
	store       *sqlite.Store
}

// Open loads a meeting's roster and agenda from storage and composes the
// room around them. Callers own the returned room and must Close it.
func Open(ctx context.Context, cfg Config) (*Room, error) {
	if strings.TrimSpace(cfg.TokenSecret) == "" {
		return nil, fmt.Errorf("room token secret is required")
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	room, err := compose(ctx, store, cfg)
	if err != nil {
		store.Close()
		return nil, err
	}
	room.store = store
	return room, nil
}

func compose(ctx context.Context, store *sqlite.Store, cfg Config) (*Room, error) {
	meeting, err := store.GetMeeting(ctx, cfg.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("load meeting: %w", err)
	}
	if strings.TrimSpace(meeting.Title) == "" {
		return nil, errors.WithMetadata(errors.CodeMeetingEmptyTitle,
			"meeting has no title", map[string]string{"MeetingID": meeting.ID})
	}

	rosterRecords, err := store.ListRoster(ctx, cfg.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	roster, err := rosterToParticipants(rosterRecords)
	if err != nil {
		return nil, err
	}

	agendaService := agenda.NewService(store)
	items, err := agendaService.ListItems(ctx, cfg.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("load agenda: %w", err)
	}

	eng, err := engine.New(engine.Config{
		MeetingID: meeting.ID,
		Meeting: domain.MeetingInfo{
			Title:       meeting.Title,
			Location:    meeting.Location,
			ScheduledAt: meeting.ScheduledAt,
		},
		Roster:        roster,
		AgendaItems:   items,
		QuorumPercent: meeting.QuorumPercent,
		Collaborators: engine.Collaborators{
			Agenda:    agendaService,
			Voting:    voting.NewService(store),
			Documents: document.NewService(store),
			Minutes:   minutes.NewService(store),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	return &Room{
		Engine:      eng,
		Gateway:     roomsync.NewGateway(eng, cfg.SyncBuffer),
		meetingID:   meeting.ID,
		tokenSecret: []byte(cfg.TokenSecret),
	}, nil
}

// Authorize resolves a room access token into the engine caller it grants.
// Tokens issued for a different meeting are rejected.
func (r *Room) Authorize(token string) (engine.Caller, error) {
	caller, err := auth.ParseRoomToken(r.tokenSecret, r.meetingID, token)
	if err != nil {
		return engine.Caller{}, err
	}
	return engine.Caller{
		ParticipantID: caller.ParticipantID,
		DisplayName:   caller.DisplayName,
		Permissions:   caller.Permissions,
	}, nil
}

// Run pumps the sync gateway until the context is cancelled.
func (r *Room) Run(ctx context.Context) error {
	return r.Gateway.Run(ctx)
}

// Close releases the room's storage.
func (r *Room) Close() error {
	if r == nil || r.store == nil {
		return nil
	}
	return r.store.Close()
}

func rosterToParticipants(records []storage.ParticipantRecord) ([]domain.Participant, error) {
	participants := make([]domain.Participant, 0, len(records))
	for _, record := range records {
		normalized, err := domain.NormalizeCreateParticipantInput(domain.CreateParticipantInput{
			MeetingID:   record.MeetingID,
			UserID:      record.UserID,
			DisplayName: record.DisplayName,
			Role:        record.Role,
			Guest:       record.Guest,
		})
		if err != nil {
			return nil, participantRecordError(record.ID, err)
		}
		participants = append(participants, domain.Participant{
			ID:          record.ID,
			MeetingID:   normalized.MeetingID,
			UserID:      normalized.UserID,
			DisplayName: normalized.DisplayName,
			Role:        normalized.Role,
			Guest:       normalized.Guest,
			Attendance:  domain.AttendanceExpected,
			Connection:  domain.ConnectionDisconnected,
		})
	}
	return participants, nil
}

func participantRecordError(participantID string, err error) error {
	code := errors.CodeUnknown
	switch {
	case stderrors.Is(err, domain.ErrEmptyMeetingID):
		code = errors.CodeParticipantEmptyMeetingID
	case stderrors.Is(err, domain.ErrEmptyDisplayName):
		code = errors.CodeParticipantEmptyDisplayName
	}
	return errors.Wrap(code, fmt.Sprintf("invalid roster entry %s", participantID), err)
}
