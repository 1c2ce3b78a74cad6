// Package engine owns the single mutable live-session state for one meeting
// room and exposes its read/action surface.
//
// The engine is a single-writer, many-reader container: every mutating entry
// point runs as a short, atomic, sequential operation under one mutex, and
// subscribers only ever observe fully settled snapshots. Presence updates
// from the realtime sync boundary are folded in one message at a time, each
// followed by the full mode/quorum recompute before any reader is notified.
package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/platform/id"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// AgendaService is the agenda collaborator contract the engine consumes.
type AgendaService interface {
	ListItems(ctx context.Context, meetingID string) ([]domain.AgendaItem, error)
	SetItemStatus(ctx context.Context, meetingID, itemID string, status domain.AgendaItemStatus) error
}

// VoteService is the voting collaborator contract the engine consumes.
type VoteService interface {
	CreateVote(ctx context.Context, meetingID, motion, createdBy string) (domain.ActiveVote, error)
	OpenVote(ctx context.Context, meetingID, voteID string) error
	CloseVote(ctx context.Context, meetingID, voteID string) error
}

// DocumentService is the document collaborator contract the engine consumes.
type DocumentService interface {
	Resolve(ctx context.Context, meetingID, documentID string) (domain.DocumentMeta, error)
}

// MinuteService is the minutes collaborator contract the engine consumes.
type MinuteService interface {
	Record(ctx context.Context, meetingID, authorID, text string) (domain.MinuteEntry, error)
	List(ctx context.Context, meetingID string) ([]domain.MinuteEntry, error)
}

// Collaborators groups the external services the engine calls out to.
type Collaborators struct {
	Agenda    AgendaService
	Voting    VoteService
	Documents DocumentService
	Minutes   MinuteService
}

// Config describes everything needed to open a room for one meeting.
type Config struct {
	MeetingID     string
	Meeting       domain.MeetingInfo
	Roster        []domain.Participant
	AgendaItems   []domain.AgendaItem
	QuorumPercent int
	Collaborators Collaborators

	// Clock and IDGenerator are injectable for tests.
	Clock       func() time.Time
	IDGenerator func() (string, error)
}

// Engine is the live session state container for one meeting room.
type Engine struct {
	mu sync.Mutex

	session      domain.Session
	participants map[string]*domain.Participant
	order        []string
	agendaItems  []domain.AgendaItem

	quorumPercent int
	collab        Collaborators

	subscribers map[int]chan Notification
	nextSubID   int

	clock  func() time.Time
	idGen  func() (string, error)
	tracer trace.Tracer
}

// New constructs an engine in the waiting state with the roster loaded.
// The initial mode is physical: a board meeting anchors to its boardroom
// until live presence proves otherwise.
func New(cfg Config) (*Engine, error) {
	if cfg.MeetingID == "" {
		return nil, errors.Wrap(errors.CodeMeetingEmptyID, "meeting id is required", domain.ErrEmptyMeetingID)
	}
	if cfg.QuorumPercent < 1 || cfg.QuorumPercent > 100 {
		return nil, errors.Wrap(errors.CodeMeetingInvalidQuorum, "quorum percentage must be between 1 and 100", domain.ErrInvalidQuorumPercent)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = id.NewID
	}

	e := &Engine{
		session: domain.Session{
			MeetingID: cfg.MeetingID,
			Meeting:   cfg.Meeting,
			Status:    domain.StatusWaiting,
			Mode:      domain.ModePhysical,
		},
		participants:  make(map[string]*domain.Participant, len(cfg.Roster)),
		agendaItems:   append([]domain.AgendaItem(nil), cfg.AgendaItems...),
		quorumPercent: cfg.QuorumPercent,
		collab:        cfg.Collaborators,
		subscribers:   make(map[int]chan Notification),
		clock:         cfg.Clock,
		idGen:         cfg.IDGenerator,
		tracer:        otel.Tracer("eboard/room-engine"),
	}

	for i := range cfg.Roster {
		p := cfg.Roster[i]
		if p.Attendance == domain.AttendanceUnspecified {
			p.Attendance = domain.AttendanceExpected
		}
		if p.Connection == domain.ConnectionUnspecified {
			p.Connection = domain.ConnectionDisconnected
		}
		e.participants[p.ID] = &p
		e.order = append(e.order, p.ID)
	}
	sort.Strings(e.order)

	e.recomputeLocked()
	return e, nil
}

// recomputeLocked re-derives mode and quorum from the registry. It is the
// only code path that writes either field. Callers must hold e.mu.
func (e *Engine) recomputeLocked() {
	roster := e.rosterLocked()
	e.session.Mode = domain.ResolveMode(roster, e.session.Mode)
	e.session.Quorum = domain.ComputeQuorum(roster, e.quorumPercent)
}

func (e *Engine) rosterLocked() []domain.Participant {
	roster := make([]domain.Participant, 0, len(e.order))
	for _, pid := range e.order {
		roster = append(roster, *e.participants[pid])
	}
	return roster
}

// frozenLocked reports whether the session no longer accepts mutations.
func (e *Engine) frozenLocked() bool {
	return e.session.Status == domain.StatusEnding || e.session.Status.IsTerminal()
}

func errSessionEnded() error {
	return errors.New(errors.CodeRoomSessionEnded, "session has ended")
}

func errForbidden(action string) error {
	return errors.WithMetadata(errors.CodeRoomForbidden, "caller lacks capability",
		map[string]string{"Operation": action})
}

// startSpan opens a tracing span for a mutating action.
func (e *Engine) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("meeting.id", e.session.MeetingID),
	))
}

// Snapshot returns a deep copy of the settled session state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	session := e.session
	if e.session.Casting != nil {
		casting := *e.session.Casting
		session.Casting = &casting
	}
	if e.session.ActiveVote != nil {
		vote := *e.session.ActiveVote
		session.ActiveVote = &vote
	}
	if e.session.CurrentAgendaItem != nil {
		item := *e.session.CurrentAgendaItem
		session.CurrentAgendaItem = &item
	}
	if e.session.StartedAt != nil {
		startedAt := *e.session.StartedAt
		session.StartedAt = &startedAt
	}
	if e.session.EndedAt != nil {
		endedAt := *e.session.EndedAt
		session.EndedAt = &endedAt
	}

	return Snapshot{
		Session:      session,
		Participants: e.rosterLocked(),
	}
}

// Capabilities projects the caller's current action surface. The projection
// is recomputed per call and never cached, so it cannot go stale.
func (e *Engine) Capabilities(perms domain.PermissionSet) domain.Capabilities {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.ProjectCapabilities(e.session.Status, e.session.Mode, perms)
}

// AgendaItems returns the session's agenda list.
func (e *Engine) AgendaItems() []domain.AgendaItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.AgendaItem(nil), e.agendaItems...)
}

// SetSyncStatus records the transport connectivity surfaced read-only on the
// session. Owned by the realtime sync collaborator.
func (e *Engine) SetSyncStatus(connected bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.SyncConnected = connected
	e.session.LastSyncAt = e.clock().UTC()
	e.notifyLocked(EventSyncStatusChanged)
}
