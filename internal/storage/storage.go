package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// MeetingRecord holds the read-only meeting metadata the room session surfaces.
type MeetingRecord struct {
	ID            string
	Title         string
	Location      string
	ScheduledAt   time.Time
	QuorumPercent int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ParticipantRecord is one roster entry for a meeting.
type ParticipantRecord struct {
	ID          string
	MeetingID   string
	UserID      string
	DisplayName string
	Role        string
	Guest       bool
	CreatedAt   time.Time
}

// AgendaItemRecord is one ordered agenda entry for a meeting.
type AgendaItemRecord struct {
	ID        string
	MeetingID string
	Title     string
	Presenter string
	Position  int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentRecord is renderable document metadata for casting.
type DocumentRecord struct {
	ID           string
	MeetingID    string
	Name         string
	Type         string
	PageCount    int
	Confidential bool
	Watermark    bool
	CreatedAt    time.Time
}

// VoteRecord is one motion put to the board.
type VoteRecord struct {
	ID        string
	MeetingID string
	Motion    string
	Status    string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	OpenedAt  *time.Time
	ClosedAt  *time.Time
}

// MinuteRecord is one appended minute line.
type MinuteRecord struct {
	ID         string
	MeetingID  string
	AuthorID   string
	Text       string
	RecordedAt time.Time
}

// MeetingStore persists meeting metadata records.
type MeetingStore interface {
	PutMeeting(ctx context.Context, meeting MeetingRecord) error
	GetMeeting(ctx context.Context, id string) (MeetingRecord, error)
}

// RosterStore persists the participant roster for a meeting.
type RosterStore interface {
	PutParticipant(ctx context.Context, participant ParticipantRecord) error
	GetParticipant(ctx context.Context, meetingID, participantID string) (ParticipantRecord, error)
	ListRoster(ctx context.Context, meetingID string) ([]ParticipantRecord, error)
}

// AgendaStore persists the ordered agenda for a meeting.
type AgendaStore interface {
	PutAgendaItem(ctx context.Context, item AgendaItemRecord) error
	GetAgendaItem(ctx context.Context, meetingID, itemID string) (AgendaItemRecord, error)
	ListAgendaItems(ctx context.Context, meetingID string) ([]AgendaItemRecord, error)
	SetAgendaItemStatus(ctx context.Context, meetingID, itemID, status string, updatedAt time.Time) error
}

// DocumentStore persists document metadata for a meeting.
type DocumentStore interface {
	PutDocument(ctx context.Context, doc DocumentRecord) error
	GetDocument(ctx context.Context, meetingID, documentID string) (DocumentRecord, error)
	ListDocuments(ctx context.Context, meetingID string) ([]DocumentRecord, error)
}

// VoteStore persists vote records for a meeting.
type VoteStore interface {
	PutVote(ctx context.Context, vote VoteRecord) error
	GetVote(ctx context.Context, meetingID, voteID string) (VoteRecord, error)
	SetVoteStatus(ctx context.Context, meetingID, voteID, status string, at time.Time) error
	ListVotes(ctx context.Context, meetingID string) ([]VoteRecord, error)
}

// MinutesStore persists appended minute entries for a meeting.
type MinutesStore interface {
	AppendMinute(ctx context.Context, minute MinuteRecord) error
	ListMinutes(ctx context.Context, meetingID string) ([]MinuteRecord, error)
}
