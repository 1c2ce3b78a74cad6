package domain

import "time"

// SessionStatus describes the lifecycle state of a live meeting session.
type SessionStatus int

const (
	// StatusUnspecified represents an invalid session status value.
	StatusUnspecified SessionStatus = iota
	// StatusWaiting indicates the room is open but the meeting has not started.
	StatusWaiting
	// StatusStarting indicates the start transition is in flight.
	StatusStarting
	// StatusInProgress indicates the meeting is running.
	StatusInProgress
	// StatusPaused indicates the meeting is suspended for a recess.
	StatusPaused
	// StatusEnding indicates the end transition is in flight.
	StatusEnding
	// StatusEnded indicates the meeting is over. Terminal.
	StatusEnded
)

// String returns the snake_case label for the session status.
func (s SessionStatus) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusStarting:
		return "starting"
	case StatusInProgress:
		return "in_progress"
	case StatusPaused:
		return "paused"
	case StatusEnding:
		return "ending"
	case StatusEnded:
		return "ended"
	default:
		return "unspecified"
	}
}

// IsTerminal reports whether the status permits no further transitions.
func (s SessionStatus) IsTerminal() bool {
	return s == StatusEnded
}

// CanTransitionTo reports whether the lifecycle table permits moving from s
// to target. Starting and ending are pass-through states: the engine enters
// and leaves them within a single atomic mutation, but the table still names
// them so no shortcut transition can skip a leg.
func (s SessionStatus) CanTransitionTo(target SessionStatus) bool {
	switch s {
	case StatusWaiting:
		return target == StatusStarting
	case StatusStarting:
		return target == StatusInProgress
	case StatusInProgress:
		return target == StatusPaused || target == StatusEnding
	case StatusPaused:
		return target == StatusInProgress || target == StatusEnding
	case StatusEnding:
		return target == StatusEnded
	default:
		return false
	}
}

// MeetingInfo is read-only meeting metadata sourced from the meeting store.
type MeetingInfo struct {
	Title       string
	Location    string
	ScheduledAt time.Time
}

// Session is the complete state of one active meeting room.
//
// Mode and Quorum are derived fields: they are written only by the engine's
// recompute pass and have no public setter. SyncConnected and LastSyncAt are
// owned by the realtime transport and surfaced read-only here.
type Session struct {
	MeetingID string
	Meeting   MeetingInfo

	Status SessionStatus
	Mode   Mode
	Quorum Quorum

	SyncConnected bool
	LastSyncAt    time.Time

	CurrentAgendaItemID string
	CurrentAgendaItem   *AgendaItem

	Casting    *CastingDocument
	ActiveVote *ActiveVote

	StartedAt *time.Time
	EndedAt   *time.Time
}
