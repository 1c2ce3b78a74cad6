package domain

import (
	"fmt"
	"strings"

	"github.com/MochamaB/eboard/internal/platform/id"
)

// AttendanceStatus describes whether a participant is expected to attend,
// is waiting in the admission queue, or has joined the session.
type AttendanceStatus int

const (
	// AttendanceUnspecified represents an invalid attendance status value.
	AttendanceUnspecified AttendanceStatus = iota
	// AttendanceExpected indicates the participant is on the roster but not yet present.
	AttendanceExpected
	// AttendanceWaiting indicates the participant is queued for admission.
	AttendanceWaiting
	// AttendanceJoined indicates the participant has been admitted to the session.
	AttendanceJoined
)

// String returns the lowercase label for the attendance status.
func (s AttendanceStatus) String() string {
	switch s {
	case AttendanceExpected:
		return "expected"
	case AttendanceWaiting:
		return "waiting"
	case AttendanceJoined:
		return "joined"
	default:
		return "unspecified"
	}
}

// ConnectionStatus describes the channel through which a participant is present.
type ConnectionStatus int

const (
	// ConnectionUnspecified represents an invalid connection status value.
	ConnectionUnspecified ConnectionStatus = iota
	// ConnectionInRoom indicates physical presence in the boardroom.
	ConnectionInRoom
	// ConnectionConnecting indicates a remote client negotiating its link.
	ConnectionConnecting
	// ConnectionConnected indicates an established remote link.
	ConnectionConnected
	// ConnectionDisconnected indicates no live channel.
	ConnectionDisconnected
)

// String returns the snake_case label for the connection status.
func (s ConnectionStatus) String() string {
	switch s {
	case ConnectionInRoom:
		return "in_room"
	case ConnectionConnecting:
		return "connecting"
	case ConnectionConnected:
		return "connected"
	case ConnectionDisconnected:
		return "disconnected"
	default:
		return "unspecified"
	}
}

// LiveFlags carries the transient media state pushed by the sync feed.
type LiveFlags struct {
	Muted      bool
	VideoOn    bool
	Speaking   bool
	HandRaised bool
}

// Participant represents one person's relationship to the live session.
//
// The record is never deleted during a session: removal transitions the
// attendance status back to expected so history is preserved.
type Participant struct {
	ID          string
	MeetingID   string
	UserID      string
	DisplayName string
	Role        string
	Guest       bool
	Attendance  AttendanceStatus
	Connection  ConnectionStatus
	Flags       LiveFlags
}

// CreateParticipantInput describes the metadata needed to create a roster entry.
type CreateParticipantInput struct {
	MeetingID   string
	UserID      string
	DisplayName string
	Role        string
	Guest       bool
}

// CreateParticipant creates a roster participant with a generated ID.
// Attendance defaults to expected and the connection to disconnected.
func CreateParticipant(input CreateParticipantInput, idGenerator func() (string, error)) (Participant, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateParticipantInput(input)
	if err != nil {
		return Participant{}, err
	}

	participantID, err := idGenerator()
	if err != nil {
		return Participant{}, fmt.Errorf("generate participant id: %w", err)
	}

	return Participant{
		ID:          participantID,
		MeetingID:   normalized.MeetingID,
		UserID:      normalized.UserID,
		DisplayName: normalized.DisplayName,
		Role:        normalized.Role,
		Guest:       normalized.Guest,
		Attendance:  AttendanceExpected,
		Connection:  ConnectionDisconnected,
	}, nil
}

// NormalizeCreateParticipantInput trims and validates participant input metadata.
func NormalizeCreateParticipantInput(input CreateParticipantInput) (CreateParticipantInput, error) {
	input.MeetingID = strings.TrimSpace(input.MeetingID)
	if input.MeetingID == "" {
		return CreateParticipantInput{}, ErrEmptyMeetingID
	}
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if input.DisplayName == "" {
		return CreateParticipantInput{}, ErrEmptyDisplayName
	}
	input.UserID = strings.TrimSpace(input.UserID)
	input.Role = strings.TrimSpace(input.Role)
	return input, nil
}

// CountsTowardPresence reports whether the participant counts for quorum and
// mode derivations. Waiting and expected participants never count, and guests
// are excluded entirely.
func (p Participant) CountsTowardPresence() bool {
	return p.Attendance == AttendanceJoined && !p.Guest
}
