package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Room action errors
	CodeRoomForbidden         Code = "ROOM_FORBIDDEN"
	CodeRoomInvalidTransition Code = "ROOM_INVALID_TRANSITION"
	CodeRoomInvalidState      Code = "ROOM_INVALID_STATE"
	CodeRoomQuorumNotMet      Code = "ROOM_QUORUM_NOT_MET"
	CodeRoomAlreadyCasting    Code = "ROOM_ALREADY_CASTING"
	CodeRoomVoteAlreadyActive Code = "ROOM_VOTE_ALREADY_ACTIVE"
	CodeRoomSessionEnded      Code = "ROOM_SESSION_ENDED"
	CodeCollaboratorFailure   Code = "ROOM_COLLABORATOR_FAILURE"

	// Participant errors
	CodeParticipantEmptyDisplayName Code = "PARTICIPANT_EMPTY_DISPLAY_NAME"
	CodeParticipantEmptyMeetingID   Code = "PARTICIPANT_EMPTY_MEETING_ID"
	CodeParticipantAlreadyJoined    Code = "PARTICIPANT_ALREADY_JOINED"
	CodeParticipantNotFound         Code = "PARTICIPANT_NOT_FOUND"

	// Meeting errors
	CodeMeetingEmptyTitle          Code = "MEETING_EMPTY_TITLE"
	CodeMeetingInvalidQuorum       Code = "MEETING_INVALID_QUORUM_PERCENT"
	CodeMeetingEmptyID             Code = "MEETING_EMPTY_ID"

	// Agenda errors
	CodeAgendaItemEmptyTitle Code = "AGENDA_ITEM_EMPTY_TITLE"
	CodeAgendaInvalidStatus  Code = "AGENDA_INVALID_STATUS"
	CodeAgendaItemNotFound   Code = "AGENDA_ITEM_NOT_FOUND"

	// Vote errors
	CodeVoteEmptyMotion       Code = "VOTE_EMPTY_MOTION"
	CodeVoteInvalidTransition Code = "VOTE_INVALID_TRANSITION"
	CodeVoteNotFound          Code = "VOTE_NOT_FOUND"

	// Minutes errors
	CodeMinuteEmptyText Code = "MINUTE_EMPTY_TEXT"

	// Auth errors
	CodeAuthInvalidToken Code = "AUTH_INVALID_TOKEN"
	CodeAuthInvalidRole  Code = "AUTH_INVALID_ROLE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeParticipantEmptyDisplayName,
		CodeParticipantEmptyMeetingID,
		CodeMeetingEmptyTitle,
		CodeMeetingInvalidQuorum,
		CodeMeetingEmptyID,
		CodeAgendaItemEmptyTitle,
		CodeAgendaInvalidStatus,
		CodeVoteEmptyMotion,
		CodeMinuteEmptyText:
		return codes.InvalidArgument

	// PermissionDenied - the caller lacks the capability
	case CodeRoomForbidden:
		return codes.PermissionDenied

	// Unauthenticated - the supplied identity could not be read
	case CodeAuthInvalidToken,
		CodeAuthInvalidRole:
		return codes.Unauthenticated

	// FailedPrecondition - state doesn't allow operation
	case CodeRoomInvalidTransition,
		CodeRoomInvalidState,
		CodeRoomQuorumNotMet,
		CodeRoomAlreadyCasting,
		CodeRoomVoteAlreadyActive,
		CodeRoomSessionEnded,
		CodeParticipantAlreadyJoined,
		CodeVoteInvalidTransition:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeParticipantNotFound,
		CodeAgendaItemNotFound,
		CodeVoteNotFound:
		return codes.NotFound

	// Unavailable - an external collaborator failed
	case CodeCollaboratorFailure:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
