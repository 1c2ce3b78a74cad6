package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeRoomForbidden               = "ROOM_FORBIDDEN"
	CodeRoomInvalidTransition       = "ROOM_INVALID_TRANSITION"
	CodeRoomInvalidState            = "ROOM_INVALID_STATE"
	CodeRoomQuorumNotMet            = "ROOM_QUORUM_NOT_MET"
	CodeRoomAlreadyCasting          = "ROOM_ALREADY_CASTING"
	CodeRoomVoteAlreadyActive       = "ROOM_VOTE_ALREADY_ACTIVE"
	CodeRoomSessionEnded            = "ROOM_SESSION_ENDED"
	CodeCollaboratorFailure         = "ROOM_COLLABORATOR_FAILURE"
	CodeParticipantEmptyDisplayName = "PARTICIPANT_EMPTY_DISPLAY_NAME"
	CodeParticipantEmptyMeetingID   = "PARTICIPANT_EMPTY_MEETING_ID"
	CodeParticipantAlreadyJoined    = "PARTICIPANT_ALREADY_JOINED"
	CodeParticipantNotFound         = "PARTICIPANT_NOT_FOUND"
	CodeMeetingEmptyTitle           = "MEETING_EMPTY_TITLE"
	CodeMeetingInvalidQuorum        = "MEETING_INVALID_QUORUM_PERCENT"
	CodeMeetingEmptyID              = "MEETING_EMPTY_ID"
	CodeAgendaItemEmptyTitle        = "AGENDA_ITEM_EMPTY_TITLE"
	CodeAgendaInvalidStatus         = "AGENDA_INVALID_STATUS"
	CodeAgendaItemNotFound          = "AGENDA_ITEM_NOT_FOUND"
	CodeVoteEmptyMotion             = "VOTE_EMPTY_MOTION"
	CodeVoteInvalidTransition       = "VOTE_INVALID_TRANSITION"
	CodeVoteNotFound                = "VOTE_NOT_FOUND"
	CodeMinuteEmptyText             = "MINUTE_EMPTY_TEXT"
	CodeAuthInvalidToken            = "AUTH_INVALID_TOKEN"
	CodeAuthInvalidRole             = "AUTH_INVALID_ROLE"
	CodeNotFound                    = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Room action errors
		CodeRoomForbidden:         "You are not allowed to perform this action",
		CodeRoomInvalidTransition: "The session cannot move from {{.FromStatus}} to {{.ToStatus}}",
		CodeRoomInvalidState:      "The session state does not allow {{.Operation}}",
		CodeRoomQuorumNotMet:      "Quorum has not been reached ({{.Present}} of {{.Required}} required members present)",
		CodeRoomAlreadyCasting:    "Another document is already being cast by {{.CasterName}}",
		CodeRoomVoteAlreadyActive: "A vote is already in progress",
		CodeRoomSessionEnded:      "The session has ended",
		CodeCollaboratorFailure:   "A required service is temporarily unavailable",

		// Participant errors
		CodeParticipantEmptyDisplayName: "Participant display name cannot be empty",
		CodeParticipantEmptyMeetingID:   "Meeting ID is required for participant",
		CodeParticipantAlreadyJoined:    "Participant has already joined the session",
		CodeParticipantNotFound:         "The participant is not on this meeting's roster",

		// Meeting errors
		CodeMeetingEmptyTitle:    "Meeting title cannot be empty",
		CodeMeetingInvalidQuorum: "Quorum percentage must be between 1 and 100",
		CodeMeetingEmptyID:       "Meeting ID is required",

		// Agenda errors
		CodeAgendaItemEmptyTitle: "Agenda item title cannot be empty",
		CodeAgendaInvalidStatus:  "Invalid agenda item status specified",
		CodeAgendaItemNotFound:   "The agenda item was not found",

		// Vote errors
		CodeVoteEmptyMotion:       "Vote motion text cannot be empty",
		CodeVoteInvalidTransition: "Vote cannot move from {{.FromStatus}} to {{.ToStatus}}",
		CodeVoteNotFound:          "The vote was not found",

		// Minutes errors
		CodeMinuteEmptyText: "Minute text cannot be empty",

		// Auth errors
		CodeAuthInvalidToken: "The room access token is invalid or expired",
		CodeAuthInvalidRole:  "Unknown board role specified",

		// Storage errors
		CodeNotFound: "The requested resource was not found",
	},
}
