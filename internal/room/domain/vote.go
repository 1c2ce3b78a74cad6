package domain

// VoteStatus describes the lifecycle of the session's active vote. Ballot
// casting and tallying belong to the voting collaborator; the engine tracks
// only the handle and the single-active-vote invariant.
type VoteStatus int

const (
	// VoteUnspecified represents an invalid vote status value.
	VoteUnspecified VoteStatus = iota
	// VotePending indicates the vote is created but not yet accepting ballots.
	VotePending
	// VoteOpen indicates the tally is accepting ballots.
	VoteOpen
	// VoteClosed indicates the vote has concluded.
	VoteClosed
)

// String returns the lowercase label for the vote status.
func (s VoteStatus) String() string {
	switch s {
	case VotePending:
		return "pending"
	case VoteOpen:
		return "open"
	case VoteClosed:
		return "closed"
	default:
		return "unspecified"
	}
}

// ActiveVote is the engine's handle on the at-most-one vote in flight.
type ActiveVote struct {
	ID              string
	Motion          string
	Status          VoteStatus
	TallyInProgress bool
}

// MinuteEntry is one recorded minute line, owned by the minutes collaborator.
type MinuteEntry struct {
	ID        string
	MeetingID string
	AuthorID  string
	Text      string
}
