package engine

import "github.com/MochamaB/eboard/internal/room/domain"

// Snapshot is an immutable copy of the session state at one settled point.
// Mutating a snapshot never affects the engine.
type Snapshot struct {
	Session      domain.Session
	Participants []domain.Participant
}

// Participant looks up one participant in the snapshot.
func (s Snapshot) Participant(participantID string) (domain.Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == participantID {
			return p, true
		}
	}
	return domain.Participant{}, false
}
