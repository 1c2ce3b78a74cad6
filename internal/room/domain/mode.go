package domain

// Mode is the session's effective attendance character. It is always derived
// from joined participants' connection statuses and never directly settable;
// ResolveMode is the only code path that produces a new value.
type Mode int

const (
	// ModeUnspecified represents an invalid mode value.
	ModeUnspecified Mode = iota
	// ModePhysical indicates an in-room-only session.
	ModePhysical
	// ModeVirtual indicates a remote-only session.
	ModeVirtual
	// ModeHybrid indicates a session with both in-room and remote participants.
	ModeHybrid
)

// String returns the lowercase label for the mode.
func (m Mode) String() string {
	switch m {
	case ModePhysical:
		return "physical"
	case ModeVirtual:
		return "virtual"
	case ModeHybrid:
		return "hybrid"
	default:
		return "unspecified"
	}
}

// ResolveMode classifies each joined non-guest participant as physically or
// virtually present and derives the session mode. When nobody is joined the
// previous mode is retained so transient zero-presence does not oscillate the
// session back to a default.
func ResolveMode(participants []Participant, previous Mode) Mode {
	var physical, virtual int
	for _, p := range participants {
		if !p.CountsTowardPresence() {
			continue
		}
		switch p.Connection {
		case ConnectionInRoom:
			physical++
		case ConnectionConnected, ConnectionConnecting:
			virtual++
		}
	}

	switch {
	case physical > 0 && virtual == 0:
		return ModePhysical
	case virtual > 0 && physical == 0:
		return ModeVirtual
	case physical > 0 && virtual > 0:
		return ModeHybrid
	default:
		return previous
	}
}
