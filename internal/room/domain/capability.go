package domain

// Permission is a static role permission supplied by the identity
// collaborator. Permissions say what a role may ever do; capabilities say
// what the caller can do right now.
type Permission string

const (
	// PermissionStartSession allows starting the meeting.
	PermissionStartSession Permission = "session.start"
	// PermissionPauseSession allows pausing and resuming the meeting.
	PermissionPauseSession Permission = "session.pause"
	// PermissionEndSession allows ending the meeting.
	PermissionEndSession Permission = "session.end"
	// PermissionLeaveSession allows leaving the room.
	PermissionLeaveSession Permission = "session.leave"
	// PermissionCastDocument allows sharing a document with the room.
	PermissionCastDocument Permission = "casting.start"
	// PermissionStopCast allows stopping any participant's cast.
	PermissionStopCast Permission = "casting.stop"
	// PermissionNavigateAgenda allows moving between agenda items.
	PermissionNavigateAgenda Permission = "agenda.navigate"
	// PermissionManageVotes allows creating, opening and closing votes.
	PermissionManageVotes Permission = "votes.manage"
	// PermissionAdmitParticipants allows admitting waiting participants.
	PermissionAdmitParticipants Permission = "participants.admit"
	// PermissionRemoveParticipants allows removing participants from the session.
	PermissionRemoveParticipants Permission = "participants.remove"
	// PermissionTakeMinutes allows recording minute entries.
	PermissionTakeMinutes Permission = "minutes.take"
	// PermissionViewMinutes allows reading minute entries.
	PermissionViewMinutes Permission = "minutes.view"
)

// PermissionSet is the caller's static role-permission set.
type PermissionSet map[Permission]bool

// Has reports whether the set grants the permission.
func (s PermissionSet) Has(p Permission) bool {
	return s[p]
}

// NewPermissionSet builds a set from a permission list.
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = true
	}
	return set
}

// Capabilities is the concrete per-caller action surface derived from the
// session status, the session mode and the caller's permission set. UI
// surfaces consult only this projection to decide whether a control is
// active; every engine action independently re-checks the same guard.
type Capabilities struct {
	CanStart             bool
	CanPause             bool
	CanResume            bool
	CanEnd               bool
	CanLeave             bool
	CanCastDocument      bool
	CanStopCasting       bool
	CanNavigateAgenda    bool
	CanCreateVote        bool
	CanStartVote         bool
	CanAdmitParticipants bool
	CanRemoveParticipant bool
	CanTakeMinutes       bool
	CanViewMinutes       bool
	ShowPhysicalFeatures bool
	ShowVirtualFeatures  bool
}

// ProjectCapabilities computes the caller's capability set. It is a pure
// function of its arguments and is re-invoked per read, so a stale projection
// cannot exist by construction.
//
// Composition rules:
//   - capabilities that require a running session are forced false outside
//     in_progress (or paused, where the action is valid during a recess);
//   - casting and media controls are forced false while the mode is
//     physical-only, since there are no virtual features to control;
//   - nothing here mutates state or consults anything beyond the arguments.
func ProjectCapabilities(status SessionStatus, mode Mode, perms PermissionSet) Capabilities {
	active := status == StatusInProgress
	activeOrPaused := active || status == StatusPaused
	open := !status.IsTerminal() && status != StatusEnding
	virtualFeatures := mode != ModePhysical

	return Capabilities{
		CanStart:             perms.Has(PermissionStartSession) && status == StatusWaiting,
		CanPause:             perms.Has(PermissionPauseSession) && active,
		CanResume:            perms.Has(PermissionPauseSession) && status == StatusPaused,
		CanEnd:               perms.Has(PermissionEndSession) && activeOrPaused,
		CanLeave:             perms.Has(PermissionLeaveSession) && open,
		CanCastDocument:      perms.Has(PermissionCastDocument) && active && virtualFeatures,
		CanStopCasting:       perms.Has(PermissionStopCast) && activeOrPaused && virtualFeatures,
		CanNavigateAgenda:    perms.Has(PermissionNavigateAgenda) && active,
		CanCreateVote:        perms.Has(PermissionManageVotes) && active,
		CanStartVote:         perms.Has(PermissionManageVotes) && active,
		CanAdmitParticipants: perms.Has(PermissionAdmitParticipants) && open,
		CanRemoveParticipant: perms.Has(PermissionRemoveParticipants) && open,
		CanTakeMinutes:       perms.Has(PermissionTakeMinutes) && active,
		CanViewMinutes:       perms.Has(PermissionViewMinutes),
		ShowPhysicalFeatures: mode == ModePhysical || mode == ModeHybrid,
		ShowVirtualFeatures:  mode == ModeVirtual || mode == ModeHybrid,
	}
}
