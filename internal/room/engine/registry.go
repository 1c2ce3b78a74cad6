package engine

import (
	"context"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// Caller identifies who is acting, with the permissions their room token
// granted. The engine never consults roles directly.
type Caller struct {
	ParticipantID string
	DisplayName   string
	Permissions   domain.PermissionSet
}

// PresenceUpdate is one folded-in presence message for a participant.
type PresenceUpdate struct {
	ParticipantID string
	Connection    domain.ConnectionStatus
	Flags         domain.LiveFlags
}

// Admit moves a participant from the admission queue (or the expected
// roster) into the session.
func (e *Engine) Admit(ctx context.Context, caller Caller, participantID string) error {
	_, span := e.startSpan(ctx, "room.admit")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionAdmitParticipants) {
		return errForbidden("admit")
	}

	p, ok := e.participants[participantID]
	if !ok {
		return errors.New(errors.CodeParticipantNotFound, "participant not found")
	}
	if p.Attendance == domain.AttendanceJoined {
		return errors.WithMetadata(errors.CodeParticipantAlreadyJoined, "participant already joined",
			map[string]string{"ParticipantID": participantID})
	}

	p.Attendance = domain.AttendanceJoined
	e.recomputeLocked()
	e.notifyLocked(EventParticipantJoined)
	return nil
}

// AdmitAll admits every participant currently waiting in the queue. It is a
// no-op when the queue is empty.
func (e *Engine) AdmitAll(ctx context.Context, caller Caller) error {
	_, span := e.startSpan(ctx, "room.admit_all")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionAdmitParticipants) {
		return errForbidden("admit_all")
	}

	admitted := 0
	for _, pid := range e.order {
		p := e.participants[pid]
		if p.Attendance == domain.AttendanceWaiting {
			p.Attendance = domain.AttendanceJoined
			admitted++
		}
	}
	if admitted == 0 {
		return nil
	}

	e.recomputeLocked()
	e.notifyLocked(EventParticipantJoined)
	return nil
}

// Remove moves a joined participant back to the expected roster. The
// participant stops counting toward presence and quorum immediately.
func (e *Engine) Remove(ctx context.Context, caller Caller, participantID string) error {
	_, span := e.startSpan(ctx, "room.remove")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionRemoveParticipants) {
		return errForbidden("remove")
	}

	p, ok := e.participants[participantID]
	if !ok {
		return errors.New(errors.CodeParticipantNotFound, "participant not found")
	}
	if p.Attendance != domain.AttendanceJoined {
		return errors.WithMetadata(errors.CodeRoomInvalidTransition, "participant is not joined",
			map[string]string{"ParticipantID": participantID})
	}

	p.Attendance = domain.AttendanceExpected
	p.Connection = domain.ConnectionDisconnected
	p.Flags = domain.LiveFlags{}
	e.recomputeLocked()
	e.notifyLocked(EventParticipantLeft)
	return nil
}

// UpdatePresence folds one presence message into the registry. Updates that
// change nothing are dropped without a recompute or a notification. After
// the session ends only teardown updates (disconnects) are accepted.
func (e *Engine) UpdatePresence(ctx context.Context, update PresenceUpdate) error {
	_, span := e.startSpan(ctx, "room.update_presence")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.participants[update.ParticipantID]
	if !ok {
		return errors.New(errors.CodeParticipantNotFound, "participant not found")
	}
	if e.frozenLocked() && update.Connection != domain.ConnectionDisconnected {
		return errSessionEnded()
	}
	if p.Connection == update.Connection && p.Flags == update.Flags {
		return nil
	}

	p.Connection = update.Connection
	p.Flags = update.Flags
	if update.Connection == domain.ConnectionDisconnected {
		p.Flags = domain.LiveFlags{}
	}

	e.recomputeLocked()
	e.notifyLocked(EventPresenceUpdated)
	return nil
}

// Leave tears down the caller's own presence and subscription. It changes
// nobody else's state and is allowed even after the session has ended.
func (e *Engine) Leave(ctx context.Context, caller Caller, subID int) error {
	_, span := e.startSpan(ctx, "room.leave")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !caller.Permissions.Has(domain.PermissionLeaveSession) {
		return errForbidden("leave")
	}

	if p, ok := e.participants[caller.ParticipantID]; ok {
		if p.Connection != domain.ConnectionDisconnected || p.Flags != (domain.LiveFlags{}) {
			p.Connection = domain.ConnectionDisconnected
			p.Flags = domain.LiveFlags{}
			e.recomputeLocked()
			e.notifyLocked(EventPresenceUpdated)
		}
	}

	e.unsubscribeLocked(subID)
	return nil
}
