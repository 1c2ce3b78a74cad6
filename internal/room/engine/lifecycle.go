package engine

import (
	"context"
	"strconv"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// Start moves the session from waiting to in_progress. The pass through the
// starting state happens inside one critical section, so no reader ever
// observes it. Quorum is checked before the caller's capability: a chair
// without quorum learns about the missing quorum, not about permissions.
func (e *Engine) Start(ctx context.Context, caller Caller) error {
	_, span := e.startSpan(ctx, "room.start")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.Status != domain.StatusWaiting {
		return transitionError(e.session.Status, domain.StatusInProgress)
	}
	if !e.session.Quorum.Met {
		return errors.WithMetadata(errors.CodeRoomQuorumNotMet, "quorum has not been met",
			map[string]string{
				"Present":  strconv.Itoa(e.session.Quorum.PresentCount),
				"Required": strconv.Itoa(e.session.Quorum.RequiredCount),
			})
	}
	if !caller.Permissions.Has(domain.PermissionStartSession) {
		return errForbidden("start")
	}

	e.session.Status = domain.StatusStarting
	e.session.Status = domain.StatusInProgress
	startedAt := e.clock().UTC()
	e.session.StartedAt = &startedAt

	e.notifyLocked(EventSessionStarted)
	return nil
}

// Pause suspends the session for a recess. Live state is kept as-is.
func (e *Engine) Pause(ctx context.Context, caller Caller) error {
	_, span := e.startSpan(ctx, "room.pause")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !caller.Permissions.Has(domain.PermissionPauseSession) {
		return errForbidden("pause")
	}
	if e.session.Status != domain.StatusInProgress {
		return transitionError(e.session.Status, domain.StatusPaused)
	}

	e.session.Status = domain.StatusPaused
	e.notifyLocked(EventSessionPaused)
	return nil
}

// Resume continues a paused session.
func (e *Engine) Resume(ctx context.Context, caller Caller) error {
	_, span := e.startSpan(ctx, "room.resume")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !caller.Permissions.Has(domain.PermissionPauseSession) {
		return errForbidden("resume")
	}
	if e.session.Status != domain.StatusPaused {
		return transitionError(e.session.Status, domain.StatusInProgress)
	}

	e.session.Status = domain.StatusInProgress
	e.notifyLocked(EventSessionResumed)
	return nil
}

// End closes the session. The pass through the ending state happens inside
// one critical section. Any cast and any active vote handle are released
// locally; their collaborators reconcile on their own. Ending an already
// ended session is a no-op.
func (e *Engine) End(ctx context.Context, caller Caller) error {
	_, span := e.startSpan(ctx, "room.end")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !caller.Permissions.Has(domain.PermissionEndSession) {
		return errForbidden("end")
	}
	if e.session.Status == domain.StatusEnded {
		return nil
	}
	if e.session.Status != domain.StatusInProgress && e.session.Status != domain.StatusPaused {
		return transitionError(e.session.Status, domain.StatusEnded)
	}

	e.session.Status = domain.StatusEnding
	e.session.Casting = nil
	e.session.ActiveVote = nil
	e.session.Status = domain.StatusEnded
	endedAt := e.clock().UTC()
	e.session.EndedAt = &endedAt

	e.notifyLocked(EventSessionEnded)
	return nil
}

func transitionError(from, to domain.SessionStatus) error {
	return errors.WithMetadata(errors.CodeRoomInvalidTransition, "session transition not permitted",
		map[string]string{"FromStatus": from.String(), "ToStatus": to.String()})
}
