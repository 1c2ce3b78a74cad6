package engine

import (
	"context"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// StartCasting shares a document with the room. The document collaborator
// resolves the id to renderable metadata; only that metadata enters the
// session state. Exactly one document can be cast at a time.
func (e *Engine) StartCasting(ctx context.Context, caller Caller, documentID string) error {
	ctx, span := e.startSpan(ctx, "room.start_casting")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionCastDocument) {
		return errForbidden("start_casting")
	}
	if e.session.Mode == domain.ModePhysical {
		return errForbidden("start_casting")
	}
	if e.session.Status != domain.StatusInProgress {
		return errors.WithMetadata(errors.CodeRoomInvalidState, "casting requires a running session",
			map[string]string{"Status": e.session.Status.String()})
	}
	if e.session.Casting != nil {
		return errors.WithMetadata(errors.CodeRoomAlreadyCasting, "a document is already being cast",
			map[string]string{"CasterName": e.session.Casting.CasterName})
	}

	if e.collab.Documents == nil {
		return errors.New(errors.CodeCollaboratorFailure, "document collaborator is not configured")
	}
	meta, err := e.collab.Documents.Resolve(ctx, e.session.MeetingID, documentID)
	if err != nil {
		return err
	}

	casting := domain.NewCastingDocument(meta, caller.ParticipantID, caller.DisplayName)
	e.session.Casting = &casting
	e.notifyLocked(EventCastingStarted)
	return nil
}

// StopCasting releases the current cast. The caster may always stop their
// own cast; anyone else needs the stop permission.
func (e *Engine) StopCasting(ctx context.Context, caller Caller) error {
	_, span := e.startSpan(ctx, "room.stop_casting")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if e.session.Casting == nil {
		return errors.New(errors.CodeRoomInvalidState, "no document is being cast")
	}
	if e.session.Casting.CasterID != caller.ParticipantID && !caller.Permissions.Has(domain.PermissionStopCast) {
		return errForbidden("stop_casting")
	}

	e.session.Casting = nil
	e.notifyLocked(EventCastingStopped)
	return nil
}

// NavigatePage moves the cast to another page. The requested page is clamped
// into the document's page range; only the caster may navigate. A navigation
// that lands on the current page changes nothing and notifies nobody.
func (e *Engine) NavigatePage(ctx context.Context, caller Caller, page int) error {
	_, span := e.startSpan(ctx, "room.navigate_page")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if e.session.Casting == nil {
		return errors.New(errors.CodeRoomInvalidState, "no document is being cast")
	}
	if e.session.Casting.CasterID != caller.ParticipantID {
		return errForbidden("navigate_page")
	}

	clamped := e.session.Casting.ClampPage(page)
	if clamped == e.session.Casting.Page {
		return nil
	}

	e.session.Casting.Page = clamped
	e.notifyLocked(EventCastingPage)
	return nil
}
