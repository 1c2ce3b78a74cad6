package engine

import (
	"context"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// RecordMinute appends one minute entry through the minutes collaborator.
func (e *Engine) RecordMinute(ctx context.Context, caller Caller, text string) (domain.MinuteEntry, error) {
	ctx, span := e.startSpan(ctx, "room.record_minute")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return domain.MinuteEntry{}, errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionTakeMinutes) {
		return domain.MinuteEntry{}, errForbidden("record_minute")
	}
	if e.session.Status != domain.StatusInProgress {
		return domain.MinuteEntry{}, errors.WithMetadata(errors.CodeRoomInvalidState, "minutes require a running session",
			map[string]string{"Status": e.session.Status.String()})
	}

	if e.collab.Minutes == nil {
		return domain.MinuteEntry{}, errors.New(errors.CodeCollaboratorFailure, "minutes collaborator is not configured")
	}
	entry, err := e.collab.Minutes.Record(ctx, e.session.MeetingID, caller.ParticipantID, text)
	if err != nil {
		return domain.MinuteEntry{}, err
	}

	e.notifyLocked(EventMinuteRecorded)
	return entry, nil
}

// Minutes lists the meeting's minutes. Reading survives the end of the
// session; only writes are frozen.
func (e *Engine) Minutes(ctx context.Context, caller Caller) ([]domain.MinuteEntry, error) {
	ctx, span := e.startSpan(ctx, "room.minutes")
	defer span.End()

	if !caller.Permissions.Has(domain.PermissionViewMinutes) {
		return nil, errForbidden("minutes")
	}

	e.mu.Lock()
	meetingID := e.session.MeetingID
	minutes := e.collab.Minutes
	e.mu.Unlock()

	if minutes == nil {
		return nil, errors.New(errors.CodeCollaboratorFailure, "minutes collaborator is not configured")
	}
	return minutes.List(ctx, meetingID)
}
