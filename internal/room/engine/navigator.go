package engine

import (
	"context"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// NavigateToItem moves the room's shared focus to an agenda item.
func (e *Engine) NavigateToItem(ctx context.Context, caller Caller, itemID string) error {
	_, span := e.startSpan(ctx, "room.navigate_to_item")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionNavigateAgenda) {
		return errForbidden("navigate_to_item")
	}
	if e.session.Status != domain.StatusInProgress {
		return errors.WithMetadata(errors.CodeRoomInvalidState, "agenda navigation requires a running session",
			map[string]string{"Status": e.session.Status.String()})
	}

	idx := e.agendaIndexLocked(itemID)
	if idx < 0 {
		return errors.New(errors.CodeAgendaItemNotFound, "agenda item not found")
	}
	if e.session.CurrentAgendaItemID == itemID {
		return nil
	}

	item := e.agendaItems[idx]
	e.session.CurrentAgendaItemID = itemID
	e.session.CurrentAgendaItem = &item
	e.notifyLocked(EventAgendaNavigated)
	return nil
}

// MarkItemDiscussed closes the current agenda item as completed.
func (e *Engine) MarkItemDiscussed(ctx context.Context, caller Caller, itemID string) error {
	return e.closeItem(ctx, caller, itemID, domain.AgendaItemCompleted, "room.mark_item_discussed")
}

// DeferItem closes the current agenda item as skipped, to be picked up by a
// later meeting.
func (e *Engine) DeferItem(ctx context.Context, caller Caller, itemID string) error {
	return e.closeItem(ctx, caller, itemID, domain.AgendaItemSkipped, "room.defer_item")
}

// closeItem records an item outcome with the agenda collaborator and, on
// success, mirrors the status locally. A collaborator failure leaves the
// session untouched.
func (e *Engine) closeItem(ctx context.Context, caller Caller, itemID string, status domain.AgendaItemStatus, spanName string) error {
	ctx, span := e.startSpan(ctx, spanName)
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionNavigateAgenda) {
		return errForbidden("close_item")
	}
	if e.session.CurrentAgendaItemID != itemID {
		return errors.WithMetadata(errors.CodeRoomInvalidState, "item is not the current agenda item",
			map[string]string{"ItemID": itemID})
	}

	idx := e.agendaIndexLocked(itemID)
	if idx < 0 {
		return errors.New(errors.CodeAgendaItemNotFound, "agenda item not found")
	}

	if e.collab.Agenda == nil {
		return errors.New(errors.CodeCollaboratorFailure, "agenda collaborator is not configured")
	}
	if err := e.collab.Agenda.SetItemStatus(ctx, e.session.MeetingID, itemID, status); err != nil {
		return err
	}

	e.agendaItems[idx].Status = status
	if e.session.CurrentAgendaItem != nil {
		e.session.CurrentAgendaItem.Status = status
	}
	e.notifyLocked(EventAgendaItemClosed)
	return nil
}

func (e *Engine) agendaIndexLocked(itemID string) int {
	for i := range e.agendaItems {
		if e.agendaItems[i].ID == itemID {
			return i
		}
	}
	return -1
}

// CreateVote asks the voting collaborator for a vote record on a motion and
// takes the session's single active-vote slot. Creating a vote requires
// quorum: a board cannot move a motion without one.
func (e *Engine) CreateVote(ctx context.Context, caller Caller, motion string) (domain.ActiveVote, error) {
	ctx, span := e.startSpan(ctx, "room.create_vote")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return domain.ActiveVote{}, errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionManageVotes) {
		return domain.ActiveVote{}, errForbidden("create_vote")
	}
	if e.session.Status != domain.StatusInProgress {
		return domain.ActiveVote{}, errors.WithMetadata(errors.CodeRoomInvalidState, "voting requires a running session",
			map[string]string{"Status": e.session.Status.String()})
	}
	if !e.session.Quorum.Met {
		return domain.ActiveVote{}, errors.New(errors.CodeRoomQuorumNotMet, "quorum has not been met")
	}
	if e.session.ActiveVote != nil {
		return domain.ActiveVote{}, errors.WithMetadata(errors.CodeRoomVoteAlreadyActive, "another vote is already active",
			map[string]string{"VoteID": e.session.ActiveVote.ID})
	}

	if e.collab.Voting == nil {
		return domain.ActiveVote{}, errors.New(errors.CodeCollaboratorFailure, "voting collaborator is not configured")
	}
	vote, err := e.collab.Voting.CreateVote(ctx, e.session.MeetingID, motion, caller.ParticipantID)
	if err != nil {
		return domain.ActiveVote{}, err
	}

	e.session.ActiveVote = &vote
	e.notifyLocked(EventVoteCreated)
	return vote, nil
}

// StartVote opens the active vote; the collaborator's tally starts accepting
// ballots.
func (e *Engine) StartVote(ctx context.Context, caller Caller, voteID string) error {
	ctx, span := e.startSpan(ctx, "room.start_vote")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionManageVotes) {
		return errForbidden("start_vote")
	}
	if e.session.ActiveVote == nil || e.session.ActiveVote.ID != voteID {
		return errors.New(errors.CodeVoteNotFound, "vote is not active in this session")
	}
	if e.session.ActiveVote.Status != domain.VotePending {
		return errors.WithMetadata(errors.CodeVoteInvalidTransition, "vote is not pending",
			map[string]string{"FromStatus": e.session.ActiveVote.Status.String()})
	}

	if e.collab.Voting == nil {
		return errors.New(errors.CodeCollaboratorFailure, "voting collaborator is not configured")
	}
	if err := e.collab.Voting.OpenVote(ctx, e.session.MeetingID, voteID); err != nil {
		return err
	}

	e.session.ActiveVote.Status = domain.VoteOpen
	e.session.ActiveVote.TallyInProgress = true
	e.notifyLocked(EventVoteStarted)
	return nil
}

// CloseVote closes the active vote and frees the active-vote slot for the
// next motion. The tally outcome stays with the voting collaborator.
func (e *Engine) CloseVote(ctx context.Context, caller Caller, voteID string) error {
	ctx, span := e.startSpan(ctx, "room.close_vote")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozenLocked() {
		return errSessionEnded()
	}
	if !caller.Permissions.Has(domain.PermissionManageVotes) {
		return errForbidden("close_vote")
	}
	if e.session.ActiveVote == nil || e.session.ActiveVote.ID != voteID {
		return errors.New(errors.CodeVoteNotFound, "vote is not active in this session")
	}
	if e.session.ActiveVote.Status != domain.VoteOpen {
		return errors.WithMetadata(errors.CodeVoteInvalidTransition, "vote is not open",
			map[string]string{"FromStatus": e.session.ActiveVote.Status.String()})
	}

	if e.collab.Voting == nil {
		return errors.New(errors.CodeCollaboratorFailure, "voting collaborator is not configured")
	}
	if err := e.collab.Voting.CloseVote(ctx, e.session.MeetingID, voteID); err != nil {
		return err
	}

	e.session.ActiveVote = nil
	e.notifyLocked(EventVoteClosed)
	return nil
}
