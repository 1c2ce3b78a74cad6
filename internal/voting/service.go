// Package voting is the voting collaborator: it creates vote records, opens
// and closes them. Ballot casting and tallying live entirely outside the
// room engine, which holds only a handle on the active vote.
package voting

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/platform/id"
	"github.com/MochamaB/eboard/internal/room/domain"
	"github.com/MochamaB/eboard/internal/storage"
)

// Service manages vote records through a VoteStore.
type Service struct {
	store       storage.VoteStore
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService creates a voting service with default dependencies.
func NewService(store storage.VoteStore) *Service {
	return &Service{
		store:       store,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// CreateVote creates a pending vote record for a motion.
func (s *Service) CreateVote(ctx context.Context, meetingID, motion, createdBy string) (domain.ActiveVote, error) {
	if s == nil || s.store == nil {
		return domain.ActiveVote{}, errors.New(errors.CodeCollaboratorFailure, "vote store is not configured")
	}
	motion = strings.TrimSpace(motion)
	if motion == "" {
		return domain.ActiveVote{}, errors.New(errors.CodeVoteEmptyMotion, domain.ErrEmptyMotion.Error())
	}

	voteID, err := s.idGenerator()
	if err != nil {
		return domain.ActiveVote{}, errors.Wrap(errors.CodeCollaboratorFailure, "generate vote id", err)
	}

	now := s.clock().UTC()
	record := storage.VoteRecord{
		ID:        voteID,
		MeetingID: meetingID,
		Motion:    motion,
		Status:    domain.VotePending.String(),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.PutVote(ctx, record); err != nil {
		return domain.ActiveVote{}, errors.Wrap(errors.CodeCollaboratorFailure, "persist vote", err)
	}

	return domain.ActiveVote{
		ID:     voteID,
		Motion: motion,
		Status: domain.VotePending,
	}, nil
}

// OpenVote marks a pending vote as open; the tally now accepts ballots.
func (s *Service) OpenVote(ctx context.Context, meetingID, voteID string) error {
	return s.transition(ctx, meetingID, voteID, domain.VotePending, domain.VoteOpen)
}

// CloseVote marks an open vote as closed.
func (s *Service) CloseVote(ctx context.Context, meetingID, voteID string) error {
	return s.transition(ctx, meetingID, voteID, domain.VoteOpen, domain.VoteClosed)
}

func (s *Service) transition(ctx context.Context, meetingID, voteID string, from, to domain.VoteStatus) error {
	if s == nil || s.store == nil {
		return errors.New(errors.CodeCollaboratorFailure, "vote store is not configured")
	}

	record, err := s.store.GetVote(ctx, meetingID, voteID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return errors.New(errors.CodeNotFound, "vote not found")
		}
		return errors.Wrap(errors.CodeCollaboratorFailure, "get vote", err)
	}
	if record.Status != from.String() {
		return errors.WithMetadata(errors.CodeVoteInvalidTransition, "vote transition not permitted",
			map[string]string{"FromStatus": record.Status, "ToStatus": to.String()})
	}

	if err := s.store.SetVoteStatus(ctx, meetingID, voteID, to.String(), s.clock().UTC()); err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return errors.New(errors.CodeNotFound, "vote not found")
		}
		return errors.Wrap(errors.CodeCollaboratorFailure, "set vote status", err)
	}
	return nil
}
