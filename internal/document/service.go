// Package document is the document collaborator: it resolves a document id
// to the renderable metadata the casting coordinator needs. Document content
// never flows through the room engine.
package document

import (
	"context"
	stderrors "errors"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
	"github.com/MochamaB/eboard/internal/storage"
)

// Service resolves document metadata through a DocumentStore.
type Service struct {
	store storage.DocumentStore
}

// NewService creates a document service.
func NewService(store storage.DocumentStore) *Service {
	return &Service{store: store}
}

// Resolve returns renderable metadata for a meeting document.
func (s *Service) Resolve(ctx context.Context, meetingID, documentID string) (domain.DocumentMeta, error) {
	if s == nil || s.store == nil {
		return domain.DocumentMeta{}, errors.New(errors.CodeCollaboratorFailure, "document store is not configured")
	}

	record, err := s.store.GetDocument(ctx, meetingID, documentID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			return domain.DocumentMeta{}, errors.New(errors.CodeNotFound, "document not found")
		}
		return domain.DocumentMeta{}, errors.Wrap(errors.CodeCollaboratorFailure, "resolve document", err)
	}

	return domain.DocumentMeta{
		ID:           record.ID,
		Name:         record.Name,
		Type:         record.Type,
		PageCount:    record.PageCount,
		Confidential: record.Confidential,
		Watermark:    record.Watermark,
	}, nil
}
