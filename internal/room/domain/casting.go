package domain

// DocumentMeta is renderable document metadata resolved by the document
// collaborator. The engine never reads document content.
type DocumentMeta struct {
	ID           string
	Name         string
	Type         string
	PageCount    int
	Confidential bool
	Watermark    bool
}

// CastingDocument is the single document currently shared with every
// participant, with its page/zoom sub-state. At most one exists per session.
type CastingDocument struct {
	DocumentID   string
	Name         string
	Type         string
	Page         int
	PageCount    int
	CasterID     string
	CasterName   string
	Confidential bool
	Watermark    bool
}

// NewCastingDocument constructs the cast state for a resolved document,
// opened at page 1 by the given caster.
func NewCastingDocument(meta DocumentMeta, casterID, casterName string) CastingDocument {
	return CastingDocument{
		DocumentID:   meta.ID,
		Name:         meta.Name,
		Type:         meta.Type,
		Page:         1,
		PageCount:    meta.PageCount,
		CasterID:     casterID,
		CasterName:   casterName,
		Confidential: meta.Confidential,
		Watermark:    meta.Watermark,
	}
}

// ClampPage bounds a requested page number into [1, PageCount].
func (c CastingDocument) ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	if c.PageCount > 0 && page > c.PageCount {
		return c.PageCount
	}
	return page
}
