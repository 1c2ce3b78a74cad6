package domain

import "testing"

func TestNewCastingDocument(t *testing.T) {
	meta := DocumentMeta{
		ID:           "doc-1",
		Name:         "Financial Report.pdf",
		Type:         "pdf",
		PageCount:    24,
		Confidential: true,
		Watermark:    true,
	}

	casting := NewCastingDocument(meta, "participant-1", "Amara Okafor")
	if casting.Page != 1 {
		t.Errorf("Page = %d, want 1", casting.Page)
	}
	if casting.DocumentID != "doc-1" || casting.PageCount != 24 {
		t.Errorf("document metadata not carried over: %+v", casting)
	}
	if casting.CasterID != "participant-1" || casting.CasterName != "Amara Okafor" {
		t.Errorf("caster identity not carried over: %+v", casting)
	}
	if !casting.Confidential || !casting.Watermark {
		t.Errorf("confidentiality flags not carried over: %+v", casting)
	}
}

func TestClampPage(t *testing.T) {
	doc := CastingDocument{PageCount: 10}

	tests := []struct {
		page int
		want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{5, 5},
		{10, 10},
		{11, 10},
		{100, 10},
	}
	for _, tt := range tests {
		if got := doc.ClampPage(tt.page); got != tt.want {
			t.Errorf("ClampPage(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestClampPageUnknownPageCount(t *testing.T) {
	doc := CastingDocument{PageCount: 0}
	if got := doc.ClampPage(42); got != 42 {
		t.Errorf("ClampPage(42) with unknown page count = %d, want 42", got)
	}
	if got := doc.ClampPage(-1); got != 1 {
		t.Errorf("ClampPage(-1) with unknown page count = %d, want 1", got)
	}
}
