package health

import (
	"testing"

	"ai-roadmap/internal/content"
)

func TestStatusReportsSections(t *testing.T) {
	page, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	got := NewService(page).Status()
	if got["ok"] != true {
		t.Fatalf("expected ok=true, got %v", got["ok"])
	}
	if got["contentSections"] != 9 {
		t.Fatalf("expected 9 sections, got %v", got["contentSections"])
	}
}

func TestStatusNotOKForEmptyContent(t *testing.T) {
	got := NewService(content.Page{}).Status()
	if got["ok"] != false {
		t.Fatalf("expected ok=false for empty content")
	}
}
