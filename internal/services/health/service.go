package health

import "ai-roadmap/internal/content"

// Service encapsulates health-related checks.
type Service struct {
	page content.Page
}

// NewService constructs a health service over the loaded page content.
func NewService(page content.Page) *Service {
	return &Service{page: page}
}

// Status reports whether the page content is usable and how many sections it has.
func (s *Service) Status() map[string]any {
	sections := s.page.SectionCount()
	return map[string]any{
		"ok":              s.page.Validate() == nil,
		"contentSections": sections,
	}
}
