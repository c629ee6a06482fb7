package cli

import "github.com/formdeck/formdeck/internal/service"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Store service.TemplateStore

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and status bar
// (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
