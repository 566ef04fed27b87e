package ui

import "expect/internal/domain"

// Viewer displays failed reports in an interactive TUI
type Viewer interface {
	View(reports []domain.Report) error
}
