package ui

import "testconv/internal/domain"

// Viewer displays a stored check report interactively
type Viewer interface {
	View(report *domain.CheckReport) error
}
