package module

import (
	modkit "langdetect/internal/modkit"
	"langdetect/internal/services/langdetect/domain"
)

// WithDomainPorts lets callers pass pre-bound domain.Ports without exposing
// the concrete repo types in main
func WithDomainPorts(p domain.Ports) modkit.Option {
	return modkit.WithPorts(p)
}
