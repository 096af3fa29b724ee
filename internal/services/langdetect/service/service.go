// Package service implements the langdetect business logic atop the core
// detector engine
package service

import (
	"context"
	"unicode/utf8"

	"langdetect/internal/core/detector"
	"langdetect/internal/services/langdetect/domain"
)

// Config controls service-level guardrails around the core engine
type Config struct {
	// MaxQueryBytes caps the query length the engine will segment; longer
	// input is truncated rune-safely before detection. 0 disables the cap
	MaxQueryBytes int
}

// Service wraps a core detector.Detector with the guardrails the HTTP layer
// and other callers expect; it implements domain.RunnerPort
type Service struct {
	det *detector.Detector
	cfg Config
}

var _ domain.RunnerPort = (*Service)(nil)

// New builds a Service over the given corpus and user-language ports
func New(corpus domain.CorpusPort, users domain.UsersPort, cfg Config) *Service {
	return &Service{det: detector.New(corpus, users), cfg: cfg}
}

// Detect runs one detection, truncating oversized queries before handing
// them to the engine. The three-way outcome (LangCode / unknown / error) is
// returned verbatim
func (s *Service) Detect(ctx context.Context, query, user string) domain.Outcome {
	query = s.clamp(query)
	return s.det.Detect(ctx, query, user)
}

func (s *Service) clamp(query string) string {
	limit := s.cfg.MaxQueryBytes
	if limit <= 0 || len(query) <= limit {
		return query
	}
	pos := limit
	for pos > 0 && !utf8.RuneStart(query[pos]) {
		pos--
	}
	return query[:pos]
}
