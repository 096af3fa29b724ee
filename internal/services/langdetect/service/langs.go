package service

import (
	"context"
	"errors"

	"langdetect/internal/services/langdetect/domain"
)

// ErrNoWriter is returned by LangsService when no WriterPort was wired;
// admin mutation is an optional capability of the module
var ErrNoWriter = errors.New("langdetect: users_langs is read-only, no writer configured")

// LangsService implements the small admin surface over users_langs:
// declaring, revoking, and listing a user's languages
type LangsService struct {
	w domain.WriterPort
}

// NewLangs constructs the admin languages service. w may be nil, in which
// case every call, List included, returns ErrNoWriter
func NewLangs(w domain.WriterPort) *LangsService {
	return &LangsService{w: w}
}

// Declare records that user writes in lang
func (s *LangsService) Declare(ctx context.Context, user, lang string) error {
	if s.w == nil {
		return ErrNoWriter
	}
	return s.w.Declare(ctx, user, lang)
}

// Revoke removes a previously declared language for user
func (s *LangsService) Revoke(ctx context.Context, user, lang string) error {
	if s.w == nil {
		return ErrNoWriter
	}
	return s.w.Revoke(ctx, user, lang)
}

// List returns every language user has declared
func (s *LangsService) List(ctx context.Context, user string) ([]string, error) {
	if s.w == nil {
		return nil, ErrNoWriter
	}
	return s.w.List(ctx, user)
}
