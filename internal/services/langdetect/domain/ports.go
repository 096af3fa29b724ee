package domain

import (
	"context"

	"langdetect/internal/core/detector"
)

// CorpusPort resolves per-language n-gram statistics for a (size, gram) pair
type CorpusPort = detector.NgramCorpus

// UsersPort resolves the set of languages a user has declared
type UsersPort = detector.UserLanguageIndex

// WriterPort manages the admin-facing side of the users_langs relation.
// The detection path only ever reads through UsersPort; Writer exists for
// the small CRUD surface that keeps that table populated
type WriterPort interface {
	Declare(ctx context.Context, user, lang string) error
	Revoke(ctx context.Context, user, lang string) error
	List(ctx context.Context, user string) ([]string, error)
}

// RunnerPort is the external port other modules or the HTTP layer use to
// run a detection
type RunnerPort interface {
	Detect(ctx context.Context, query, user string) Outcome
}

// Ports are the dependencies injected into the langdetect module
type Ports struct {
	Corpus CorpusPort // required
	Users  UsersPort  // optional; nil means every detection is unfiltered
	Writer WriterPort // optional; nil makes the admin CRUD routes fail with ErrNoWriter
}
