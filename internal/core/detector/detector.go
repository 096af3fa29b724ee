// Package detector implements statistical language detection over
// character n-gram statistics. It scores a query's grapheme n-grams against
// a corpus of per-language hit/percent rows and selects the best-matching
// language through a uniqueness shortcut and a cross-ratio tiebreak
package detector

import (
	"context"
	"math"
)

// Result sentinels that are part of the external contract: "unknown" means
// no usable evidence was found at any attempted size, "error" means a
// corpus lookup failed partway through an attempt
const (
	Unknown = "unknown"
	Error   = "error"
)

// sizes is the fixed cascade of n-gram sizes attempted per query, largest
// (most discriminating) first; smallestSize is attempted without the
// user's filter as a last-resort recall step
var sizes = [...]int{5, 3, 2}

const smallestSize = 2

// Sizes returns the n-gram size cascade the engine attempts, largest first
func Sizes() []int { return append([]int(nil), sizes[:]...) }

// NgramCorpus is the read-only lookup surface the Detector depends on.
// A missing (size, gram) yields an empty, error-free result
type NgramCorpus interface {
	Lookup(ctx context.Context, size int, gram string) ([]GramStat, error)
}

// UserLanguageIndex resolves the set of languages a user has declared.
// Implementations must swallow their own storage errors and return an
// empty set rather than propagate them — user filtering is best-effort
type UserLanguageIndex interface {
	Langs(ctx context.Context, user string) map[string]struct{}
}

// Detector orchestrates segmentation, corpus lookup, scoring, and the
// size-fallback cascade for one query. It holds no per-request state
type Detector struct {
	corpus NgramCorpus
	users  UserLanguageIndex
}

// New builds a Detector over the given corpus and user-language index.
// users may be nil, in which case every detection runs unfiltered
func New(corpus NgramCorpus, users UserLanguageIndex) *Detector {
	return &Detector{corpus: corpus, users: users}
}

// Detect returns the most probable LangCode for query, or one of the
// sentinels Unknown / Error. It composes per-size attempts in the fixed
// cascade: size 5 with the user's filter, then size 3 with the same
// filter, then size 2 with no filter at all
func (d *Detector) Detect(ctx context.Context, query, user string) string {
	filter := d.resolveFilter(ctx, user)
	graphemes := Segment(query)

	for i, k := range sizes {
		atFilter := filter
		if k == smallestSize {
			atFilter = nil // last-resort fallback drops the filter to maximise recall
		}

		res, err := d.attempt(ctx, graphemes, k, atFilter)
		if err != nil {
			return Error
		}
		if res != Unknown || i == len(sizes)-1 {
			return res
		}
	}
	return Unknown
}

func (d *Detector) resolveFilter(ctx context.Context, user string) map[string]struct{} {
	if user == "" || d.users == nil {
		return nil
	}
	return d.users.Langs(ctx, user)
}

// attempt scores one n-gram size and returns its decision: a LangCode,
// Unknown (no evidence), or a non-nil error (the caller maps that to Error
// and the cascade stops — no further size is attempted)
func (d *Detector) attempt(ctx context.Context, graphemes []string, k int, filter map[string]struct{}) (string, error) {
	grams := NGrams(graphemes, k)
	if len(grams) == 0 {
		return Unknown, nil
	}

	board := newScoreBoard()
	for _, gram := range grams {
		rows, err := d.corpus.Lookup(ctx, k, gram)
		if err != nil {
			return "", err
		}
		matched := filterRows(rows, filter)
		if len(matched) == 0 {
			continue
		}
		board.add(matched)
	}

	if lang, ok := board.soleUniqueLang(); ok {
		return lang, nil
	}
	if board.empty() {
		return Unknown, nil
	}

	la := board.argmaxAbs()
	lr := board.argmaxRel()
	if la == lr {
		return la, nil
	}

	ratioAbs := math.Inf(1)
	if board.absScore[lr] > 0 {
		ratioAbs = float64(board.absScore[la]) / float64(board.absScore[lr])
	}
	ratioRel := math.Inf(1)
	if board.relScore[la] > 0 {
		ratioRel = board.relScore[lr] / board.relScore[la]
	}
	if ratioAbs > ratioRel {
		return la, nil
	}
	return lr, nil
}

// filterRows returns the subset of rows whose Lang passes filter; a nil or
// empty filter passes every row
func filterRows(rows []GramStat, filter map[string]struct{}) []GramStat {
	if len(filter) == 0 {
		return rows
	}
	out := rows[:0:0]
	for _, r := range rows {
		if _, ok := filter[r.Lang]; ok {
			out = append(out, r)
		}
	}
	return out
}
