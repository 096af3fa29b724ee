// Package corpusbuild implements the pure accounting behind the offline
// n-gram corpus build: counting grapheme n-gram hits per language and
// reducing a raw counter into the thresholded corpus the Detector reads.
// It holds no I/O; callers own reading the sentence dump and the databases
package corpusbuild

import (
	"sort"

	"langdetect/internal/core/detector"
)

// IdeogramLangs don't use an alphabet and so produce far more distinct
// n-grams per sentence than alphabetic languages; they get a lower
// frequency floor so their legitimate n-grams aren't pruned away
var IdeogramLangs = map[string]struct{}{
	"wuu": {}, "yue": {}, "cmn": {},
}

// Default thresholds mirrored from the reference corpus builder
const (
	IdeogramNgramFreqLimit = 0.000005
	NgramFreqLimit         = 0.00001
	MinUserContribInLang   = 100
	MinNgramSize           = 2
	MaxNgramSize           = 5
)

// Sizes returns the n-gram sizes the corpus builder tracks, largest first:
// every size from MaxNgramSize down to MinNgramSize. This covers the
// Detector's cascade (5, 3, 2) and also includes size 4, which the
// Detector never looks up
func Sizes() []int {
	out := make([]int, 0, MaxNgramSize-MinNgramSize+1)
	for n := MaxNgramSize; n >= MinNgramSize; n-- {
		out = append(out, n)
	}
	return out
}

// Sentence is one row of the sentence dump: an id, language, text, and
// contributing user. Rows with an empty Lang are skipped by the caller
type Sentence struct {
	ID   int64
	Lang string
	Text string
	User string
}

// Counter accumulates, per n-gram size, per-language gram hit counts, plus
// a per-(user,lang) contribution score used to populate users_langs
type Counter struct {
	hits  map[int]map[string]map[string]uint64 // size -> lang -> gram -> hit
	users map[userLang]uint64
}

type userLang struct{ user, lang string }

// NewCounter returns an empty Counter
func NewCounter() *Counter {
	return &Counter{
		hits:  make(map[int]map[string]map[string]uint64),
		users: make(map[userLang]uint64),
	}
}

// Add folds one sentence's n-grams (every size in Sizes) into the counter
// and accrues the contributor's score by grapheme count, mirroring the
// reference builder's use of the smallest n-gram pass for scoring
func (c *Counter) Add(s Sentence) {
	graphemes := detector.Segment(s.Text)
	for _, n := range Sizes() {
		byLang, ok := c.hits[n]
		if !ok {
			byLang = make(map[string]map[string]uint64)
			c.hits[n] = byLang
		}
		grams, ok := byLang[s.Lang]
		if !ok {
			grams = make(map[string]uint64)
			byLang[s.Lang] = grams
		}
		for _, g := range detector.NGrams(graphemes, n) {
			grams[g]++
		}
	}
	if s.User != "" {
		c.users[userLang{user: s.User, lang: s.Lang}] += uint64(len(graphemes))
	}
}

// Hits returns every (gram, hit) pair recorded for lang at size
func (c *Counter) Hits(size int, lang string) map[string]uint64 {
	return c.hits[size][lang]
}

// Langs returns every language with at least one recorded gram at size
func (c *Counter) Langs(size int) []string {
	byLang := c.hits[size]
	out := make([]string, 0, len(byLang))
	for lang := range byLang {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// UserContribs returns every (user, lang, total) triple recorded
func (c *Counter) UserContribs() []UserContrib {
	out := make([]UserContrib, 0, len(c.users))
	for k, total := range c.users {
		out = append(out, UserContrib{User: k.user, Lang: k.lang, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].User != out[j].User {
			return out[i].User < out[j].User
		}
		return out[i].Lang < out[j].Lang
	})
	return out
}

// UserContrib is one row of the raw per-user, per-language contribution
// score computed by Counter, before the MinUserContribInLang threshold
type UserContrib struct {
	User  string
	Lang  string
	Total uint64
}

// GramRow is one thresholded (gram, lang, hit, percent) row ready for the
// grams{N} table
type GramRow struct {
	Gram    string
	Lang    string
	Hit     uint64
	Percent float64
}

// freqLimit returns the frequency floor a gram's percent share must clear
// to survive extraction, lower for ideogram languages
func freqLimit(lang string) float64 {
	if _, ok := IdeogramLangs[lang]; ok {
		return IdeogramNgramFreqLimit
	}
	return NgramFreqLimit
}

// Extract reduces the raw hit counts at size into the rows worth keeping:
// each gram's share of its language's total hits at that size must clear
// the language's frequency floor
func (c *Counter) Extract(size int) []GramRow {
	byLang := c.hits[size]
	var out []GramRow
	for lang, grams := range byLang {
		var total uint64
		for _, hit := range grams {
			total += hit
		}
		if total == 0 {
			continue
		}
		limit := freqLimit(lang)
		for gram, hit := range grams {
			percent := float64(hit) / float64(total)
			if percent <= limit {
				continue
			}
			out = append(out, GramRow{Gram: gram, Lang: lang, Hit: hit, Percent: percent})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lang != out[j].Lang {
			return out[i].Lang < out[j].Lang
		}
		return out[i].Gram < out[j].Gram
	})
	return out
}
