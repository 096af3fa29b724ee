// Package domain defines the core types and interfaces for the langdetect service
package domain

// Outcome mirrors the three values the engine ever returns: a corpus
// LangCode, or one of the sentinels "unknown"/"error"
type Outcome = string

// DeclaredLang is one row of the users_langs relation: a user has declared
// that they write in lang
type DeclaredLang struct {
	User string `json:"user"`
	Lang string `json:"lang"`
}
