package repo

import (
	"context"

	"langdetect/internal/core/detector"
	"langdetect/internal/modkit/repokit"
	"langdetect/internal/platform/logger"
)

// usersBinder implements repokit.Binder[*UsersRepo]
type usersBinder struct{ log logger.Logger }

// NewUsers returns a binder for UsersRepo, logging through log whenever a
// lookup fails and the filter degrades to empty
func NewUsers(log logger.Logger) repokit.Binder[*UsersRepo] { return usersBinder{log: log} }

func (b usersBinder) Bind(q repokit.Queryer) *UsersRepo { return &UsersRepo{q: q, log: b.log} }

// UsersRepo implements domain.UsersPort (detector.UserLanguageIndex) and
// domain.WriterPort against the users_langs relation
type UsersRepo struct {
	q   repokit.Queryer
	log logger.Logger
}

var _ detector.UserLanguageIndex = (*UsersRepo)(nil)

// Langs returns the set of languages user has declared. Storage errors are
// logged and swallowed: user filtering is a best-effort aid, never a gate
func (u *UsersRepo) Langs(ctx context.Context, user string) map[string]struct{} {
	if user == "" {
		return nil
	}

	rows, err := u.q.Query(ctx, `SELECT lang FROM users_langs WHERE "user" = $1`, user)
	if err != nil {
		u.log.Error().Err(err).Str("user", user).Msg("langdetect: users_langs lookup failed, filter disabled")
		return nil
	}
	defer rows.Close()

	var out map[string]struct{}
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			u.log.Error().Err(err).Str("user", user).Msg("langdetect: users_langs scan failed, filter disabled")
			return nil
		}
		if out == nil {
			out = make(map[string]struct{})
		}
		out[lang] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		u.log.Error().Err(err).Str("user", user).Msg("langdetect: users_langs iteration failed, filter disabled")
		return nil
	}
	return out
}

// Declare records that user writes in lang, idempotently
func (u *UsersRepo) Declare(ctx context.Context, user, lang string) error {
	_, err := u.q.Exec(ctx,
		`INSERT INTO users_langs ("user", lang) VALUES ($1, $2) ON CONFLICT ("user", lang) DO NOTHING`,
		user, lang)
	return err
}

// Revoke removes a previously declared language for user
func (u *UsersRepo) Revoke(ctx context.Context, user, lang string) error {
	_, err := u.q.Exec(ctx, `DELETE FROM users_langs WHERE "user" = $1 AND lang = $2`, user, lang)
	return err
}

// List returns every language user has declared, sorted
func (u *UsersRepo) List(ctx context.Context, user string) ([]string, error) {
	rows, err := u.q.Query(ctx, `SELECT lang FROM users_langs WHERE "user" = $1 ORDER BY lang`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		out = append(out, lang)
	}
	return out, rows.Err()
}
