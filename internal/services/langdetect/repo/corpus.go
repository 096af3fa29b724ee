// Package repo provides repository implementations for the langdetect service
package repo

import (
	"context"
	"fmt"

	"langdetect/internal/core/detector"
	"langdetect/internal/modkit/repokit"
)

// gramsTable maps a supported n-gram size to its backing table. Any size
// outside this set yields an empty result, per the NgramCorpus contract
var gramsTable = map[int]string{
	2: "grams2",
	3: "grams3",
	5: "grams5",
}

// corpusBinder implements repokit.Binder[*CorpusRepo]
type corpusBinder struct{}

// NewCorpus returns a binder for CorpusRepo over whatever Queryer fronts
// the embedded n-gram database
func NewCorpus() repokit.Binder[*CorpusRepo] { return corpusBinder{} }

func (corpusBinder) Bind(q repokit.Queryer) *CorpusRepo { return &CorpusRepo{q: q} }

// CorpusRepo implements domain.CorpusPort (detector.NgramCorpus) against the
// grams2/grams3/grams5 tables
type CorpusRepo struct{ q repokit.Queryer }

var _ detector.NgramCorpus = (*CorpusRepo)(nil)

// Lookup returns every (lang, hit, percent) row recorded for gram at size
func (c *CorpusRepo) Lookup(ctx context.Context, size int, gram string) ([]detector.GramStat, error) {
	table, ok := gramsTable[size]
	if !ok {
		return nil, nil
	}

	q := fmt.Sprintf(`SELECT lang, hit, percent FROM %s WHERE gram = ?`, table)
	rows, err := c.q.Query(ctx, q, gram)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []detector.GramStat
	for rows.Next() {
		var g detector.GramStat
		if err := rows.Scan(&g.Lang, &g.Hit, &g.Percent); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
