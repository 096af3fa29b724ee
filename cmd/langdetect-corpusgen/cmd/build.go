package cmd

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	_ "modernc.org/sqlite"

	"langdetect/internal/core/corpusbuild"
)

func buildCmd() *cobra.Command {
	var (
		sentencesPath string
		outPath       string
		blacklistPath string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Count n-grams from a sentence dump and write the thresholded corpus db",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sentencesPath == "" {
				return fmt.Errorf("--sentences is required")
			}
			if outPath == "" {
				return fmt.Errorf("--out is required")
			}

			blacklist, err := readBlacklist(blacklistPath)
			if err != nil {
				return fmt.Errorf("read blacklist: %w", err)
			}

			counter := corpusbuild.NewCounter()
			n, err := readSentences(sentencesPath, blacklist, counter)
			if err != nil {
				return fmt.Errorf("read sentences: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "counted %d sentences\n", n)

			if err := writeCorpus(cmd.Context(), outPath, counter); err != nil {
				return fmt.Errorf("write corpus: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)

			seedPath := outPath + ".users_langs.tsv"
			if err := writeUserSeed(seedPath, counter); err != nil {
				return fmt.Errorf("write users_langs seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (load into the users_langs table)\n", seedPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&sentencesPath, "sentences", "", "path to the sentences_detailed.csv dump (tab-separated: id, lang, text, user)")
	cmd.Flags().StringVar(&outPath, "out", "", "output sqlite database path")
	cmd.Flags().StringVar(&blacklistPath, "blacklist", "", "optional path to a file of one sentence id per line to exclude")

	return cmd
}

func readBlacklist(path string) (map[int64]struct{}, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[int64]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		id, err := strconv.ParseInt(strings.TrimSpace(sc.Text()), 10, 64)
		if err != nil {
			continue
		}
		out[id] = struct{}{}
	}
	return out, sc.Err()
}

func readSentences(path string, blacklist map[int64]struct{}, counter *corpusbuild.Counter) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < 3 {
			continue
		}
		lang := fields[1]
		if lang == "" || lang == `\N` {
			continue
		}
		if id, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
			if _, skip := blacklist[id]; skip {
				continue
			}
		}
		s := corpusbuild.Sentence{Lang: lang, Text: fields[2]}
		if len(fields) > 3 {
			s.User = fields[3]
		}
		counter.Add(s)
		n++
	}
	return n, sc.Err()
}

func writeCorpus(ctx context.Context, path string, counter *corpusbuild.Counter) error {
	_ = os.Remove(path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, n := range corpusbuild.Sizes() {
		table := fmt.Sprintf("grams%d", n)
		stmt := fmt.Sprintf(`CREATE TABLE %s (
			gram TEXT NOT NULL,
			lang TEXT NOT NULL,
			hit INTEGER NOT NULL,
			percent REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (gram, lang)
		)`, table)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, n := range corpusbuild.Sizes() {
		table := fmt.Sprintf("grams%d", n)
		ins, err := tx.PrepareContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (gram, lang, hit, percent) VALUES (?, ?, ?, ?)`, table))
		if err != nil {
			return err
		}
		for _, row := range counter.Extract(n) {
			if _, err := ins.ExecContext(ctx, row.Gram, row.Lang, row.Hit, row.Percent); err != nil {
				ins.Close()
				return err
			}
		}
		ins.Close()
	}

	return tx.Commit()
}

// writeUserSeed writes the thresholded per-user language contribution
// scores to a tab-separated file an operator loads into the live
// users_langs table (Postgres, via the admin surface's backing store) —
// the corpus db itself only ever holds the read-only gram tables
func writeUserSeed(path string, counter *corpusbuild.Counter) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, c := range counter.UserContribs() {
		if c.Total <= corpusbuild.MinUserContribInLang {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", c.User, c.Lang, c.Total); err != nil {
			return err
		}
	}
	return w.Flush()
}
