// @title         Langdetect API
// @version       0.1.0
// @description   Statistical language detection over a precomputed n-gram corpus

package main

import (
	"context"

	"langdetect/internal/platform/config"
	"langdetect/internal/platform/logger"
	phttp "langdetect/internal/platform/net/http"
	"langdetect/internal/platform/store"

	"langdetect/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")   // pgCfg lives under SERVICE_PGSQL_*
	corpusCfg := root.Prefix("CORE_CORPUS_") // corpusCfg lives under CORE_CORPUS_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres for the users_langs admin surface,
	// plus the embedded read-only n-gram corpus)
	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     pgCfg.MayBool("ENABLED", true),
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			Corpus: store.CorpusConfig{
				Enabled:      true,
				Path:         corpusCfg.MustString("DBPATH"),
				ReadOnly:     corpusCfg.MayBool("READ_ONLY", true),
				MaxOpenConns: corpusCfg.MayInt("MAX_OPEN_CONNS", 4),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT, default :4000)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
