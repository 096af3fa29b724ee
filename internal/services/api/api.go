// Package api provides the HTTP API for the application
package api

import (
	"langdetect/internal/platform/config"
	"langdetect/internal/platform/logger"
	phttp "langdetect/internal/platform/net/http"
	"langdetect/internal/platform/store"

	"langdetect/internal/modkit"
	"langdetect/internal/modkit/httpkit"
	"langdetect/internal/modkit/module"
	"langdetect/internal/modkit/repokit"
	"langdetect/internal/modkit/swaggerkit"

	metamod "langdetect/internal/services/api/meta/module"

	"langdetect/internal/services/langdetect/domain"
	ldmod "langdetect/internal/services/langdetect/module"
	"langdetect/internal/services/langdetect/repo"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		PG:     opt.Store.PG,
		Corpus: opt.Store.Corpus,
	}

	ports := domain.Ports{
		Corpus: repokit.MustBind(repo.NewCorpus(), opt.Store.Corpus),
	}
	if opt.Store.PG != nil {
		bound := repokit.MustBind(repo.NewUsers(*opt.Logger), opt.Store.PG)
		ports.Users = bound
		ports.Writer = bound
	}

	langdetect := ldmod.New(deps, ldmod.Options{}, ldmod.WithDomainPorts(ports))
	meta := metamod.New(deps)

	mods := []module.Module{meta}

	// versioned API with a common middleware stack: meta and any future
	// admin-facing modules live under /api/v1
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	// langdetect is mounted on the bare router, not under /api/v1: the
	// detection endpoint's path is contractually "/simple" at the service root
	module.Register(langdetect.Name(), langdetect.Ports())
	langdetect.MountRoutes(r)
}
