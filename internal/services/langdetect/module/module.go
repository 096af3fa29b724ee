// Package module implements the langdetect module
package module

import (
	"net/http"

	"langdetect/internal/modkit"
	"langdetect/internal/modkit/httpkit"
	langhttp "langdetect/internal/services/langdetect/http"
	"langdetect/internal/services/langdetect/domain"
	"langdetect/internal/services/langdetect/service"
)

// Ports exposed by the langdetect module
type Ports struct {
	Runner domain.RunnerPort
	Langs  *service.LangsService
}

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	ports Ports
}

// New constructs a new langdetect module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	// Prefix is intentionally empty: the detection endpoint is contractually
	// "/simple" at the service root, not nested under a module prefix
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("langdetect"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("langdetect module: expected WithPorts(langdetect/domain.Ports)")
	}
	if ports.Corpus == nil {
		panic("langdetect module: Ports missing Corpus")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.MaxQueryBytes != 0 {
		cfg.MaxQueryBytes = overrides.MaxQueryBytes
	}

	svc := service.New(ports.Corpus, ports.Users, service.Config{MaxQueryBytes: cfg.MaxQueryBytes})
	langs := service.NewLangs(ports.Writer)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		ports:     Ports{Runner: svc, Langs: langs},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		langhttp.Register(r, langhttp.Deps{Detector: svc, Langs: langs})
		if external != nil {
			external(r)
		}
	}

	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return m.prefix }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// MountRoutes satisfies modkit.Module. The module has no path prefix, so
// routes are registered in a middleware-scoped group rather than a
// sub-route: the detection endpoint's path is the contractual "/simple"
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}
