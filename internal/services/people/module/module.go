// Package module wires the people service into the API using modkit
package module

import (
	"net/http"

	modkit "peopledex/internal/modkit"
	"peopledex/internal/modkit/httpkit"

	pdom "peopledex/internal/services/people/domain"
	phttpx "peopledex/internal/services/people/http"
	prepo "peopledex/internal/services/people/repo"
	psvc "peopledex/internal/services/people/service"
)

// Module implements the people API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc pdom.ServicePort
}

// New constructs the people module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("people"),
		modkit.WithPrefix("/pessoas"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	binder := prepo.NewPG()
	if cfg.Driver == "memory" {
		binder = prepo.NewMemoryBinder(prepo.NewMemory())
	}

	svc := psvc.New(deps.PG, binder, psvc.Config{SearchLimit: cfg.SearchLimit}, deps.Metrics)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = pdom.ServicePort(svc)

	external := b.Register
	m.register = func(r httpkit.Router) {
		phttpx.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the people routes plus the count route that lives
// outside the /pessoas prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
	phttpx.RegisterCount(r, m.svc)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Ports exposes the people service port for other modules
func (m *Module) Ports() any { return m.ports }

// Service returns the concrete service port, handy for tests and workers
func (m *Module) Service() pdom.ServicePort { return m.svc }
