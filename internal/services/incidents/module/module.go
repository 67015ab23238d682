// Package module wires the incidents service into the API
package module

import (
	"github.com/go-chi/chi/v5"

	"tareeq/internal/modkit"
	incidentshttp "tareeq/internal/services/incidents/http"
	"tareeq/internal/services/incidents/repo"
	"tareeq/internal/services/incidents/service"
)

// Module bundles the incidents read service and its routes
type Module struct {
	svc service.Service
}

// New constructs the incidents module from core deps
func New(deps modkit.Deps) *Module {
	return &Module{svc: service.New(deps.PG, repo.NewPG())}
}

// Service exposes the read service for other modules
func (m *Module) Service() service.Service { return m.svc }

// Mount registers the incident routes under /v1/incidents
func (m *Module) Mount(r chi.Router) {
	r.Route("/v1/incidents", func(sr chi.Router) {
		incidentshttp.Register(sr, m.svc)
	})
}
