// Package http provides http transport for incidents
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	phttp "tareeq/internal/platform/net/http"
	"tareeq/internal/platform/net/http/bind"
	"tareeq/internal/services/incidents/domain"
	svc "tareeq/internal/services/incidents/service"
)

// Register mounts incident endpoints on the given router
func Register(r chi.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/latest", h.latest)
	r.Get("/search", h.search)
}

type handlers struct{ svc svc.Service }

func (h *handlers) latest(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseQuery[domain.LatestInput](r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	out, err := h.svc.Latest(r.Context(), in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	phttp.RespondOK(w, r, out)
}

func (h *handlers) search(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseQuery[domain.SearchInput](r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	out, err := h.svc.Search(r.Context(), in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	phttp.RespondOK(w, r, out)
}
