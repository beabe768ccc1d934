// Package http provides http transport for the people service
package http

import (
	"fmt"
	stdhttp "net/http"
	"strconv"

	perr "peopledex/internal/platform/errors"

	"peopledex/internal/modkit/httpkit"
	"peopledex/internal/services/people/domain"

	"github.com/go-chi/chi/v5"
)

// Register mounts the people routes on the given (already prefixed) router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreatePersonInput](r, "/", h.create)
	httpkit.Get(r, "/", h.search)
	httpkit.Get(r, "/{id}", h.get)
}

// RegisterCount mounts the count route, which lives outside the people prefix
func RegisterCount(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/contagem-pessoas", h.count)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Create a person
// @Tags people
// @Accept json
// @Produce json
// @Param payload body domain.CreatePersonInput true "Person"
// @Success 201 {object} domain.Person "created"
// @Failure 422 {object} errors.Problem "duplicate nickname or invalid payload"
// @Router /pessoas [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreatePersonInput) (any, error) {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.CreatedAt(fmt.Sprintf("/pessoas/%d", p.ID), p), nil
}

// @Summary Fetch a person by id
// @Tags people
// @Produce json
// @Param id path int true "Person id"
// @Success 200 {object} domain.Person "ok"
// @Failure 404 {object} errors.Problem "not found"
// @Router /pessoas/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, perr.WithField(perr.InvalidRequestf("id must be an integer"), "id")
	}
	return h.svc.GetByID(r.Context(), id)
}

// @Summary Search people by term
// @Tags people
// @Produce json
// @Param t query string true "Substring matched against apelido, nome and stack"
// @Success 200 {array} domain.Person "ok"
// @Failure 422 {object} errors.Problem "missing t"
// @Router /pessoas [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	if !q.Has("t") {
		return nil, perr.WithField(perr.InvalidRequestf("query parameter t is required"), "t")
	}
	return h.svc.Search(r.Context(), q.Get("t"))
}

// @Summary Count stored people
// @Tags people
// @Produce plain
// @Success 200 {integer} int64 "total"
// @Router /contagem-pessoas [get]
func (h *handlers) count(r *stdhttp.Request) (any, error) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.PlainText(strconv.FormatInt(n, 10)), nil
}
