package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/atu-cloudnative/catalog-service/internal/service"
)

// HomeHandler serves the welcome and personal greeting endpoints.
type HomeHandler struct {
	svc *service.CatalogService
}

func NewHomeHandler(svc *service.CatalogService) *HomeHandler {
	return &HomeHandler{svc: svc}
}

// Welcome handles GET /
//
// @Summary  Catalog welcome message
// @Tags     home
// @Produce  plain
// @Success  200  {string}  string
// @Router   / [get]
func (h *HomeHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	respondText(w, http.StatusOK, h.svc.Welcome())
}

// Greeting handles GET /greeting/{name}
//
// @Summary  Personal greeting
// @Tags     home
// @Produce  plain
// @Param    name  path      string  true  "Name to greet"
// @Success  200   {string}  string
// @Failure  404   {string}  string
// @Router   /greeting/{name} [get]
func (h *HomeHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")
	if name == "" {
		http.NotFound(w, r)
		return
	}
	respondText(w, http.StatusOK, h.svc.Greeting(name))
}

// pathParam returns the decoded value of a chi URL parameter. chi matches
// against RawPath when the request carried escapes such as %2F, so the
// parameter is still encoded in that case.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
