// Package http exposes the langdetect HTTP surface: the public detection
// endpoint and a small admin CRUD over declared user languages
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"langdetect/internal/modkit/httpkit"
	perr "langdetect/internal/platform/errors"
	"langdetect/internal/services/langdetect/domain"
	"langdetect/internal/services/langdetect/service"
)

// Deps are the handler dependencies
type Deps struct {
	Detector domain.RunnerPort
	Langs    *service.LangsService
}

type handlers struct {
	deps Deps
}

// Register mounts the langdetect routes. The detection endpoint path is
// contractually "/simple" at the service root; the languages CRUD lives
// under "/langdetect/users/{user}/langs" as a supplementary admin surface
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// /simple accepts any method: a non-GET request still gets a 200 with
	// both parameters defaulted to empty, per contract, so it cannot be
	// mounted with httpkit.Get (chi would 405 every other verb)
	r.Handle("/simple", http.HandlerFunc(httpkit.Call(h.simple)))

	httpkit.Get(r, "/langdetect/users/{user}/langs", h.listLangs)
	httpkit.PostJSON(r, "/langdetect/users/{user}/langs", h.declareLang)
	httpkit.Delete(r, "/langdetect/users/{user}/langs/{lang}", h.revokeLang)
}

//
// Swagger DTOs and route docs
//

// SimpleResponse carries the detection result: a corpus LangCode, or one
// of the sentinels "unknown" / "error"
// swagger:model
type SimpleResponse struct {
	DetectedLang string `json:"detectedLang" example:"eng"`
}

// DeclareLangRequest declares a language a user writes in
type DeclareLangRequest struct {
	Lang string `json:"lang" validate:"required,len=3,alpha"`
}

// LangsResponse lists the languages a user has declared
type LangsResponse struct {
	User  string   `json:"user"`
	Langs []string `json:"langs"`
}

// swagger:route GET /simple Langdetect langdetectSimple
// @Summary Detect the language of a short text
// @Tags Langdetect
// @Produce json
// @Param query query string false "text to classify"
// @Param user query string false "declares a per-user language filter"
// @Success 200 type SimpleResponse ok
// @Router /simple [get]
func (h *handlers) simple(r *http.Request) (any, error) {
	var query, user string
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		query, user = q.Get("query"), q.Get("user")
	}
	result := h.deps.Detector.Detect(r.Context(), query, user)
	return SimpleResponse{DetectedLang: result}, nil
}

// swagger:route GET /langdetect/users/{user}/langs Langdetect langdetectListLangs
// @Summary List a user's declared languages
// @Tags Langdetect
// @Produce json
// @Param user path string true "user identifier"
// @Success 200 type LangsResponse ok
// @Router /langdetect/users/{user}/langs [get]
func (h *handlers) listLangs(r *http.Request) (any, error) {
	user := chi.URLParam(r, "user")
	langs, err := h.deps.Langs.List(r.Context(), user)
	if err != nil {
		return nil, mapLangsErr(err)
	}
	return LangsResponse{User: user, Langs: langs}, nil
}

// swagger:route POST /langdetect/users/{user}/langs Langdetect langdetectDeclareLang
// @Summary Declare a language a user writes in
// @Tags Langdetect
// @Accept json
// @Produce json
// @Param user path string true "user identifier"
// @Param body body DeclareLangRequest true "language to declare"
// @Success 200 type LangsResponse ok
// @Router /langdetect/users/{user}/langs [post]
func (h *handlers) declareLang(r *http.Request, body DeclareLangRequest) (any, error) {
	user := chi.URLParam(r, "user")
	if err := h.deps.Langs.Declare(r.Context(), user, body.Lang); err != nil {
		return nil, mapLangsErr(err)
	}
	langs, err := h.deps.Langs.List(r.Context(), user)
	if err != nil {
		return nil, mapLangsErr(err)
	}
	return LangsResponse{User: user, Langs: langs}, nil
}

// swagger:route DELETE /langdetect/users/{user}/langs/{lang} Langdetect langdetectRevokeLang
// @Summary Revoke a previously declared language
// @Tags Langdetect
// @Produce json
// @Param user path string true "user identifier"
// @Param lang path string true "language to revoke"
// @Success 200 type LangsResponse ok
// @Router /langdetect/users/{user}/langs/{lang} [delete]
func (h *handlers) revokeLang(r *http.Request) (any, error) {
	user := chi.URLParam(r, "user")
	lang := chi.URLParam(r, "lang")
	if err := h.deps.Langs.Revoke(r.Context(), user, lang); err != nil {
		return nil, mapLangsErr(err)
	}
	langs, err := h.deps.Langs.List(r.Context(), user)
	if err != nil {
		return nil, mapLangsErr(err)
	}
	return LangsResponse{User: user, Langs: langs}, nil
}

func mapLangsErr(err error) error {
	if err == service.ErrNoWriter {
		return perr.New(perr.ErrorCodeUnavailable, "language admin surface is not configured")
	}
	return perr.Wrap(err, perr.ErrorCodeDB, "languages store failed")
}
