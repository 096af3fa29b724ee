package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"langdetect/internal/services/langdetect/domain"
	"langdetect/internal/services/langdetect/service"
)

type fakeDetector struct {
	query, user string
	result      domain.Outcome
}

func (f *fakeDetector) Detect(_ context.Context, query, user string) domain.Outcome {
	f.query, f.user = query, user
	return f.result
}

func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandlers_SimpleReturnsDetectorResult(t *testing.T) {
	det := &fakeDetector{result: domain.Outcome("eng")}
	h := &handlers{deps: Deps{Detector: det}}

	r := httptest.NewRequest(http.MethodGet, "/simple?query=hello&user=alice", nil)
	got, err := h.simple(r)
	if err != nil {
		t.Fatalf("simple() err = %v", err)
	}
	resp, ok := got.(SimpleResponse)
	if !ok || resp.DetectedLang != "eng" {
		t.Fatalf("simple() = %v, want SimpleResponse{DetectedLang: eng}", got)
	}
	if det.query != "hello" || det.user != "alice" {
		t.Fatalf("Detect called with (%q, %q), want (hello, alice)", det.query, det.user)
	}
}

func TestHandlers_SimpleNonGETDefaultsParamsToEmpty(t *testing.T) {
	det := &fakeDetector{result: domain.Outcome("unknown")}
	h := &handlers{deps: Deps{Detector: det}}

	r := httptest.NewRequest(http.MethodPost, "/simple?query=hello&user=alice", nil)
	got, err := h.simple(r)
	if err != nil {
		t.Fatalf("simple() err = %v", err)
	}
	resp, ok := got.(SimpleResponse)
	if !ok || resp.DetectedLang != "unknown" {
		t.Fatalf("simple() = %v, want SimpleResponse{DetectedLang: unknown}", got)
	}
	if det.query != "" || det.user != "" {
		t.Fatalf("Detect called with (%q, %q), want (\"\", \"\") for a non-GET request", det.query, det.user)
	}
}

type fakeWriter struct {
	langs    map[string][]string
	declared []string
	err      error
}

func (w *fakeWriter) Declare(_ context.Context, user, lang string) error {
	if w.err != nil {
		return w.err
	}
	w.declared = append(w.declared, user+":"+lang)
	return nil
}
func (w *fakeWriter) Revoke(_ context.Context, user, lang string) error { return w.err }
func (w *fakeWriter) List(_ context.Context, user string) ([]string, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.langs[user], nil
}

func TestHandlers_DeclareLangThenList(t *testing.T) {
	w := &fakeWriter{langs: map[string][]string{"alice": {"eng"}}}
	h := &handlers{deps: Deps{Langs: service.NewLangs(w)}}

	r := withURLParams(httptest.NewRequest(http.MethodPost, "/langdetect/users/alice/langs", nil), "user", "alice")
	got, err := h.declareLang(r, DeclareLangRequest{Lang: "deu"})
	if err != nil {
		t.Fatalf("declareLang() err = %v", err)
	}
	resp := got.(LangsResponse)
	if resp.User != "alice" || len(w.declared) != 1 || w.declared[0] != "alice:deu" {
		t.Fatalf("declareLang() = %v, declared = %v", resp, w.declared)
	}
}

func TestHandlers_ListLangsMapsNoWriterToUnavailable(t *testing.T) {
	h := &handlers{deps: Deps{Langs: service.NewLangs(nil)}}

	r := withURLParams(httptest.NewRequest(http.MethodGet, "/langdetect/users/alice/langs", nil), "user", "alice")
	_, err := h.listLangs(r)
	if err == nil {
		t.Fatal("listLangs() err = nil, want an unavailable error")
	}
}

func TestMapLangsErr_WrapsGenericStorageError(t *testing.T) {
	err := mapLangsErr(errors.New("users_langs: boom"))
	if err == nil {
		t.Fatal("mapLangsErr() = nil")
	}
}
