package http

import (
	stdctx "context"
	"errors"
	"net/http/httptest"
	"testing"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(stdctx.Context) error { return p.err }

func TestHandlers_ReadySkipsNilDeps(t *testing.T) {
	h := &handlers{}
	got, err := h.ready(httptest.NewRequest("GET", "/ready", nil))
	if err != nil {
		t.Fatalf("ready() err = %v", err)
	}
	resp := got.(ReadyResponse)
	if resp.Status != "degraded" {
		t.Fatalf("ready() status = %q, want degraded when all checks are skipped", resp.Status)
	}
	for _, c := range resp.Checks {
		if c.Status != "skipped" {
			t.Fatalf("check %q status = %q, want skipped", c.Name, c.Status)
		}
	}
}

func TestHandlers_ReadyOkWhenAllPingersSucceed(t *testing.T) {
	h := &handlers{deps: Deps{PG: fakePinger{}, Corpus: fakePinger{}}}
	got, _ := h.ready(httptest.NewRequest("GET", "/ready", nil))
	if resp := got.(ReadyResponse); resp.Status != "ok" {
		t.Fatalf("ready() status = %q, want ok", resp.Status)
	}
}

func TestHandlers_ReadyFailsWhenAPingerErrors(t *testing.T) {
	h := &handlers{deps: Deps{PG: fakePinger{err: errors.New("dial tcp: refused")}, Corpus: fakePinger{}}}
	got, _ := h.ready(httptest.NewRequest("GET", "/ready", nil))
	if resp := got.(ReadyResponse); resp.Status != "fail" {
		t.Fatalf("ready() status = %q, want fail", resp.Status)
	}
}

func TestHandlers_CorpusReportsConfiguredSizes(t *testing.T) {
	h := &handlers{deps: Deps{NgramSizes: []int{5, 3, 2}}}
	got, _ := h.corpus(httptest.NewRequest("GET", "/corpus", nil))
	resp := got.(CorpusResponse)
	if len(resp.NgramSizes) != 3 || resp.NgramSizes[0] != 5 {
		t.Fatalf("corpus() = %v, want NgramSizes [5 3 2]", resp.NgramSizes)
	}
}
