//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/domain/pipeline"
)

// FakeRD serves the subset of the RD Station CRM API the service calls.
// Deals live in memory; FailNext makes the next N calls answer with a status.
type FakeRD struct {
	server *httptest.Server

	mu        sync.Mutex
	pipelines []pipeline.Pipeline
	deals     map[string]crm.Deal
	seq       int
	failCode  int
	failCount int
	calls     map[string]int
}

func NewFakeRD(pipelines ...pipeline.Pipeline) *FakeRD {
	f := &FakeRD{
		pipelines: pipelines,
		deals:     map[string]crm.Deal{},
		calls:     map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /deal_pipelines", f.listPipelines)
	mux.HandleFunc("POST /deals", f.createDeal)
	mux.HandleFunc("PUT /deals/{id}", f.updateDeal)
	f.server = httptest.NewServer(f.middleware(mux))
	return f
}

func (f *FakeRD) URL() string { return f.server.URL }

func (f *FakeRD) Close() { f.server.Close() }

// Reset drops deals, counters and pending failures; pipelines are kept.
func (f *FakeRD) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deals = map[string]crm.Deal{}
	f.calls = map[string]int{}
	f.seq = 0
	f.failCode, f.failCount = 0, 0
}

func (f *FakeRD) FailNext(code, times int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCode, f.failCount = code, times
}

func (f *FakeRD) PutDeal(d crm.Deal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deals[d.ID] = d
}

func (f *FakeRD) Deal(id string) (crm.Deal, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deals[id]
	return d, ok
}

// Calls counts requests by "METHOD pattern", e.g. "POST /deals".
func (f *FakeRD) Calls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *FakeRD) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") == "" {
			http.Error(w, `{"errors":"missing token"}`, http.StatusUnauthorized)
			return
		}
		f.mu.Lock()
		if f.failCount > 0 {
			f.failCount--
			code := f.failCode
			f.mu.Unlock()
			http.Error(w, `{"errors":"injected failure"}`, code)
			return
		}
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *FakeRD) count(r *http.Request) {
	f.mu.Lock()
	f.calls[r.Pattern]++
	f.mu.Unlock()
}

func (f *FakeRD) listPipelines(w http.ResponseWriter, r *http.Request) {
	f.count(r)
	f.mu.Lock()
	body := map[string]any{"deal_pipelines": f.pipelines}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, body)
}

type dealBody struct {
	Deal crm.DealInput `json:"deal"`
}

func (f *FakeRD) createDeal(w http.ResponseWriter, r *http.Request) {
	f.count(r)
	var body dealBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"errors": err.Error()})
		return
	}

	f.mu.Lock()
	f.seq++
	d := crm.Deal{
		ID:           fmt.Sprintf("deal-%04d", f.seq),
		Name:         body.Deal.Name,
		Stage:        f.stageLocked(body.Deal.StageID),
		User:         &crm.DealUser{ID: "u-1", Name: "Ana Lima"},
		CustomFields: body.Deal.CustomFields,
	}
	f.deals[d.ID] = d
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, d)
}

func (f *FakeRD) updateDeal(w http.ResponseWriter, r *http.Request) {
	f.count(r)
	var body dealBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"errors": err.Error()})
		return
	}

	id := r.PathValue("id")
	f.mu.Lock()
	d, ok := f.deals[id]
	if !ok {
		f.mu.Unlock()
		writeJSON(w, http.StatusNotFound, map[string]string{"errors": "deal not found"})
		return
	}
	if body.Deal.Name != "" {
		d.Name = body.Deal.Name
	}
	if body.Deal.StageID != "" {
		d.Stage = f.stageLocked(body.Deal.StageID)
	}
	if len(body.Deal.CustomFields) > 0 {
		d.CustomFields = body.Deal.CustomFields
	}
	f.deals[id] = d
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, d)
}

func (f *FakeRD) stageLocked(id string) crm.DealStage {
	for _, p := range f.pipelines {
		for _, st := range p.Stages {
			if st.ID == id {
				return crm.DealStage{ID: st.ID, Name: st.Name, Nickname: st.Nickname}
			}
		}
	}
	return crm.DealStage{ID: id}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
