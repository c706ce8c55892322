package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/runstate"
	"InvestAdvisor/internal/store"
)

// memStore is a map-backed DocumentStore for handler tests.
type memStore struct {
	docs map[string][]byte
}

func (s *memStore) Ping(context.Context) error { return nil }

func (s *memStore) Upsert(_ context.Context, clientID string, doc *model.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.docs[clientID] = data
	return nil
}

func (s *memStore) Get(_ context.Context, clientID string) ([]byte, error) {
	doc, ok := s.docs[clientID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return doc, nil
}

func (s *memStore) Close() error { return nil }

func newTestServer(t *testing.T, defaultClientID string) (*Server, *memStore) {
	t.Helper()
	st := &memStore{docs: make(map[string][]byte)}
	mgr, err := runstate.NewManager(filepath.Join(t.TempDir(), "run_state.json"))
	if err != nil {
		t.Fatal(err)
	}
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { bus.Close() })
	return NewServer(st, mgr, bus, "generate-recommendations", defaultClientID), st
}

func TestGetRecommendations_Found(t *testing.T) {
	srv, st := newTestServer(t, "")
	st.docs["CLI001"] = []byte(`{"id_cliente":"CLI001","recomendacoes":[]}`)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/CLI001", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id_cliente":"CLI001"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetRecommendations_DefaultFallback(t *testing.T) {
	srv, st := newTestServer(t, "CLI_DEFAULT")
	st.docs["CLI_DEFAULT"] = []byte(`{"id_cliente":"CLI_DEFAULT"}`)

	req := httptest.NewRequest(http.MethodGet, "/recommendations/CLI_UNKNOWN", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected fallback to default client, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "CLI_DEFAULT") {
		t.Errorf("expected default client document, got %s", rec.Body.String())
	}
}

func TestGetRecommendations_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/recommendations/CLI404", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "no recommendations found for this client" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestRefresh_Accepted(t *testing.T) {
	srv, _ := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/recommendations/refresh", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "OK" || body["service"] != "invest-advisor" {
		t.Errorf("unexpected health body: %v", body)
	}
}
