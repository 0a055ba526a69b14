package benchserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/ainyt-go/internal/bench"
)

func newTestServer(t *testing.T) (*Server, *bench.Store) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "bench.db")
	store, err := bench.Open(dsn)
	if err != nil {
		t.Fatalf("bench.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	srv, err := New(store, store.DB())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, store
}

func intPtr(n int) *int { return &n }

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", rec.Code)
	}
}

func TestListAndGetRun(t *testing.T) {
	srv, store := newTestServer(t)
	run := bench.Run{ID: "run-1", StartedAt: time.Now(), Opener: "tares", NumGames: 1}
	games := []bench.Game{{RunID: run.ID, Answer: "crate", Turns: intPtr(3), ElapsedMs: 5}}
	if err := store.SaveRun(context.Background(), run, games); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/runs", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /runs = %d, want 200", rec.Code)
	}
	var runs []bench.Run
	if err := json.Unmarshal(rec.Body.Bytes(), &runs); err != nil {
		t.Fatalf("decode /runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" {
		t.Fatalf("/runs = %+v, want one run-1", runs)
	}

	req = httptest.NewRequest(http.MethodGet, "/runs/run-1", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /runs/run-1 = %d, want 200", rec.Code)
	}
}

func TestGetRunNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/runs/does-not-exist", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /runs/does-not-exist = %d, want 404", rec.Code)
	}
}

func TestDeleteRunRequiresAdmin(t *testing.T) {
	srv, store := newTestServer(t)
	run := bench.Run{ID: "run-1", StartedAt: time.Now(), Opener: "tares", NumGames: 1}
	if err := store.SaveRun(context.Background(), run, []bench.Game{{RunID: run.ID, Answer: "crate", Turns: intPtr(3), ElapsedMs: 5}}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/runs/run-1", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("DELETE /runs/run-1 without auth = %d, want 401", rec.Code)
	}
}

func TestAdminLoginAndDelete(t *testing.T) {
	srv, store := newTestServer(t)
	if err := SetAdminPassword(store.DB(), "admin", "hunter22"); err != nil {
		t.Fatalf("SetAdminPassword: %v", err)
	}

	run := bench.Run{ID: "run-1", StartedAt: time.Now(), Opener: "tares", NumGames: 1}
	if err := store.SaveRun(context.Background(), run, []bench.Game{{RunID: run.ID, Answer: "crate", Turns: intPtr(3), ElapsedMs: 5}}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	body, _ := json.Marshal(adminLoginReq{Username: "admin", Password: "hunter22"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /admin/login = %d, want 200", rec.Code)
	}
	var loginRes struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginRes); err != nil || loginRes.Token == "" {
		t.Fatalf("login response = %q, err %v", rec.Body.String(), err)
	}

	req = httptest.NewRequest(http.MethodDelete, "/runs/run-1", nil)
	req.Header.Set("Authorization", "Bearer "+loginRes.Token)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE /runs/run-1 with admin token = %d, want 204", rec.Code)
	}

	if _, _, err := store.GetRun(context.Background(), "run-1"); err == nil {
		t.Fatalf("run-1 still present after admin delete")
	}
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	srv, store := newTestServer(t)
	if err := SetAdminPassword(store.DB(), "admin", "hunter22"); err != nil {
		t.Fatalf("SetAdminPassword: %v", err)
	}

	body, _ := json.Marshal(adminLoginReq{Username: "admin", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("POST /admin/login with bad password = %d, want 401", rec.Code)
	}
}
