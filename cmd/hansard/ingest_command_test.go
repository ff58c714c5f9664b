package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hansard/internal/store"
	"hansard/internal/testsupport"
)

func newSittingServer(t *testing.T, sittings map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := sittings[r.URL.Query().Get("sittingDate")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, doc)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIngestSingleDateThenStatus(t *testing.T) {
	env := setupCLITestEnv(t)
	server := newSittingServer(t, map[string]string{
		"05-03-2024": testsupport.SampleDocument(),
	})
	env.cfg.Source.BaseURL = server.URL
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"ingest", "--date", "2024-03-05"}, env.configPath)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	requireContains(t, out, "Ingested 2024-03-05")

	out, _, err = runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "2024-03-05")
	requireContains(t, out, "Stored sittings")
}

func TestIngestDryRunWritesNothing(t *testing.T) {
	env := setupCLITestEnv(t)
	server := newSittingServer(t, map[string]string{
		"05-03-2024": testsupport.SampleDocument(),
	})
	env.cfg.Source.BaseURL = server.URL
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"ingest", "--date", "2024-03-05", "--dry-run"}, env.configPath)
	if err != nil {
		t.Fatalf("ingest --dry-run: %v", err)
	}
	requireContains(t, out, "Dry run: nothing was written")

	st, err := store.Open(env.cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = st.Close() }()
	summaries, err := st.Summaries(context.Background(), 0)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected empty store after dry run, got %d sittings", len(summaries))
	}
}

func TestIngestNoSittingDate(t *testing.T) {
	env := setupCLITestEnv(t)
	server := newSittingServer(t, nil)
	env.cfg.Source.BaseURL = server.URL
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"ingest", "--date", "2024-03-06"}, env.configPath)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	requireContains(t, out, "No sitting on 2024-03-06")
}

func TestIngestRejectsConflictingFlags(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"ingest", "--date", "2024-03-05", "--from", "2024-03-01"}, env.configPath)
	if err == nil {
		t.Fatal("expected flag conflict error")
	}
}

func TestStatusEmptyStore(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "No sittings stored")
}
