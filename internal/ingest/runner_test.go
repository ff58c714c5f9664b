package ingest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hansard/internal/config"
	"hansard/internal/fetch"
	"hansard/internal/ingest"
	"hansard/internal/logging"
	"hansard/internal/store"
	"hansard/internal/testsupport"
)

// newTestRunner serves the given documents by dd-mm-yyyy sitting date
// and wires a runner against a fresh store.
func newTestRunner(t *testing.T, documents map[string]string, opts ...ingest.RunnerOption) (*ingest.Runner, *store.Store, *config.Config) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := documents[r.URL.Query().Get("sittingDate")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t)
	cfg.Source.BaseURL = server.URL

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	client := fetch.NewClient(cfg, fetch.WithHTTPClient(server.Client()))
	runner, err := ingest.NewRunner(cfg, st, client, logging.NewNop(), testsupport.Roster(), opts...)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return runner, st, cfg
}

func TestRunWalksRange(t *testing.T) {
	runner, st, _ := newTestRunner(t, map[string]string{
		"05-03-2024": testsupport.SampleDocument(),
	})

	summary, err := runner.Run(context.Background(), "2024-03-04", "2024-03-06")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Processed != 1 || summary.NoSitting != 2 || summary.Skipped != 0 {
		t.Fatalf("summary = %+v, want 1 processed, 2 no-sitting", summary)
	}
	if summary.Inserts == 0 {
		t.Errorf("summary = %+v, want inserts recorded", summary)
	}

	stored, err := st.LoadSets(context.Background(), testDate)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Empty() {
		t.Fatal("nothing stored after run")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	documents := map[string]string{"05-03-2024": testsupport.SampleDocument()}
	runner, _, _ := newTestRunner(t, documents)

	first, err := runner.Run(context.Background(), testDate, testDate)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if first.Inserts == 0 {
		t.Fatalf("first run inserted nothing: %+v", first)
	}

	second, err := runner.Run(context.Background(), testDate, testDate)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if second.Inserts != 0 || second.Updates != 0 {
		t.Fatalf("second run = %+v, want all no-ops", second)
	}
}

func TestRunSkipsBadDocument(t *testing.T) {
	runner, _, _ := newTestRunner(t, map[string]string{
		"05-03-2024": "<p>Road closure notice.</p>",
		"06-03-2024": testsupport.SampleDocument(),
	})

	summary, err := runner.Run(context.Background(), "2024-03-05", "2024-03-06")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Skipped != 1 || summary.Processed != 1 {
		t.Fatalf("summary = %+v, want 1 skipped and 1 processed", summary)
	}
}

func TestRunResumesFromLatestStored(t *testing.T) {
	documents := map[string]string{
		"05-03-2024": testsupport.SampleDocument(),
		"06-03-2024": testsupport.SampleDocument(),
	}
	runner, _, _ := newTestRunner(t, documents)

	if _, err := runner.Run(context.Background(), testDate, testDate); err != nil {
		t.Fatalf("seed run: %v", err)
	}

	summary, err := runner.Run(context.Background(), "", "2024-03-06")
	if err != nil {
		t.Fatalf("resume run: %v", err)
	}
	if summary.From != "2024-03-06" {
		t.Errorf("resume started at %q, want the day after the latest stored sitting", summary.From)
	}
	if summary.Processed != 1 {
		t.Errorf("summary = %+v, want exactly the next sitting processed", summary)
	}
}

func TestRunHonorsMaxDaysPerRun(t *testing.T) {
	runner, _, cfg := newTestRunner(t, nil)
	cfg.Ingest.MaxDaysPerRun = 3

	summary, err := runner.Run(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.To != "2024-03-03" {
		t.Errorf("range capped at %q, want 2024-03-03", summary.To)
	}
	if summary.NoSitting != 3 {
		t.Errorf("summary = %+v, want 3 dates visited", summary)
	}
}

func TestRunDryRunStoresNothing(t *testing.T) {
	runner, st, _ := newTestRunner(t,
		map[string]string{"05-03-2024": testsupport.SampleDocument()},
		ingest.WithDryRun(true),
	)

	summary, err := runner.Run(context.Background(), testDate, testDate)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Processed != 1 || summary.Inserts == 0 {
		t.Fatalf("summary = %+v, want the plan counted but not applied", summary)
	}
	stored, err := st.LoadSets(context.Background(), testDate)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !stored.Empty() || stored.Sitting.Date != "" {
		t.Errorf("dry run wrote to the store: %+v", stored)
	}
}

func TestProcessDateSingle(t *testing.T) {
	runner, st, _ := newTestRunner(t, map[string]string{"05-03-2024": testsupport.SampleDocument()})

	counts, anomalies, err := runner.ProcessDate(context.Background(), testDate)
	if err != nil {
		t.Fatalf("ProcessDate: %v", err)
	}
	if counts.Inserts == 0 {
		t.Errorf("counts = %+v, want inserts", counts)
	}
	if anomalies != 0 {
		t.Errorf("anomalies = %d, want 0", anomalies)
	}
	stored, _ := st.LoadSets(context.Background(), testDate)
	if stored.Empty() {
		t.Error("nothing stored")
	}

	if _, _, err := runner.ProcessDate(context.Background(), "bad-date"); err == nil {
		t.Error("ProcessDate accepted a malformed date")
	}
}
