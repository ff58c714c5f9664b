package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"hansard/internal/config"
	"hansard/internal/fetch"
	"hansard/internal/logging"
	"hansard/internal/merge"
	"hansard/internal/names"
	"hansard/internal/services"
	"hansard/internal/store"
)

const dateLayout = "2006-01-02"

// Runner walks a date range, fetching and processing one sitting per
// day and applying the resulting upsert plans. A flock-based run lock
// prevents two ingests from interleaving writes.
type Runner struct {
	cfg      *config.Config
	store    *store.Store
	client   *fetch.Client
	pipeline *Pipeline
	logger   *slog.Logger
	roster   *names.Roster
	lock     *flock.Flock
	dryRun   bool
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithDryRun plans every sitting without applying anything to the store.
func WithDryRun(dryRun bool) RunnerOption {
	return func(r *Runner) { r.dryRun = dryRun }
}

// NewRunner assembles the ingest orchestrator.
func NewRunner(cfg *config.Config, st *store.Store, client *fetch.Client, logger *slog.Logger, roster *names.Roster, opts ...RunnerOption) (*Runner, error) {
	if cfg == nil || st == nil || client == nil {
		return nil, errors.New("ingest runner requires config, store, and fetch client")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		cfg:      cfg,
		store:    st,
		client:   client,
		pipeline: NewPipeline(cfg),
		logger:   logger,
		roster:   roster,
		lock:     flock.New(cfg.LockPath()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Summary aggregates one run's outcomes.
type Summary struct {
	From      string
	To        string
	Processed int
	NoSitting int
	Skipped   int
	Inserts   int
	Updates   int
	Anomalies int
}

// Roster returns the roster snapshot after the run, alias learning
// included.
func (r *Runner) Roster() *names.Roster {
	return r.roster
}

// Run ingests every date in [from, to]. An empty from resumes after the
// latest stored sitting (or at the configured start date on an empty
// store); an empty to means today. Per-date failures are logged and
// skipped so one bad document never stalls the walk.
func (r *Runner) Run(ctx context.Context, from, to string) (Summary, error) {
	locked, err := r.lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return Summary{}, errors.New("another ingest run is already in progress")
	}
	defer func() { _ = r.lock.Unlock() }()

	start, end, err := r.resolveRange(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}
	if max := r.cfg.Ingest.MaxDaysPerRun; max > 0 {
		if capped := start.AddDate(0, 0, max-1); end.After(capped) {
			end = capped
		}
	}
	summary := Summary{From: start.Format(dateLayout), To: end.Format(dateLayout)}
	if end.Before(start) {
		return summary, nil
	}

	r.logger.Info("ingest run starting",
		logging.Args(
			logging.String("from", summary.From),
			logging.String("to", summary.To),
			logging.Bool("dry_run", r.dryRun),
		)...)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		date := day.Format(dateLayout)
		dayCtx := services.WithRequestID(services.WithSittingDate(ctx, date), uuid.NewString())
		counts, anomalies, err := r.processDate(dayCtx, date)
		switch {
		case errors.Is(err, fetch.ErrNoSitting):
			summary.NoSitting++
		case err != nil:
			summary.Skipped++
			r.logger.Warn("sitting skipped",
				logging.Args(logging.String("date", date), logging.Error(err))...)
		default:
			summary.Processed++
			summary.Inserts += counts.Inserts
			summary.Updates += counts.Updates
			summary.Anomalies += anomalies
		}
	}

	r.logger.Info("ingest run finished",
		logging.Args(
			logging.Int("processed", summary.Processed),
			logging.Int("no_sitting", summary.NoSitting),
			logging.Int("skipped", summary.Skipped),
			logging.Int("inserts", summary.Inserts),
			logging.Int("updates", summary.Updates),
			logging.Int("anomalies", summary.Anomalies),
		)...)
	return summary, nil
}

// ProcessDate ingests a single sitting date, bypassing range
// resolution. Used by the single-date re-ingest override.
func (r *Runner) ProcessDate(ctx context.Context, date string) (merge.Counts, int, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return merge.Counts{}, 0, services.Wrap(services.ErrValidation, "ingest", "run", "invalid sitting date "+date, err)
	}
	ctx = services.WithRequestID(services.WithSittingDate(ctx, date), uuid.NewString())
	return r.processDate(ctx, date)
}

func (r *Runner) processDate(ctx context.Context, date string) (merge.Counts, int, error) {
	requestID, _ := services.RequestIDFromContext(ctx)
	log := r.logger.With(logging.Args(
		logging.String("date", date),
		logging.String("request_id", requestID),
	)...)

	doc, sourceURL, err := r.client.Document(services.WithStage(ctx, "fetch"), date)
	if err != nil {
		if errors.Is(err, fetch.ErrNoSitting) {
			log.Debug("no sitting")
		}
		return merge.Counts{}, 0, err
	}

	result, err := r.pipeline.Process(doc, date, sourceURL, r.roster)
	if err != nil {
		return merge.Counts{}, 0, err
	}

	prior, err := r.store.LoadSets(services.WithStage(ctx, "store"), date)
	if err != nil {
		return merge.Counts{}, 0, err
	}
	plan := merge.BuildPlan(result.Records, prior)

	anomalies := append(result.Anomalies, plan.Anomalies...)
	for _, anomaly := range anomalies {
		log.Warn("anomaly",
			logging.Args(
				logging.String("kind", string(anomaly.Kind)),
				logging.String("raw", anomaly.RawText),
				logging.String("suggestion", anomaly.Suggestion),
			)...)
	}

	counts := plan.Counts()
	if r.dryRun {
		log.Info("dry run: plan not applied",
			logging.Args(
				logging.Int("inserts", counts.Inserts),
				logging.Int("updates", counts.Updates),
				logging.Int("noops", counts.Noops),
			)...)
		return counts, len(anomalies), nil
	}

	if err := r.store.Apply(services.WithStage(ctx, "store"), plan); err != nil {
		return merge.Counts{}, 0, err
	}
	r.roster = result.Roster

	log.Info("sitting ingested",
		logging.Args(
			logging.Int("attendance", len(result.Records.Attendance)),
			logging.Int("ptba", len(result.Records.PTBA)),
			logging.Int("speeches", len(result.Records.Speeches)),
			logging.Int("inserts", counts.Inserts),
			logging.Int("updates", counts.Updates),
			logging.Int("anomalies", len(anomalies)),
		)...)
	return counts, len(anomalies), nil
}

func (r *Runner) resolveRange(ctx context.Context, from, to string) (time.Time, time.Time, error) {
	var start time.Time
	if from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, services.Wrap(services.ErrValidation, "ingest", "run", "invalid from date "+from, err)
		}
		start = parsed
	} else {
		latest, err := r.store.LatestSittingDate(ctx)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		switch {
		case latest != "":
			parsed, err := time.Parse(dateLayout, latest)
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("stored latest sitting date %q: %w", latest, err)
			}
			start = parsed.AddDate(0, 0, 1)
		default:
			parsed, err := time.Parse(dateLayout, r.cfg.Ingest.StartDate)
			if err != nil {
				return time.Time{}, time.Time{}, services.Wrap(services.ErrConfiguration, "ingest", "run", "invalid start_date "+r.cfg.Ingest.StartDate, err)
			}
			start = parsed
		}
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, services.Wrap(services.ErrValidation, "ingest", "run", "invalid to date "+to, err)
		}
		end = parsed
	}
	return start, end, nil
}
