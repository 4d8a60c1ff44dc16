package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hbollon/go-edlib"
	"golang.org/x/sync/singleflight"

	"github.com/vmunix/vidcat/internal/metrics"
)

// ErrUnknownSource is returned by Run for names that are not configured.
var ErrUnknownSource = errors.New("unknown source")

// SourceSynchronizer synchronizes a single source.
type SourceSynchronizer interface {
	Synchronize(ctx context.Context, src Source) (*Result, error)
}

// SourceReport is the outcome for one source within a run.
type SourceReport struct {
	Source string
	Result *Result // nil when Err is a discovery or store failure
	Err    error
}

// Report is the outcome of one run over the configured sources.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Sources   []SourceReport
}

// Added returns the total number of videos added in the run.
func (r *Report) Added() int {
	n := 0
	for _, s := range r.Sources {
		if s.Result != nil {
			n += len(s.Result.Added)
		}
	}
	return n
}

// Runner runs the synchronizer over the configured sources in order.
// Overlapping calls for the same set of sources share one in-flight run.
type Runner struct {
	sync    SourceSynchronizer
	sources []Source
	group   singleflight.Group
	log     *slog.Logger
}

// NewRunner creates a runner over sources. Order is preserved.
func NewRunner(sync SourceSynchronizer, sources []Source, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		sync:    sync,
		sources: append([]Source(nil), sources...),
		log:     log,
	}
}

// Sources returns the configured sources in processing order.
func (r *Runner) Sources() []Source {
	return append([]Source(nil), r.sources...)
}

// RunAll synchronizes every configured source. A failing source is
// reported and the remaining sources still run.
func (r *Runner) RunAll(ctx context.Context) (*Report, error) {
	return r.run(ctx, "*", r.sources)
}

// Run synchronizes the named sources, in configured order.
// Unknown names are an error and nothing runs.
func (r *Runner) Run(ctx context.Context, names ...string) (*Report, error) {
	if len(names) == 0 {
		return r.RunAll(ctx)
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var selected []Source
	for _, src := range r.sources {
		if want[src.Name] {
			selected = append(selected, src)
			delete(want, src.Name)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for n := range want {
			if s := r.suggest(n); s != "" {
				n = fmt.Sprintf("%s (did you mean %q?)", n, s)
			}
			unknown = append(unknown, n)
		}
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, strings.Join(unknown, ", "))
	}

	if len(selected) == len(r.sources) {
		return r.RunAll(ctx)
	}

	keys := make([]string, len(selected))
	for i, src := range selected {
		keys[i] = src.Name
	}
	return r.run(ctx, strings.Join(keys, ","), selected)
}

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
const suggestThreshold = 0.8

// suggest returns the configured source name closest to name, or "" when
// none is similar enough.
func (r *Runner) suggest(name string) string {
	best, bestScore := "", float32(0)
	for _, src := range r.sources {
		score := edlib.JaroWinklerSimilarity(strings.ToLower(name), strings.ToLower(src.Name))
		if score > bestScore {
			best, bestScore = src.Name, score
		}
	}
	if bestScore < suggestThreshold {
		return ""
	}
	return best
}

func (r *Runner) run(ctx context.Context, key string, sources []Source) (*Report, error) {
	v, err, shared := r.group.Do(key, func() (any, error) {
		return r.runSources(ctx, sources), nil
	})
	if err != nil {
		return nil, err
	}
	report := v.(*Report)
	if shared {
		r.log.Debug("joined in-flight run", "run_id", report.RunID)
	}
	return report, nil
}

func (r *Runner) runSources(ctx context.Context, sources []Source) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	log := r.log.With("run_id", report.RunID)
	log.Info("sync started", "sources", len(sources))

	for _, src := range sources {
		start := time.Now()
		res, err := r.sync.Synchronize(ctx, src)

		added, probeFailures := 0, 0
		if res != nil {
			added = len(res.Added)
			probeFailures = res.ProbeFailures()
		}
		metrics.RecordSync(src.Name, added, probeFailures, time.Since(start), err)

		if err != nil {
			log.Error("source sync failed", "source", src.Name, "root", src.Root, "error", err)
		} else {
			log.Info("source synced",
				"source", src.Name,
				"added", added,
				"skipped", len(res.Skipped),
				"failed", len(res.Failed),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}
		report.Sources = append(report.Sources, SourceReport{Source: src.Name, Result: res, Err: err})
	}

	report.Duration = time.Since(report.StartedAt)
	log.Info("sync finished", "added", report.Added(), "duration_ms", report.Duration.Milliseconds())
	return report
}
