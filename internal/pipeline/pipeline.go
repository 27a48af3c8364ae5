// Package pipeline orchestrates the per-run fetch-extract-write cycle across
// all dashboard datasets.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/freightdash/dashboard-etl/internal/domain"
	"github.com/freightdash/dashboard-etl/internal/observability"
)

// GridFetcher fetches one worksheet as a raw grid snapshot.
type GridFetcher interface {
	GetGrid(ctx context.Context, worksheet string) (domain.Grid, error)
}

// DatasetStore persists one dataset document.
type DatasetStore interface {
	WriteDataset(file string, payload any) error
}

// DatasetPublisher republishes one dataset document downstream.
type DatasetPublisher interface {
	PublishDataset(ctx context.Context, ds domain.Dataset) error
}

// Pipeline runs the extraction cycle: fetch each worksheet, extract its
// sections, write the dataset, and optionally republish it. Failures are
// contained per dataset and per section; a run that hits every failure mode
// still writes valid JSON for whatever succeeded.
type Pipeline struct {
	fetcher   GridFetcher
	store     DatasetStore
	publisher DatasetPublisher // nil when republishing is disabled
	logger    *slog.Logger
	metrics   *observability.Metrics

	fetchTimeout    time.Duration
	refreshInterval time.Duration
	ready           atomic.Bool

	mu          sync.Mutex
	lastRunAt   time.Time
	lastWritten int
}

// New creates a Pipeline. Pass a nil publisher to disable republishing.
func New(fetcher GridFetcher, store DatasetStore, publisher DatasetPublisher,
	logger *slog.Logger, metrics *observability.Metrics,
	fetchTimeout, refreshInterval time.Duration,
) *Pipeline {
	return &Pipeline{
		fetcher:         fetcher,
		store:           store,
		publisher:       publisher,
		logger:          logger,
		metrics:         metrics,
		fetchTimeout:    fetchTimeout,
		refreshInterval: refreshInterval,
	}
}

// CheckReadiness returns nil once at least one run has written a dataset.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no extraction run has completed yet")
	}
	return nil
}

// LastRun reports when the most recent run completed and how many datasets
// it wrote. The time is zero before the first run.
func (p *Pipeline) LastRun() (time.Time, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastRunAt, p.lastWritten
}

// Run executes extraction runs until the context is cancelled. With a zero
// refresh interval it performs a single run and returns, which is how the
// cron deployment uses it.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.refreshInterval <= 0 {
		return p.RunOnce(ctx)
	}

	p.logger.Info("pipeline started", "refresh_interval", p.refreshInterval)
	for {
		if err := p.RunOnce(ctx); err != nil {
			p.logger.Error("extraction run failed", "error", err)
		}
		if !sleepWithContext(ctx, p.refreshInterval) {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// RunOnce performs one complete extraction run across all datasets. It
// returns an error only when no dataset could be written at all.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := clock.Now()
	written := 0

	for _, build := range []func(context.Context) (domain.Dataset, error){
		p.buildChartData,
		p.buildTableData,
		p.buildExchangeRates,
		p.buildWeather,
	} {
		ds, err := build(ctx)
		if err != nil {
			p.logger.Error("dataset build failed, skipping", "error", err)
			continue
		}
		if err := p.store.WriteDataset(ds.File, ds.Payload); err != nil {
			p.logger.Error("dataset write failed", "dataset", ds.Name, "file", ds.File, "error", err)
			continue
		}
		p.metrics.DatasetsWritten.Inc()
		written++
		p.logger.Info("dataset written", "dataset", ds.Name, "file", ds.File)

		if p.publisher != nil {
			if err := p.publisher.PublishDataset(ctx, ds); err != nil {
				p.logger.Warn("dataset publish failed", "dataset", ds.Name, "error", err)
			} else {
				p.metrics.DatasetsPublished.Inc()
			}
		}
	}

	p.metrics.RunDuration.Observe(clock.Since(start).Seconds())
	p.metrics.LastRunUnixtime.Set(float64(clock.Now().Unix()))

	p.mu.Lock()
	p.lastRunAt = clock.Now()
	p.lastWritten = written
	p.mu.Unlock()

	switch written {
	case len(datasetFiles):
		p.metrics.RunsTotal.WithLabelValues("success").Inc()
	case 0:
		p.metrics.RunsTotal.WithLabelValues("error").Inc()
		return errors.New("no dataset could be written")
	default:
		p.metrics.RunsTotal.WithLabelValues("partial").Inc()
	}

	p.ready.Store(true)
	p.metrics.Ready.Set(1)
	return nil
}

// fetchGrid fetches one worksheet under the configured per-fetch timeout.
func (p *Pipeline) fetchGrid(ctx context.Context, worksheet string) (domain.Grid, error) {
	fctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	start := clock.Now()
	grid, err := p.fetcher.GetGrid(fctx, worksheet)
	p.metrics.FetchDuration.WithLabelValues(worksheet).Observe(clock.Since(start).Seconds())
	return grid, err
}

// sleepWithContext waits on the package clock so tests drive the refresh
// loop by advancing a fake clock.
func sleepWithContext(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-clock.After(d):
		return true
	}
}
