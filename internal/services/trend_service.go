package services

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"fpt/internal/models"
	"fpt/internal/parser"
	"fpt/internal/providers"
	"fpt/internal/scrape"
	"fpt/internal/store"
	"fpt/internal/structures"
)

// RunReport summarises one search run.
type RunReport struct {
	SearchID       string `json:"search_id"`
	Pages          int    `json:"pages"`
	Blocks         int    `json:"blocks"`
	Journeys       int    `json:"journeys"`
	JourneysStored int64  `json:"journeys_stored"`
	LegsStored     int64  `json:"legs_stored"`
	PricesStored   int64  `json:"prices_stored"`
}

// RunStats is the daemon-lifetime view the API serves.
type RunStats struct {
	Runs          int64 `json:"runs"`
	FailedRuns    int64 `json:"failed_runs"`
	Journeys      int64 `json:"journeys"`
	Prices        int64 `json:"prices"`
	LastRunAtUnix int64 `json:"last_run_at_unix"`
}

type TrendServiceInterface interface {
	RunSearch(ctx context.Context, spec structures.SearchSpec) (*RunReport, error)
	RunAll(ctx context.Context)
	Stats() RunStats
	TrackedSearches() []structures.SearchSpec
}

type TrendService struct {
	conf    *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	fetcher scrape.BlockSource
	parser  *parser.Parser
	archive *scrape.BlockArchive
	rows    *store.RowBuilder
	store   store.StoreInterface

	runs       atomic.Int64
	failedRuns atomic.Int64
	journeys   atomic.Int64
	prices     atomic.Int64
	lastRunAt  atomic.Int64
}

func NewTrendService(
	conf *structures.Config,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	fetcher scrape.BlockSource,
	p *parser.Parser,
	archive *scrape.BlockArchive,
	rows *store.RowBuilder,
	st store.StoreInterface,
) TrendServiceInterface {
	return &TrendService{
		conf:    conf,
		logger:  logger,
		metrics: metrics,
		fetcher: fetcher,
		parser:  p,
		archive: archive,
		rows:    rows,
		store:   st,
	}
}

// RunSearch executes one full cycle for one search: build URLs, scrape every
// page, parse the blocks, store rows. A ValidationError aborts the run; a
// failed page fetch skips that page and carries on.
func (ts *TrendService) RunSearch(ctx context.Context, spec structures.SearchSpec) (*RunReport, error) {
	fs := models.FromSearchSpec(spec)

	urls, err := scrape.BuildURLs(fs, ts.conf.Country(), ts.conf.Rules)
	if err != nil {
		return nil, err
	}
	legDates, err := fs.LegDates()
	if err != nil {
		return nil, err
	}

	searchID := fs.ID()
	report := &RunReport{SearchID: searchID, Pages: len(urls)}
	acc := make([]models.Journey, 0)

	for _, url := range urls {
		start := time.Now()
		blocks, err := ts.fetcher.FetchBlocks(ctx, url)
		ts.metrics.ObserveScrapeDuration(time.Since(start))
		if err != nil {
			ts.logger.Errorf(providers.TypeScrape, "Fetch failed for %s: %s", url, err)
			continue
		}
		report.Blocks += len(blocks)

		capture := &scrape.RawCapture{
			SearchID:  searchID,
			URL:       url,
			FetchedAt: time.Now().UTC(),
			Blocks:    blocks,
		}
		if err := ts.archive.Save(capture); err != nil {
			ts.logger.Errorf(providers.TypeScrape, "Archive failed for %s: %s", url, err)
		}

		acc = ts.parser.ParseBlocks(blocks, legDates, acc)
	}
	report.Journeys = len(acc)

	if err := ts.storeRun(fs, searchID, acc, report); err != nil {
		ts.failedRuns.Inc()
		return nil, err
	}

	ts.runs.Inc()
	ts.journeys.Add(int64(report.JourneysStored))
	ts.prices.Add(report.PricesStored)
	ts.lastRunAt.Store(time.Now().Unix())

	ts.logger.Infof(providers.TypeApp,
		"Run complete for search %s: %d blocks, %d journeys, %d new prices",
		searchID[:12], report.Blocks, report.Journeys, report.PricesStored)

	return report, nil
}

func (ts *TrendService) storeRun(fs *models.FlightSearch, searchID string, journeys []models.Journey, report *RunReport) error {
	start := time.Now()
	defer func() {
		ts.metrics.ObserveStoreDuration(time.Since(start))
	}()

	if _, err := ts.store.Insert("flight_searches", store.InsertMap["flight_searches"],
		[][]any{ts.rows.SearchRow(fs)}); err != nil {
		return err
	}

	n, err := ts.store.Insert("journeys", store.InsertMap["journeys"], ts.rows.JourneyRows(journeys, searchID))
	if err != nil {
		return err
	}
	report.JourneysStored = n

	n, err = ts.store.Insert("legs", store.InsertMap["legs"], ts.rows.LegRows(journeys))
	if err != nil {
		return err
	}
	report.LegsStored = n

	n, err = ts.store.Insert("prices", store.InsertMap["prices"], ts.rows.PriceRows(journeys))
	if err != nil {
		return err
	}
	report.PricesStored = n
	ts.metrics.IncPricesStored(int(n))

	return nil
}

// RunAll runs every tracked search, skipping over individual failures so one
// bad search spec cannot stall the rest of the cycle.
func (ts *TrendService) RunAll(ctx context.Context) {
	for _, spec := range ts.conf.Searches {
		if ctx.Err() != nil {
			return
		}
		if _, err := ts.RunSearch(ctx, spec); err != nil {
			ts.logger.Errorf(providers.TypeApp, "Search %s %v -> %v failed: %s",
				spec.JourneyType, spec.Origin, spec.Destination, err)
		}
	}
}

func (ts *TrendService) Stats() RunStats {
	return RunStats{
		Runs:          ts.runs.Load(),
		FailedRuns:    ts.failedRuns.Load(),
		Journeys:      ts.journeys.Load(),
		Prices:        ts.prices.Load(),
		LastRunAtUnix: ts.lastRunAt.Load(),
	}
}

func (ts *TrendService) TrackedSearches() []structures.SearchSpec {
	return ts.conf.Searches
}
