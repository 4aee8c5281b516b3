// Package di provides dependency injection factories for creating application components.
package di

import (
	"nse_sync/internal/feature/bhavcopy/adapters/archive"
	"nse_sync/internal/feature/bhavcopy/adapters/csvparser"
	"nse_sync/internal/feature/bhavcopy/usecase"
	"nse_sync/internal/platform/externalapi/ingest"
	"nse_sync/internal/platform/externalapi/nse"
	infrahttp "nse_sync/internal/platform/http"
)

// NewArchiveFetcher creates an NSE ArchiveFetcher with its own timeout-bound HTTP client.
func NewArchiveFetcher(cfg nse.Config) *nse.ArchiveFetcher {
	return nse.NewArchiveFetcher(cfg, infrahttp.NewRestyClient(cfg.Timeout))
}

// NewDispatcher creates an ingest Dispatcher with its own timeout-bound HTTP client.
func NewDispatcher(cfg ingest.Config) *ingest.Dispatcher {
	return ingest.NewDispatcher(cfg, infrahttp.NewRestyClient(cfg.Timeout))
}

// NewSyncUsecase wires the full fetch → extract → parse → dispatch pipeline.
func NewSyncUsecase(nseCfg nse.Config, ingestCfg ingest.Config) *usecase.SyncUsecase {
	return usecase.NewSyncUsecase(
		NewArchiveFetcher(nseCfg),
		archive.NewZipExtractor(),
		csvparser.NewParser(),
		NewDispatcher(ingestCfg),
	)
}
