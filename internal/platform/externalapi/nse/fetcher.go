package nse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"nse_sync/internal/feature/bhavcopy/domain"
	"nse_sync/internal/feature/bhavcopy/usecase"
)

// ArchiveFetcher は NSE から bhavcopy の zip アーカイブを取得する usecase.ArchiveFetcher 実装です。
type ArchiveFetcher struct {
	cfg    Config
	client *resty.Client
}

// ArchiveFetcherがArchiveFetcherインターフェースを実装していることをコンパイル時に検証します。
var _ usecase.ArchiveFetcher = (*ArchiveFetcher)(nil)

// NewArchiveFetcher は指定された設定と resty クライアントで ArchiveFetcher を生成します。
func NewArchiveFetcher(cfg Config, client *resty.Client) *ArchiveFetcher {
	return &ArchiveFetcher{cfg: cfg, client: client}
}

// Fetch downloads url and returns the raw body. Any failure, including a non-2xx
// status, is reported as domain.ErrFetch. The request is not retried.
func (f *ArchiveFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	slog.Info("downloading bhavcopy", "url", url)

	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", f.cfg.UserAgent).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: nse http %d", domain.ErrFetch, res.StatusCode())
	}
	return res.Body(), nil
}
