package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"nse_sync/internal/feature/bhavcopy/domain"
	"nse_sync/internal/feature/bhavcopy/domain/entity"
	"nse_sync/internal/feature/bhavcopy/usecase"
	"nse_sync/internal/platform/externalapi/ingest/dto"
)

// maxLoggedBody caps how much of an error response ends up in the error message.
const maxLoggedBody = 512

// Dispatcher は解析済みの価格データを取り込みエンドポイントへ POST する usecase.PayloadDispatcher 実装です。
type Dispatcher struct {
	cfg    Config
	client *resty.Client
}

var _ usecase.PayloadDispatcher = (*Dispatcher)(nil)

// NewDispatcher は指定された設定と resty クライアントで Dispatcher を生成します。
func NewDispatcher(cfg Config, client *resty.Client) *Dispatcher {
	return &Dispatcher{cfg: cfg, client: client}
}

// Dispatch builds the SyncPayload for date and records, posts it as JSON and returns the raw
// response body. A transport failure or a non-2xx status is reported as domain.ErrDispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, runID string, date time.Time, records []entity.PriceRecord) (string, error) {
	body, err := json.Marshal(dto.FromEntity(entity.NewSyncPayload(date, records)))
	if err != nil {
		return "", fmt.Errorf("%w: encode payload: %w", domain.ErrDispatch, err)
	}

	slog.Info("sending rows to ingest endpoint", "rows", len(records), "endpoint", d.cfg.EndpointURL)

	res, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", runID).
		SetBody(body).
		Post(d.cfg.EndpointURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrDispatch, err)
	}

	resp := res.String()
	slog.Info("ingest response", "status", res.StatusCode(), "body", resp)

	if !res.IsSuccess() {
		return "", fmt.Errorf("%w: ingest http %d: %s", domain.ErrDispatch, res.StatusCode(), truncate(resp, maxLoggedBody))
	}
	return resp, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
