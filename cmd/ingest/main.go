package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"nse_sync/internal/app/di"
	"nse_sync/internal/feature/bhavcopy/domain"
	"nse_sync/internal/platform/config"
	"nse_sync/internal/platform/externalapi/ingest"
	"nse_sync/internal/platform/externalapi/nse"
)

const defaultSyncTimeout = 5 * time.Minute

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 失敗は段階名付きで1回だけ報告し、終了コード1で終了する（panic はしない）。
	// 成功時の終了コードは0。
	if err := run(context.Background(), time.Now()); err != nil {
		slog.Error("sync failed", "stage", domain.Stage(err), "error", err)
		os.Exit(1)
	}
}

// run は起動時刻 now を基準に1日分の同期を1回だけ実行します。
// エラーの報告は呼び出し元（main）で1度だけ行います。
func run(ctx context.Context, now time.Time) error {
	nseCfg, err := nse.LoadConfig()
	if err != nil {
		return err
	}
	ingestCfg, err := ingest.LoadConfig()
	if err != nil {
		return err
	}
	timeout, err := config.Duration("SYNC_TIMEOUT", defaultSyncTimeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	src := nse.NewSource(nseCfg.BaseURL, now)
	uc := di.NewSyncUsecase(nseCfg, ingestCfg)

	res, err := uc.Sync(ctx, src)
	if err != nil {
		return err
	}

	slog.Info("sync completed",
		"run_id", res.RunID,
		"date", res.Date.Format(time.DateOnly),
		"rows", res.RecordCount,
		"response", res.Response,
	)
	return nil
}
