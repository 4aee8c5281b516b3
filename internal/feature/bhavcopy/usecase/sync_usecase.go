// Package usecase implements the bhavcopy sync pipeline.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nse_sync/internal/feature/bhavcopy/domain"
	"nse_sync/internal/feature/bhavcopy/domain/entity"
)

// ArchiveFetcher downloads the raw archive bytes from a fully-formed URL.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ArchiveFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// EntryExtractor returns the decoded text of a named entry in an archive.
type EntryExtractor interface {
	Extract(archive []byte, name string) (string, error)
}

// RowParser converts CSV text into price records.
type RowParser interface {
	Parse(text string) ([]entity.PriceRecord, error)
}

// PayloadDispatcher builds the sync payload and delivers it, returning the raw response body.
type PayloadDispatcher interface {
	Dispatch(ctx context.Context, runID string, date time.Time, records []entity.PriceRecord) (string, error)
}

// SyncUsecase は bhavcopy を取得・展開・解析し、取り込みエンドポイントへ送信するユースケースです。
type SyncUsecase struct {
	fetcher    ArchiveFetcher
	extractor  EntryExtractor
	parser     RowParser
	dispatcher PayloadDispatcher
	newRunID   func() string
}

// NewSyncUsecase は新しい SyncUsecase を作成します。
func NewSyncUsecase(fetcher ArchiveFetcher, extractor EntryExtractor, parser RowParser, dispatcher PayloadDispatcher) *SyncUsecase {
	return &SyncUsecase{
		fetcher:    fetcher,
		extractor:  extractor,
		parser:     parser,
		dispatcher: dispatcher,
		newRunID:   uuid.NewString,
	}
}

// Sync は src が示す1日分の bhavcopy を処理します。
// いずれかの段階で失敗した場合、その段階のエラーを返し、後続の段階は実行しません。
// 解析に失敗した場合はペイロードを一切送信しません。
func (u *SyncUsecase) Sync(ctx context.Context, src entity.Source) (entity.SyncResult, error) {
	runID := u.newRunID()
	log := slog.With("run_id", runID, "date", src.Date.Format(time.DateOnly))

	archive, err := u.fetcher.Fetch(ctx, src.ArchiveURL)
	if err != nil {
		return entity.SyncResult{}, stageError(domain.ErrFetch, err)
	}
	log.Info("archive downloaded", "bytes", len(archive))

	text, err := u.extractor.Extract(archive, src.EntryName)
	if err != nil {
		return entity.SyncResult{}, stageError(domain.ErrExtract, err)
	}

	records, err := u.parser.Parse(text)
	if err != nil {
		return entity.SyncResult{}, stageError(domain.ErrParse, err)
	}
	log.Info("bhavcopy parsed", "rows", len(records))

	resp, err := u.dispatcher.Dispatch(ctx, runID, src.Date, records)
	if err != nil {
		return entity.SyncResult{}, stageError(domain.ErrDispatch, err)
	}

	return entity.SyncResult{
		RunID:       runID,
		Date:        src.Date,
		RecordCount: len(records),
		Response:    resp,
	}, nil
}

// stageError wraps err under sentinel unless the adapter already did.
func stageError(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
