// Package archive opens the downloaded bhavcopy container.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding/unicode"

	"nse_sync/internal/feature/bhavcopy/domain"
	"nse_sync/internal/feature/bhavcopy/usecase"
)

// ZipExtractor reads a single named entry from an in-memory zip archive.
type ZipExtractor struct{}

var _ usecase.EntryExtractor = ZipExtractor{}

// NewZipExtractor returns a ZipExtractor.
func NewZipExtractor() ZipExtractor {
	return ZipExtractor{}
}

// Extract はアーカイブ内の name と完全一致するエントリを UTF-8 テキストとして返します。
// 先頭の BOM は取り除かれます。
func (ZipExtractor) Extract(data []byte, name string) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open archive: %w", domain.ErrExtract, err)
	}

	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			entry = f
			break
		}
	}
	if entry == nil {
		return "", fmt.Errorf("%w: entry %q not found in archive", domain.ErrExtract, name)
	}

	rc, err := entry.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open entry %q: %w", domain.ErrExtract, name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: read entry %q: %w", domain.ErrExtract, name, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: entry %q is not valid UTF-8", domain.ErrExtract, name)
	}

	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decode entry %q: %w", domain.ErrExtract, name, err)
	}
	return string(text), nil
}
