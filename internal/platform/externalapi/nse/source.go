package nse

import (
	"fmt"
	"strings"
	"time"

	"nse_sync/internal/feature/bhavcopy/domain/entity"
)

// NewSource は now（UTC に変換）の日付から bhavcopy のアーカイブ URL とエントリ名を組み立てます。
//
// 例: 2025-12-05 → https://<host>/content/historical/EQUITIES/2025/DEC/cm05DEC2025bhav.csv.zip
func NewSource(baseURL string, now time.Time) entity.Source {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	month := strings.ToUpper(day.Format("Jan"))
	stamp := strings.ToUpper(day.Format("02Jan2006"))
	entry := "cm" + stamp + "bhav.csv"

	return entity.Source{
		Date: day,
		ArchiveURL: fmt.Sprintf("%s/content/historical/EQUITIES/%d/%s/%s.zip",
			strings.TrimRight(baseURL, "/"), day.Year(), month, entry),
		EntryName: entry,
	}
}
