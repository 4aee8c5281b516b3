// Package dto defines the JSON body sent to the ingest endpoint.
package dto

import (
	"encoding/json"
	"time"

	"nse_sync/internal/feature/bhavcopy/domain/entity"
)

// SyncPayload is the request body of the ingest endpoint.
type SyncPayload struct {
	Exchange string  `json:"exchange"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Prices   []Price `json:"prices"`
}

// Price is one row of SyncPayload.Prices.
// Prices are json.Number so the exact decimal text from the bhavcopy is sent as a JSON number.
type Price struct {
	Symbol string      `json:"symbol"`
	Open   json.Number `json:"open"`
	High   json.Number `json:"high"`
	Low    json.Number `json:"low"`
	Close  json.Number `json:"close"`
	Volume int64       `json:"volume"`
}

// FromEntity はドメインのペイロードを送信用DTOに変換します。行の順序は保持されます。
func FromEntity(p entity.SyncPayload) SyncPayload {
	prices := make([]Price, 0, len(p.Prices))
	for _, r := range p.Prices {
		prices = append(prices, Price{
			Symbol: r.Symbol,
			Open:   json.Number(r.Open.String()),
			High:   json.Number(r.High.String()),
			Low:    json.Number(r.Low.String()),
			Close:  json.Number(r.Close.String()),
			Volume: r.Volume,
		})
	}
	return SyncPayload{
		Exchange: p.Exchange,
		Date:     p.Date.Format(time.DateOnly),
		Prices:   prices,
	}
}
