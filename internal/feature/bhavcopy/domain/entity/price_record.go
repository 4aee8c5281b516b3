// Package entity defines the domain models for the bhavcopy sync feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeNSE identifies the data source in every outbound payload.
const ExchangeNSE = "NSE"

// PriceRecord is one end-of-day row of the bhavcopy.
type PriceRecord struct {
	Symbol string          // Trading symbol, whitespace-trimmed (e.g., "INFY")
	Open   decimal.Decimal // Opening price
	High   decimal.Decimal // Highest price of the day
	Low    decimal.Decimal // Lowest price of the day
	Close  decimal.Decimal // Closing price
	Volume int64           // Total traded quantity (TOTTRDQTY)
}

// SyncPayload is the message sent to the ingest endpoint once per run.
type SyncPayload struct {
	Exchange string
	Date     time.Time // Calendar day of the sync (UTC)
	Prices   []PriceRecord
}

// NewSyncPayload は指定日の NSE 向けペイロードを生成します。
// prices の順序はそのまま保持されます。
func NewSyncPayload(date time.Time, prices []PriceRecord) SyncPayload {
	if prices == nil {
		prices = []PriceRecord{}
	}
	return SyncPayload{
		Exchange: ExchangeNSE,
		Date:     date,
		Prices:   prices,
	}
}
