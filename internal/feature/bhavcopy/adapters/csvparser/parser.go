// Package csvparser converts bhavcopy CSV text into price records.
package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"nse_sync/internal/feature/bhavcopy/domain"
	"nse_sync/internal/feature/bhavcopy/domain/entity"
	"nse_sync/internal/feature/bhavcopy/usecase"
)

// bhavcopy の列名
const (
	colSymbol = "SYMBOL"
	colOpen   = "OPEN"
	colHigh   = "HIGH"
	colLow    = "LOW"
	colClose  = "CLOSE"
	colVolume = "TOTTRDQTY"
)

var requiredColumns = []string{colSymbol, colOpen, colHigh, colLow, colClose, colVolume}

// Parser parses bhavcopy CSV text with a header row.
type Parser struct{}

// Parser が RowParser を実装していることをコンパイル時に検証します。
var _ usecase.RowParser = Parser{}

// NewParser returns a Parser.
func NewParser() Parser {
	return Parser{}
}

// Parse はヘッダー付き CSV を PriceRecord のスライスに変換します。
// 1行でも変換に失敗した場合は domain.ErrParse を返し、部分的な結果は返しません。
// ヘッダーのみの入力は空のスライスになります。
func (Parser) Parse(text string) ([]entity.PriceRecord, error) {
	r := csv.NewReader(strings.NewReader(text))
	// NSE files end each line with a trailing comma; row width is checked per column instead.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrParse, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	records := make([]entity.PriceRecord, 0)
	for row := 1; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row %d: %w", domain.ErrParse, row, err)
		}

		rec, err := parseRow(fields, index)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", domain.ErrParse, row, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndex maps each required column name to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %s", domain.ErrParse, col)
		}
	}
	return index, nil
}

func parseRow(fields []string, index map[string]int) (entity.PriceRecord, error) {
	get := func(col string) (string, error) {
		i := index[col]
		if i >= len(fields) {
			return "", fmt.Errorf("missing column %s", col)
		}
		return strings.TrimSpace(fields[i]), nil
	}

	symbol, err := get(colSymbol)
	if err != nil {
		return entity.PriceRecord{}, err
	}

	// 始値・高値・安値・終値をパース
	prices := make([]decimal.Decimal, 4)
	for i, col := range []string{colOpen, colHigh, colLow, colClose} {
		v, err := get(col)
		if err != nil {
			return entity.PriceRecord{}, err
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entity.PriceRecord{}, fmt.Errorf("parse %s %q: %w", strings.ToLower(col), v, err)
		}
		// 受信側が数値として表現できない桁数は桁あふれとして扱う
		if _, err := strconv.ParseFloat(v, 64); errors.Is(err, strconv.ErrRange) {
			return entity.PriceRecord{}, fmt.Errorf("parse %s %q: %w", strings.ToLower(col), v, err)
		}
		prices[i] = d
	}

	// 出来高をパース
	v, err := get(colVolume)
	if err != nil {
		return entity.PriceRecord{}, err
	}
	vol, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return entity.PriceRecord{}, fmt.Errorf("parse volume %q: %w", v, err)
	}
	if vol < 0 {
		return entity.PriceRecord{}, fmt.Errorf("parse volume %q: negative quantity", v)
	}

	return entity.PriceRecord{
		Symbol: symbol,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: vol,
	}, nil
}
