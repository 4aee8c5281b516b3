package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nse_sync/internal/feature/bhavcopy/domain"
)

const bhavcopy = "SYMBOL,SERIES,OPEN,HIGH,LOW,CLOSE,LAST,PREVCLOSE,TOTTRDQTY,TOTTRDVAL,TIMESTAMP,\n" +
	"INFY,EQ,1500.0,1520.5,1490.0,1510.25,1511,1498.6,102345,154567890.5,05-DEC-2025,\n" +
	"TCS,EQ,3400,3450.8,3390.1,3440.9,3441,3401.2,56000,192000000,05-DEC-2025,\n"

var syncDay = time.Date(2025, 12, 5, 11, 0, 0, 0, time.UTC)

func zipOf(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

type ingestRecorder struct {
	mu     sync.Mutex
	bodies [][]byte
}

func (r *ingestRecorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.bodies = append(r.bodies, b)
		r.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}
}

func (r *ingestRecorder) calls() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bodies
}

// setupEnv は NSE と取り込みエンドポイントをテストサーバーに向けます。
func setupEnv(t *testing.T, nseHandler http.Handler, ingestStatus int) *ingestRecorder {
	t.Helper()

	nseServer := httptest.NewServer(nseHandler)
	t.Cleanup(nseServer.Close)

	rec := &ingestRecorder{}
	ingestServer := httptest.NewServer(rec.handler(ingestStatus))
	t.Cleanup(ingestServer.Close)

	t.Setenv("NSE_BASE_URL", nseServer.URL)
	t.Setenv("NSE_USER_AGENT", "")
	t.Setenv("NSE_TIMEOUT", "5s")
	t.Setenv("INGEST_ENDPOINT_URL", ingestServer.URL+"/api/functions/ingestDailyData")
	t.Setenv("INGEST_TIMEOUT", "5s")
	t.Setenv("SYNC_TIMEOUT", "10s")
	return rec
}

func TestRun_Success(t *testing.T) {
	archive := zipOf(t, "cm05DEC2025bhav.csv", bhavcopy)
	rec := setupEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/historical/EQUITIES/2025/DEC/cm05DEC2025bhav.csv.zip" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(archive)
	}), http.StatusOK)

	require.NoError(t, run(context.Background(), syncDay))

	calls := rec.calls()
	require.Len(t, calls, 1)

	var payload struct {
		Exchange string `json:"exchange"`
		Date     string `json:"date"`
		Prices   []struct {
			Symbol string  `json:"symbol"`
			Close  float64 `json:"close"`
			Volume int64   `json:"volume"`
		} `json:"prices"`
	}
	require.NoError(t, json.Unmarshal(calls[0], &payload))
	assert.Equal(t, "NSE", payload.Exchange)
	assert.Equal(t, "2025-12-05", payload.Date)
	require.Len(t, payload.Prices, 2)
	assert.Equal(t, "INFY", payload.Prices[0].Symbol)
	assert.Equal(t, 1510.25, payload.Prices[0].Close)
	assert.Equal(t, int64(102345), payload.Prices[0].Volume)
	assert.Equal(t, "TCS", payload.Prices[1].Symbol)
}

func TestRun_FetchFailureSendsNothing(t *testing.T) {
	rec := setupEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}), http.StatusOK)

	err := run(context.Background(), syncDay)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetch), "expected ErrFetch, got %v", err)
	assert.Equal(t, "fetch", domain.Stage(err))
	assert.Empty(t, rec.calls())
}

func TestRun_ParseFailureSendsNothing(t *testing.T) {
	archive := zipOf(t, "cm05DEC2025bhav.csv", "SYMBOL,OPEN,HIGH,LOW,CLOSE,TOTTRDQTY\nINFY,n/a,1,1,1,1\n")
	rec := setupEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}), http.StatusOK)

	err := run(context.Background(), syncDay)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Empty(t, rec.calls())
}

func TestRun_WrongEntryName(t *testing.T) {
	archive := zipOf(t, "cm04DEC2025bhav.csv", bhavcopy)
	rec := setupEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}), http.StatusOK)

	err := run(context.Background(), syncDay)
	assert.ErrorIs(t, err, domain.ErrExtract)
	assert.Empty(t, rec.calls())
}

func TestRun_IngestRejects(t *testing.T) {
	archive := zipOf(t, "cm05DEC2025bhav.csv", bhavcopy)
	rec := setupEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}), http.StatusInternalServerError)

	err := run(context.Background(), syncDay)
	assert.ErrorIs(t, err, domain.ErrDispatch)
	assert.Len(t, rec.calls(), 1)
}

func TestRun_InvalidConfig(t *testing.T) {
	setupEnv(t, http.NotFoundHandler(), http.StatusOK)
	t.Setenv("SYNC_TIMEOUT", "eventually")

	err := run(context.Background(), syncDay)
	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Equal(t, "config", domain.Stage(err))
}
