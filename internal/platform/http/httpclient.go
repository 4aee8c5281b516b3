package http

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTPS_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - ResponseHeaderTimeout: ヘッダー受信までの最大時間（応答しないサーバー対策）
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// NewRestyClient wraps NewHTTPClient in a resty client.
// Retries stay disabled; a failed request is reported to the caller as is.
func NewRestyClient(timeout time.Duration) *resty.Client {
	return resty.NewWithClient(NewHTTPClient(timeout)).
		SetRetryCount(0)
}
