// Package client はIdentity APIのHTTPクライアントを提供する。
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/pkg/httputil"
)

// Client はIdentity APIクライアントの実装
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
}

// NewClient は新しいIdentity APIクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(config.RequestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
					"from", from.String(),
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
	}
}

// Generate は識別子を1つ生成する。
func (c *Client) Generate(ctx context.Context, spoofType string, ref *Reference) (*GenerateResponse, error) {
	var resp GenerateResponse
	if err := c.do(ctx, http.MethodGet, pathGenerate+url.PathEscape(spoofType), ref.query(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Bundle は相関グループ一式を生成する。
func (c *Client) Bundle(ctx context.Context, group string, ref *Reference) (*BundleResponse, error) {
	var resp BundleResponse
	if err := c.do(ctx, http.MethodGet, pathBundles+url.PathEscape(group), ref.query(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateProfile はプロファイルを作成する。
func (c *Client) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*Profile, error) {
	var resp Profile
	if err := c.do(ctx, http.MethodPost, pathProfiles, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile はプロファイルを取得する。
func (c *Client) GetProfile(ctx context.Context, id string) (*Profile, error) {
	var resp Profile
	if err := c.do(ctx, http.MethodGet, profilePath(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProfiles はプロファイルID一覧を取得する。
func (c *Client) ListProfiles(ctx context.Context) ([]string, error) {
	var resp profileListResponse
	if err := c.do(ctx, http.MethodGet, pathProfiles, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.IDs, nil
}

// DeleteProfile はプロファイルを削除する。
func (c *Client) DeleteProfile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, profilePath(id), nil, nil, nil)
}

// RegenerateField は同じグループの他の値を保ったまま1つの識別子を再生成する。
func (c *Client) RegenerateField(ctx context.Context, id, spoofType string) (*Profile, error) {
	var resp Profile
	path := profilePath(id) + "/regenerate/" + url.PathEscape(spoofType)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegenerateGroup は相関グループ全体を再生成する。
// refを指定した場合は参照オブジェクトを変更してから再生成する。
func (c *Client) RegenerateGroup(ctx context.Context, id, group string, ref *Reference) (*Profile, error) {
	var body any
	if !ref.IsEmpty() {
		body = ref
	}
	var resp Profile
	path := profilePath(id) + "/groups/" + url.PathEscape(group) + "/regenerate"
	if err := c.do(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetEnabled は識別子の有効・無効を切り替える。
func (c *Client) SetEnabled(ctx context.Context, id, spoofType string, enabled bool) (*Profile, error) {
	var resp Profile
	path := profilePath(id) + "/identifiers/" + url.PathEscape(spoofType) + "/enabled"
	if err := c.do(ctx, http.MethodPut, path, nil, &enabledRequest{Enabled: enabled}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Values は有効な識別子の値を取得する。
func (c *Client) Values(ctx context.Context, id string) (map[string]string, error) {
	var resp valuesResponse
	if err := c.do(ctx, http.MethodGet, profilePath(id)+"/values", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func profilePath(id string) string {
	return pathProfiles + "/" + url.PathEscape(id)
}

// do はCircuit Breaker越しにリクエストを送信し、成功レスポンスをoutにデコードする。
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	traceID := TraceIDFrom(ctx)
	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		req := c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderTraceID, traceID).
			SetHeader(HeaderAccept, ContentTypeJSON)
		if query != nil {
			req.SetQueryParamsFromValues(query)
		}
		if body != nil {
			req.SetHeader(HeaderContentType, ContentTypeJSON).SetBody(body)
		}

		resp, err := req.Execute(method, c.baseURL+path)
		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		// CB失敗判定対象: 5xx（501除く）
		if statusCode >= 500 && statusCode != http.StatusNotImplemented {
			apiErr := parseAPIError(statusCode, resp.Body())
			slog.Error("identity api error",
				"event_id", "IDENTITY_API_ERR",
				"trace_id", traceID,
				"error", apiErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			return nil, apiErr
		}

		// CB失敗判定対象外のエラー: 4xx, 501
		if statusCode < 200 || statusCode >= 300 {
			apiErr := parseAPIError(statusCode, resp.Body())
			slog.Warn("identity api error",
				"event_id", "IDENTITY_API_ERR",
				"trace_id", traceID,
				"error", apiErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			return apiErr, nil
		}

		slog.Debug("identity api success",
			"trace_id", traceID,
			"method", method,
			"path", path,
			"latency_ms", latencyMs,
		)
		return resp.Body(), nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ErrCircuitOpen
		}
		return err
	}

	if apiErr, ok := result.(*APIError); ok {
		return apiErr
	}

	respBody, ok := result.([]byte)
	if !ok {
		return ErrInvalidResponse
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return nil
}

// parseAPIError はHTTPエラーレスポンスをAPIErrorに変換する。
func parseAPIError(statusCode int, body []byte) *APIError {
	var details httputil.ProblemDetail
	if err := json.Unmarshal(body, &details); err == nil && details.Title != "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    details.Title,
			Details:    &details,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}

// traceIDKey はコンテキストからTrace IDを取得するためのキー型
type traceIDKey struct{}

// WithTraceID はコンテキストにTrace IDを設定する。
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFrom はコンテキストのTrace IDを返す。未設定の場合は新しいUUIDを返す。
func TraceIDFrom(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok && traceID != "" {
		return traceID
	}
	return uuid.NewString()
}
