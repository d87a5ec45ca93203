package wxpay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserAgent 请求头中的 User-Agent
const UserAgent = "wxpay-sdk-go/1.0"

// HTTPTransport 默认传输层：JSON 编解码 + API v3 签名
type HTTPTransport struct {
	httpClient *http.Client
	signer     *Signer
	logger     *zap.Logger
}

// NewHTTPTransport 创建默认传输层
func NewHTTPTransport(httpClient *http.Client, signer *Signer, logger *zap.Logger) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Duration(DefaultTimeout) * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPTransport{
		httpClient: httpClient,
		signer:     signer,
		logger:     logger,
	}
}

// Post 执行 POST 请求，body 为 nil 时发送空请求体
func (t *HTTPTransport) Post(ctx context.Context, rawURL string, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, WrapError(ErrCodeInvalidParam, "marshal request body failed", err)
		}
		payload = data
	}
	return t.do(ctx, http.MethodPost, rawURL, payload)
}

// Get 执行 GET 请求
func (t *HTTPTransport) Get(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return t.do(ctx, http.MethodGet, rawURL, nil)
}

func (t *HTTPTransport) do(ctx context.Context, method, rawURL string, body []byte) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, WrapError(ErrCodeInvalidParam, "invalid request URL", err)
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, WrapError(ErrCodeTransport, "create request failed", err)
	}

	auth, err := t.signer.Authorization(method, u.RequestURI(), body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", auth)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := t.logger.With(
		zap.String("method", method),
		zap.String("url", u.RequestURI()),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Warn("wxpay request failed", zap.Error(err))
		return nil, WrapError(ErrCodeTransport, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("wxpay read response failed", zap.Error(err))
		return nil, WrapError(ErrCodeTransport, "read response failed", err)
	}

	log.Debug("wxpay response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.ByteString("body", data),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := &GatewayError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(data, gwErr)
		log.Warn("wxpay gateway error",
			zap.Int("status", resp.StatusCode),
			zap.String("code", gwErr.Code),
			zap.String("message", gwErr.Message),
		)
		return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Data: data},
			WrapError(ErrCodeTransport, "gateway returned non-2xx status", gwErr)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Data:       data,
	}, nil
}
