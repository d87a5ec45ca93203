package wxpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Response 传输层应答
type Response struct {
	StatusCode int
	Header     http.Header
	Data       []byte
}

// Transport 负责签名、TLS、序列化与网络请求。
// 非 2xx 应答由实现方转换为错误返回。
type Transport interface {
	Post(ctx context.Context, rawURL string, body any) (*Response, error)
	Get(ctx context.Context, rawURL string, query url.Values) (*Response, error)
}

// parseJSONResponse 解析 JSON 响应
func parseJSONResponse[T any](resp *Response) (*T, error) {
	var result T
	if resp == nil || len(resp.Data) == 0 {
		return nil, NewError(ErrCodeInvalidResponse, "empty response body")
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, WrapError(ErrCodeInvalidResponse, "parse JSON response failed", err)
	}
	return &result, nil
}
