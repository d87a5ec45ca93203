package wxpay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// Client 微信支付 API v3 基础支付客户端，可并发使用
type Client struct {
	config    *Config
	transport Transport
	signer    *Signer
	logger    *zap.Logger
}

// NewClient 创建客户端，使用默认 HTTP 传输层
func NewClient(config *Config) (*Client, error) {
	return NewClientWithTransport(config, nil)
}

// NewClientWithTransport 创建客户端并注入传输层；transport 为 nil 时使用默认实现
func NewClientWithTransport(config *Config, transport Transport) (*Client, error) {
	if config == nil {
		return nil, NewError(ErrCodeInvalidConfig, "config must not be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	signer := NewSigner(config.MchID, config.SerialNo, config.PrivateKey)

	if transport == nil {
		httpClient := &http.Client{
			Timeout: config.GetTimeout(),
		}
		transport = NewHTTPTransport(httpClient, signer, logger)
	}

	return &Client{
		config:    config,
		transport: transport,
		signer:    signer,
		logger:    logger,
	}, nil
}

// GetConfig 获取配置（只读）
func (c *Client) GetConfig() Config {
	return *c.config
}

// endpointURL 解析模板、替换占位符并拼接域名
func (c *Client) endpointURL(op Operation, mode AccountMode, tokens map[string]string) (string, error) {
	tpl, err := Resolve(op, mode)
	if err != nil {
		return "", err
	}
	path, err := Expand(tpl, tokens)
	if err != nil {
		return "", err
	}
	return c.config.GetAPIBaseURL() + path, nil
}

// toPayload 把类型化请求转换为字段表，数字保持原样
func toPayload(req any) (map[string]any, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, WrapError(ErrCodeInvalidParam, "marshal request failed", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	payload := make(map[string]any)
	if err := dec.Decode(&payload); err != nil {
		return nil, WrapError(ErrCodeInvalidParam, "decode request failed", err)
	}
	return payload, nil
}

// splitPayload 取出路径参数，返回其余字段。原载荷不被修改。
func splitPayload(payload map[string]any, key string) (string, map[string]any, error) {
	id, _ := payload[key].(string)
	if id == "" {
		return "", nil, WrapError(ErrCodeMissingToken, fmt.Sprintf("payload field %q is required for the request path", key), ErrMissingSubstitutionToken)
	}

	rest := make(map[string]any, len(payload))
	for k, v := range payload {
		if k == key {
			continue
		}
		rest[k] = v
	}
	return id, rest, nil
}

// toQuery 将字段表转换为查询参数，嵌套结构按 JSON 编码
func toQuery(payload map[string]any) url.Values {
	values := url.Values{}
	for k, v := range payload {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			values.Set(k, val)
		case json.Number:
			values.Set(k, val.String())
		case bool:
			values.Set(k, strconv.FormatBool(val))
		case fmt.Stringer:
			values.Set(k, val.String())
		case int, int32, int64, uint, uint32, uint64, float32, float64:
			values.Set(k, fmt.Sprint(val))
		default:
			data, err := json.Marshal(val)
			if err != nil {
				values.Set(k, fmt.Sprint(val))
				continue
			}
			values.Set(k, string(data))
		}
	}
	return values
}
