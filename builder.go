package wxpay

import (
	"crypto/rsa"
	"time"

	"go.uber.org/zap"
)

// ClientBuilder 客户端构建器，支持链式调用
type ClientBuilder struct {
	config    *Config
	transport Transport
	breaker   *BreakerConfig
	err       error
}

// New 创建一个新的客户端构建器（链式 API）
// 示例:
//
//	client, err := wxpay.New("1900000001", "5157F09EFDC096DE15EBE81A47057A72").
//	    WithPrivateKeyFile("apiclient_key.pem").
//	    WithTimeout(10).
//	    WithDebug(true).
//	    Build()
func New(mchID, serialNo string) *ClientBuilder {
	return &ClientBuilder{
		config: &Config{
			MchID:      mchID,
			SerialNo:   serialNo,
			APIBaseURL: DefaultAPIBaseURL,
			Timeout:    DefaultTimeout,
		},
	}
}

// WithPrivateKey 设置商户私钥
func (b *ClientBuilder) WithPrivateKey(key *rsa.PrivateKey) *ClientBuilder {
	b.config.PrivateKey = key
	return b
}

// WithPrivateKeyPEM 从 PEM 内容设置商户私钥
func (b *ClientBuilder) WithPrivateKeyPEM(pemData []byte) *ClientBuilder {
	if b.err != nil {
		return b
	}
	key, err := ParsePrivateKey(pemData)
	if err != nil {
		b.err = err
		return b
	}
	b.config.PrivateKey = key
	return b
}

// WithPrivateKeyFile 从文件读取商户私钥（apiclient_key.pem）
func (b *ClientBuilder) WithPrivateKeyFile(path string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	data, err := readFile(path)
	if err != nil {
		b.err = err
		return b
	}
	return b.WithPrivateKeyPEM(data)
}

// WithAPIBaseURL 设置 API 基础 URL
func (b *ClientBuilder) WithAPIBaseURL(baseURL string) *ClientBuilder {
	if baseURL != "" {
		b.config.APIBaseURL = baseURL
	}
	return b
}

// WithTimeout 设置超时时间（秒）
func (b *ClientBuilder) WithTimeout(seconds int) *ClientBuilder {
	b.config.Timeout = seconds
	return b
}

// WithHTTPTimeout 设置 HTTP 超时时间（time.Duration）
func (b *ClientBuilder) WithHTTPTimeout(timeout time.Duration) *ClientBuilder {
	b.config.Timeout = int(timeout.Seconds())
	return b
}

// WithDebug 设置调试模式
func (b *ClientBuilder) WithDebug(debug bool) *ClientBuilder {
	b.config.Debug = debug
	return b
}

// WithLogger 设置日志器
func (b *ClientBuilder) WithLogger(logger *zap.Logger) *ClientBuilder {
	b.config.Logger = logger
	return b
}

// WithTransport 替换默认传输层
func (b *ClientBuilder) WithTransport(t Transport) *ClientBuilder {
	b.transport = t
	return b
}

// WithCircuitBreaker 为传输层加熔断
func (b *ClientBuilder) WithCircuitBreaker(cfg BreakerConfig) *ClientBuilder {
	b.breaker = &cfg
	return b
}

// Build 构建客户端
func (b *ClientBuilder) Build() (*Client, error) {
	if b.err != nil {
		return nil, b.err
	}

	client, err := NewClientWithTransport(b.config, b.transport)
	if err != nil {
		return nil, err
	}
	if b.breaker != nil {
		client.transport = NewBreakerTransport(client.transport, *b.breaker)
	}
	return client, nil
}

// MustBuild 构建客户端，出错则 panic
func (b *ClientBuilder) MustBuild() *Client {
	client, err := b.Build()
	if err != nil {
		panic(err)
	}
	return client
}
