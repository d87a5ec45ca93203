package wxpay

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout 默认超时时间（秒）
	DefaultTimeout = 30

	// SignatureScheme 请求签名方案
	SignatureScheme = "WECHATPAY2-SHA256-RSA2048"
)

// Config 微信支付 SDK 配置
type Config struct {
	MchID      string          // 发起请求的商户号（服务商模式下为服务商商户号）
	SerialNo   string          // 商户 API 证书序列号
	PrivateKey *rsa.PrivateKey // 商户 API 私钥
	APIBaseURL string          // API 基础URL（默认: https://api.mch.weixin.qq.com）
	Timeout    int             // 请求超时时间（秒，默认: 30）
	Debug      bool            // 是否开启调试日志
	Logger     *zap.Logger     // 日志器（可选）
}

// Validate 验证配置是否有效
func (c *Config) Validate() error {
	if c.MchID == "" {
		return ErrMissingMchID
	}
	if c.SerialNo == "" {
		return ErrMissingSerialNo
	}
	if c.PrivateKey == nil {
		return ErrMissingPrivateKey
	}
	if c.APIBaseURL != "" {
		u, err := url.Parse(c.APIBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidAPIURL
		}
	}
	return nil
}

// GetTimeout 获取超时时间
func (c *Config) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return time.Duration(DefaultTimeout) * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// GetAPIBaseURL 获取 API 基础 URL（去除尾部斜杠）
func (c *Config) GetAPIBaseURL() string {
	if c.APIBaseURL == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimRight(c.APIBaseURL, "/")
}

// GetLogger 获取日志器，未设置时调试模式用开发日志器，否则静默
func (c *Config) GetLogger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Debug {
		if l, err := zap.NewDevelopment(); err == nil {
			return l
		}
	}
	return zap.NewNop()
}

// ParsePrivateKey 解析 PEM 格式的商户私钥，支持 PKCS#8 与 PKCS#1
func ParsePrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, ErrInvalidPrivateKey
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		rsaKey, err1 := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err1 != nil {
			return nil, WrapError(ErrCodeInvalidConfig, ErrInvalidPrivateKey.Message, fmt.Errorf("pkcs8: %v; pkcs1: %w", err, err1))
		}
		return rsaKey, nil
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrInvalidPrivateKey
	}
	return rsaKey, nil
}
