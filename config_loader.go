package wxpay

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileConfig 配置文件结构，支持 yaml/json/toml，环境变量前缀 WXPAY_（如 WXPAY_MCH_ID）
type FileConfig struct {
	MchID          string        `mapstructure:"mch_id"`
	SerialNo       string        `mapstructure:"serial_no"`
	PrivateKeyPath string        `mapstructure:"private_key_path"`
	PrivateKey     string        `mapstructure:"private_key"` // PEM 内容，优先于 private_key_path
	APIBaseURL     string        `mapstructure:"api_base_url"`
	Timeout        int           `mapstructure:"timeout"`
	Debug          bool          `mapstructure:"debug"`
	Breaker        BreakerConfig `mapstructure:"breaker"`
	Server         ServerConfig  `mapstructure:"server"`
}

// BreakerConfig 熔断配置
type BreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	MaxRequests      uint32        `mapstructure:"max_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold"`
}

// ServerConfig 示例 HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	Node int64  `mapstructure:"node"` // 订单号生成节点
}

// LoadConfig 读取配置文件；path 为空时只读取环境变量
func LoadConfig(path string) (*FileConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WXPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, WrapError(ErrCodeInvalidConfig, "read config file failed", err)
		}
	}

	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, WrapError(ErrCodeInvalidConfig, "unmarshal config failed", err)
	}
	return &fc, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mch_id", "")
	v.SetDefault("serial_no", "")
	v.SetDefault("private_key_path", "")
	v.SetDefault("private_key", "")
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("debug", false)
	v.SetDefault("breaker.enabled", false)
	v.SetDefault("breaker.max_requests", 1)
	v.SetDefault("breaker.interval", time.Minute)
	v.SetDefault("breaker.timeout", 30*time.Second)
	v.SetDefault("breaker.failure_threshold", 5)
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.node", 1)
}

// Builder 把文件配置转换为客户端构建器
func (fc *FileConfig) Builder() *ClientBuilder {
	b := New(fc.MchID, fc.SerialNo).
		WithAPIBaseURL(fc.APIBaseURL).
		WithTimeout(fc.Timeout).
		WithDebug(fc.Debug)

	switch {
	case fc.PrivateKey != "":
		b = b.WithPrivateKeyPEM([]byte(fc.PrivateKey))
	case fc.PrivateKeyPath != "":
		b = b.WithPrivateKeyFile(fc.PrivateKeyPath)
	}

	if fc.Breaker.Enabled {
		b = b.WithCircuitBreaker(fc.Breaker)
	}
	return b
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(ErrCodeInvalidConfig, "read private key file failed", err)
	}
	return data, nil
}
