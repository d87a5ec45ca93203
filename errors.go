package wxpay

import (
	"errors"
	"fmt"
)

// 错误码常量
const (
	ErrCodeInvalidConfig    = 2001 // 配置错误
	ErrCodeSignFailed       = 2002 // 签名失败
	ErrCodeUnknownOperation = 2003 // 未注册的接口
	ErrCodeMissingToken     = 2004 // URL 占位符缺少取值
	ErrCodeTransport        = 2005 // 传输层错误（网络、非 2xx 状态）
	ErrCodeInvalidResponse  = 2006 // 响应格式错误
	ErrCodeInvalidParam     = 2007 // 参数错误
)

// WxPayError SDK 错误
type WxPayError struct {
	Code    int    // 错误码
	Message string // 错误信息
	Err     error  // 原始错误
}

// Error 实现 error 接口
func (e *WxPayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wxpay error [%d]: %s, caused by: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("wxpay error [%d]: %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *WxPayError) Unwrap() error {
	return e.Err
}

// NewError 创建新的 SDK 错误
func NewError(code int, message string) *WxPayError {
	return &WxPayError{
		Code:    code,
		Message: message,
	}
}

// WrapError 包装错误
func WrapError(code int, message string, err error) *WxPayError {
	return &WxPayError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrorCode 返回 err 链上第一个 WxPayError 的错误码，没有则返回 0
func ErrorCode(err error) int {
	var e *WxPayError
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// GatewayError 微信支付网关返回的错误应答（HTTP 状态码非 2xx）
type GatewayError struct {
	StatusCode int          `json:"-"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Detail     *ErrorDetail `json:"detail,omitempty"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Field    string `json:"field,omitempty"`
	Value    any    `json:"value,omitempty"`
	Issue    string `json:"issue,omitempty"`
	Location string `json:"location,omitempty"`
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("gateway responded HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway responded HTTP %d: %s - %s", e.StatusCode, e.Code, e.Message)
}

// AsGatewayError 从错误链中取出网关错误应答
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// 预定义错误
var (
	ErrMissingMchID      = NewError(ErrCodeInvalidConfig, "invalid MchID: must not be empty")
	ErrMissingSerialNo   = NewError(ErrCodeInvalidConfig, "invalid SerialNo: must not be empty")
	ErrMissingPrivateKey = NewError(ErrCodeInvalidConfig, "invalid PrivateKey: must not be nil")
	ErrInvalidPrivateKey = NewError(ErrCodeInvalidConfig, "invalid PrivateKey: not an RSA key in PEM format")
	ErrInvalidAPIURL     = NewError(ErrCodeInvalidConfig, "invalid APIBaseURL: must be an absolute URL")

	ErrUnknownOperation         = NewError(ErrCodeUnknownOperation, "unknown operation")
	ErrMissingSubstitutionToken = NewError(ErrCodeMissingToken, "missing substitution token")
	ErrInvalidAccountMode       = NewError(ErrCodeInvalidParam, "invalid account mode")
	ErrAmbiguousAccountMode     = NewError(ErrCodeInvalidParam, "cannot infer account mode from payload")
	ErrNilRequest               = NewError(ErrCodeInvalidParam, "request must not be nil")
)
