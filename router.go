package wxpay

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultAPIBaseURL 微信支付 API v3 域名
const DefaultAPIBaseURL = "https://api.mch.weixin.qq.com"

// Operation 网关接口名
type Operation string

// 已注册的接口
const (
	OperationOrder                Operation = "order"
	OperationQueryByTransactionID Operation = "transactionIdQueryOrder"
	OperationQueryByOutTradeNo    Operation = "outTradeNoQueryOrder"
	OperationCloseOrder           Operation = "closeOrder"
	OperationRefund               Operation = "refund"
)

// 路径占位符
const (
	TokenTransactionID = "transaction_id"
	TokenOutTradeNo    = "out_trade_no"
)

// EndpointTemplate 同一接口的直连商户 / 服务商路径模板
type EndpointTemplate struct {
	Business string
	Provider string
}

// endpoints 只读，可并发读取
var endpoints = map[Operation]EndpointTemplate{
	OperationOrder: {
		Business: "/v3/pay/transactions/jsapi",
		Provider: "/v3/pay/partner/transactions/jsapi",
	},
	OperationQueryByTransactionID: {
		Business: "/v3/pay/transactions/id/{transaction_id}",
		Provider: "/v3/pay/partner/transactions/id/{transaction_id}",
	},
	OperationQueryByOutTradeNo: {
		Business: "/v3/pay/transactions/out-trade-no/{out_trade_no}",
		Provider: "/v3/pay/partner/transactions/out-trade-no/{out_trade_no}",
	},
	OperationCloseOrder: {
		Business: "/v3/pay/transactions/out-trade-no/{out_trade_no}/close",
		Provider: "/v3/pay/partner/transactions/out-trade-no/{out_trade_no}/close",
	},
	// 退款不区分模式
	OperationRefund: {
		Business: "/v3/refund/domestic/refunds",
		Provider: "/v3/refund/domestic/refunds",
	},
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Endpoint 返回接口的路径模板对
func Endpoint(op Operation) (EndpointTemplate, error) {
	tpl, ok := endpoints[op]
	if !ok {
		return EndpointTemplate{}, WrapError(ErrCodeUnknownOperation, fmt.Sprintf("operation %q is not registered", op), ErrUnknownOperation)
	}
	return tpl, nil
}

// Resolve 按账户模式选出路径模板
func Resolve(op Operation, mode AccountMode) (string, error) {
	tpl, err := Endpoint(op)
	if err != nil {
		return "", err
	}

	switch mode {
	case AccountModeBusiness:
		return tpl.Business, nil
	case AccountModeProvider:
		return tpl.Provider, nil
	default:
		return "", WrapError(ErrCodeInvalidParam, fmt.Sprintf("resolve %s: %s", op, mode), ErrInvalidAccountMode)
	}
}

// Substitute 把模板中的 {key} 替换为 tokens[key]，值按路径段转义。
// 没有对应取值的占位符原样保留，多余的 key 忽略。
func Substitute(template string, tokens map[string]string) string {
	result := template
	for k, v := range tokens {
		result = strings.ReplaceAll(result, "{"+k+"}", url.PathEscape(v))
	}
	return result
}

// Expand 与 Substitute 相同，但任何占位符缺值或取值为空都会返回 ErrMissingSubstitutionToken
func Expand(template string, tokens map[string]string) (string, error) {
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if tokens[name] == "" {
			return "", WrapError(ErrCodeMissingToken, fmt.Sprintf("placeholder {%s} in %s has no value", name, template), ErrMissingSubstitutionToken)
		}
	}
	return Substitute(template, tokens), nil
}
