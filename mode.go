package wxpay

import "fmt"

// AccountMode 账户模式：直连商户或服务商
type AccountMode int

const (
	// AccountModeBusiness 直连商户（appid + mchid）
	AccountModeBusiness AccountMode = iota + 1
	// AccountModeProvider 服务商（sp_appid + sp_mchid，可选 sub_mchid）
	AccountModeProvider
)

func (m AccountMode) String() string {
	switch m {
	case AccountModeBusiness:
		return "business"
	case AccountModeProvider:
		return "provider"
	default:
		return fmt.Sprintf("AccountMode(%d)", int(m))
	}
}

// Valid 是否为已定义的模式
func (m AccountMode) Valid() bool {
	return m == AccountModeBusiness || m == AccountModeProvider
}

// DetectMode 根据未类型化载荷中出现的标识字段推断账户模式。
// 下单看 appid / sp_appid + sp_mchid；退款请求体不带直连商户号，只看 sub_mchid；
// 其余接口看 mchid / sp_mchid / sub_mchid。
// 类型化接口不走这里，模式由请求类型决定。
func DetectMode(payload map[string]any, op Operation) (AccountMode, error) {
	if _, ok := endpoints[op]; !ok {
		return 0, WrapError(ErrCodeUnknownOperation, fmt.Sprintf("operation %q is not registered", op), ErrUnknownOperation)
	}

	if op == OperationOrder {
		if present(payload, "appid") {
			return AccountModeBusiness, nil
		}
		if present(payload, "sp_appid") && present(payload, "sp_mchid") {
			return AccountModeProvider, nil
		}
		return 0, ErrAmbiguousAccountMode
	}

	if op == OperationRefund {
		if present(payload, "sub_mchid") {
			return AccountModeProvider, nil
		}
		return AccountModeBusiness, nil
	}

	if present(payload, "mchid") {
		return AccountModeBusiness, nil
	}
	if present(payload, "sp_mchid") || present(payload, "sub_mchid") {
		return AccountModeProvider, nil
	}
	return 0, ErrAmbiguousAccountMode
}

func present(payload map[string]any, key string) bool {
	v, ok := payload[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return s != ""
	}
	return true
}
