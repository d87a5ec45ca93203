package wxpay

import (
	"context"
	"net/http"
)

// CloseOrder 关闭订单-直连商户
// 返回网关 HTTP 状态码，204 表示关闭成功
func (c *Client) CloseOrder(ctx context.Context, req *OutTradeNoRequest) (int, error) {
	return c.closeOrder(ctx, req)
}

// CloseOrderOnProvider 关闭订单-服务商
// 返回网关 HTTP 状态码，204 表示关闭成功
func (c *Client) CloseOrderOnProvider(ctx context.Context, req *ProviderOutTradeNoRequest) (int, error) {
	return c.closeOrder(ctx, req)
}

func (c *Client) closeOrder(ctx context.Context, req OutTradeNoQuery) (int, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	payload, err := toPayload(req)
	if err != nil {
		return 0, err
	}
	return c.close(ctx, req.accountMode(), payload)
}

// close 路径参数替换进 URL，其余字段作为请求体。
// 网关成功时不返回应答体，结果只看状态码。
func (c *Client) close(ctx context.Context, mode AccountMode, payload map[string]any) (int, error) {
	outTradeNo, rest, err := splitPayload(payload, TokenOutTradeNo)
	if err != nil {
		return 0, err
	}

	apiURL, err := c.endpointURL(OperationCloseOrder, mode, map[string]string{TokenOutTradeNo: outTradeNo})
	if err != nil {
		return 0, err
	}
	c.trace(OperationCloseOrder, mode, apiURL)

	resp, err := c.transport.Post(ctx, apiURL, rest)
	if err != nil {
		if ge, ok := AsGatewayError(err); ok {
			return ge.StatusCode, err
		}
		return 0, err
	}
	if resp == nil {
		return 0, NewError(ErrCodeInvalidResponse, "empty response")
	}
	return resp.StatusCode, nil
}

// IsClosed 关单状态码是否表示成功
func IsClosed(status int) bool {
	return status == http.StatusNoContent
}
