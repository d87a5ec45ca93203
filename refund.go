package wxpay

import "context"

// RefundSubmission 退款请求：*RefundRequest 或 *ProviderRefundRequest
type RefundSubmission interface {
	accountMode() AccountMode
	isRefundRequest()
}

// Refund 退款-直连商户
func (c *Client) Refund(ctx context.Context, req *RefundRequest) (*RefundResult, error) {
	return c.refund(ctx, req)
}

// RefundOnProvider 退款-服务商
func (c *Client) RefundOnProvider(ctx context.Context, req *ProviderRefundRequest) (*RefundResult, error) {
	return c.refund(ctx, req)
}

// refund 两种模式共用同一地址
func (c *Client) refund(ctx context.Context, req RefundSubmission) (*RefundResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	mode := req.accountMode()
	apiURL, err := c.endpointURL(OperationRefund, mode, nil)
	if err != nil {
		return nil, err
	}
	c.trace(OperationRefund, mode, apiURL)

	resp, err := c.transport.Post(ctx, apiURL, req)
	if err != nil {
		return nil, err
	}
	return parseJSONResponse[RefundResult](resp)
}

// IsRefundSuccess 检查退款是否成功
func IsRefundSuccess(resp *RefundResult) bool {
	return resp != nil && resp.Status == RefundStatusSuccess
}
