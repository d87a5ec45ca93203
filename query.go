package wxpay

import "context"

// TransactionIDQuery 按微信支付订单号查询：*QueryByTransactionIDRequest 或 *ProviderQueryByTransactionIDRequest
type TransactionIDQuery interface {
	accountMode() AccountMode
	isTransactionIDQuery()
}

// OutTradeNoQuery 按商户订单号查询 / 关单：*OutTradeNoRequest 或 *ProviderOutTradeNoRequest
type OutTradeNoQuery interface {
	accountMode() AccountMode
	isOutTradeNoRequest()
}

// QueryByTransactionID 查询订单-通过微信支付订单号
func (c *Client) QueryByTransactionID(ctx context.Context, req *QueryByTransactionIDRequest) (*OrderQueryResult, error) {
	return queryOrder[OrderQueryResult](ctx, c, OperationQueryByTransactionID, TokenTransactionID, req)
}

// QueryByTransactionIDOnProvider 查询订单-服务商-通过微信支付订单号
func (c *Client) QueryByTransactionIDOnProvider(ctx context.Context, req *ProviderQueryByTransactionIDRequest) (*ProviderOrderQueryResult, error) {
	return queryOrder[ProviderOrderQueryResult](ctx, c, OperationQueryByTransactionID, TokenTransactionID, req)
}

// QueryByOutTradeNo 查询订单-通过商户订单号
func (c *Client) QueryByOutTradeNo(ctx context.Context, req *OutTradeNoRequest) (*OrderQueryResult, error) {
	return queryOrder[OrderQueryResult](ctx, c, OperationQueryByOutTradeNo, TokenOutTradeNo, req)
}

// QueryByOutTradeNoOnProvider 查询订单-服务商-通过商户订单号
func (c *Client) QueryByOutTradeNoOnProvider(ctx context.Context, req *ProviderOutTradeNoRequest) (*ProviderOrderQueryResult, error) {
	return queryOrder[ProviderOrderQueryResult](ctx, c, OperationQueryByOutTradeNo, TokenOutTradeNo, req)
}

func queryOrder[T any](ctx context.Context, c *Client, op Operation, token string, req interface{ accountMode() AccountMode }) (*T, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.query(ctx, op, token, req.accountMode(), payload)
	if err != nil {
		return nil, err
	}
	return parseJSONResponse[T](resp)
}

// query 路径参数替换进 URL，其余字段作为查询参数
func (c *Client) query(ctx context.Context, op Operation, token string, mode AccountMode, payload map[string]any) (*Response, error) {
	id, rest, err := splitPayload(payload, token)
	if err != nil {
		return nil, err
	}

	apiURL, err := c.endpointURL(op, mode, map[string]string{token: id})
	if err != nil {
		return nil, err
	}
	c.trace(op, mode, apiURL)

	return c.transport.Get(ctx, apiURL, toQuery(rest))
}
