package wxpay

import (
	"context"

	"go.uber.org/zap"
)

// OrderRequest 下单请求：*BusinessOrderRequest 或 *ProviderOrderRequest
type OrderRequest interface {
	accountMode() AccountMode
	isOrderRequest()
}

// Order 下单-直连商户
func (c *Client) Order(ctx context.Context, req *BusinessOrderRequest) (*PrepayResult, error) {
	return c.PlaceOrder(ctx, req)
}

// OrderOnProvider 下单-服务商
func (c *Client) OrderOnProvider(ctx context.Context, req *ProviderOrderRequest) (*PrepayResult, error) {
	return c.PlaceOrder(ctx, req)
}

// PlaceOrder 下单，账户模式由请求类型决定
func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (*PrepayResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return c.order(ctx, req.accountMode(), req)
}

func (c *Client) order(ctx context.Context, mode AccountMode, body any) (*PrepayResult, error) {
	apiURL, err := c.endpointURL(OperationOrder, mode, nil)
	if err != nil {
		return nil, err
	}
	c.trace(OperationOrder, mode, apiURL)

	resp, err := c.transport.Post(ctx, apiURL, body)
	if err != nil {
		return nil, err
	}
	return parseJSONResponse[PrepayResult](resp)
}

func (c *Client) trace(op Operation, mode AccountMode, apiURL string) {
	c.logger.Debug("wxpay dispatch",
		zap.String("operation", string(op)),
		zap.Stringer("mode", mode),
		zap.String("url", apiURL),
	)
}
