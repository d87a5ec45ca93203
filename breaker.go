package wxpay

import (
	"context"
	"net/url"

	"github.com/sony/gobreaker"
)

// BreakerTransport 在传输层外包一层熔断器，不做重试。
// 网关 4xx 属于调用方错误，不计入失败。
type BreakerTransport struct {
	next Transport
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTransport 创建带熔断的传输层
func NewBreakerTransport(next Transport, cfg BreakerConfig) *BreakerTransport {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	st := gobreaker.Settings{
		Name:        "wxpay",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if ge, ok := AsGatewayError(err); ok {
				return ge.StatusCode < 500
			}
			return false
		},
	}

	return &BreakerTransport{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(st),
	}
}

// State 当前熔断状态
func (t *BreakerTransport) State() gobreaker.State {
	return t.cb.State()
}

// Post 实现 Transport
func (t *BreakerTransport) Post(ctx context.Context, rawURL string, body any) (*Response, error) {
	return t.execute(func() (*Response, error) {
		return t.next.Post(ctx, rawURL, body)
	})
}

// Get 实现 Transport
func (t *BreakerTransport) Get(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	return t.execute(func() (*Response, error) {
		return t.next.Get(ctx, rawURL, query)
	})
}

func (t *BreakerTransport) execute(fn func() (*Response, error)) (*Response, error) {
	var resp *Response
	_, err := t.cb.Execute(func() (interface{}, error) {
		r, err := fn()
		resp = r
		return nil, err
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, WrapError(ErrCodeTransport, "circuit breaker rejected request", err)
	}
	return resp, err
}
