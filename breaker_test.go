package wxpay

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerTransport_TripsOnTransportErrors(t *testing.T) {
	var calls atomic.Int32
	next := &funcTransport{
		get: func(context.Context, string, url.Values) (*Response, error) {
			calls.Add(1)
			return nil, WrapError(ErrCodeTransport, "HTTP request failed", errors.New("dial tcp: connection refused"))
		},
	}

	tr := NewBreakerTransport(next, BreakerConfig{FailureThreshold: 2, Timeout: time.Minute})
	ctx := context.Background()

	for j := 0; j < 2; j++ {
		_, err := tr.Get(ctx, "https://api.mch.weixin.qq.com/v3/pay/transactions/id/1", nil)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, tr.State())

	_, err := tr.Get(ctx, "https://api.mch.weixin.qq.com/v3/pay/transactions/id/1", nil)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, ErrCodeTransport, ErrorCode(err))
	assert.Equal(t, int32(2), calls.Load())
}

func TestBreakerTransport_IgnoresClientErrors(t *testing.T) {
	next := &funcTransport{
		post: func(context.Context, string, any) (*Response, error) {
			gwErr := &GatewayError{StatusCode: http.StatusBadRequest, Code: "PARAM_ERROR"}
			return &Response{StatusCode: http.StatusBadRequest}, WrapError(ErrCodeTransport, "gateway returned non-2xx status", gwErr)
		},
	}

	tr := NewBreakerTransport(next, BreakerConfig{FailureThreshold: 2})
	for j := 0; j < 5; j++ {
		resp, err := tr.Post(context.Background(), "https://api.mch.weixin.qq.com/v3/pay/transactions/jsapi", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
	assert.Equal(t, gobreaker.StateClosed, tr.State())
}

func TestBreakerTransport_ServerErrorsCount(t *testing.T) {
	next := &funcTransport{
		post: func(context.Context, string, any) (*Response, error) {
			gwErr := &GatewayError{StatusCode: http.StatusInternalServerError, Code: "SYSTEM_ERROR"}
			return &Response{StatusCode: http.StatusInternalServerError}, WrapError(ErrCodeTransport, "gateway returned non-2xx status", gwErr)
		},
	}

	tr := NewBreakerTransport(next, BreakerConfig{FailureThreshold: 3, Timeout: time.Minute})
	for j := 0; j < 3; j++ {
		_, _ = tr.Post(context.Background(), "https://api.mch.weixin.qq.com/v3/pay/transactions/jsapi", nil)
	}
	assert.Equal(t, gobreaker.StateOpen, tr.State())
}

func TestBuilder_WithCircuitBreaker(t *testing.T) {
	next := &funcTransport{
		get: func(context.Context, string, url.Values) (*Response, error) {
			return jsonResponse(http.StatusOK, `{"trade_state":"SUCCESS"}`), nil
		},
	}

	client, err := New(testMchID, testSerialNo).
		WithPrivateKey(testPrivateKey(t)).
		WithTransport(next).
		WithCircuitBreaker(BreakerConfig{Enabled: true}).
		Build()
	require.NoError(t, err)

	bt, ok := client.transport.(*BreakerTransport)
	require.True(t, ok)
	assert.Equal(t, gobreaker.StateClosed, bt.State())

	result, err := client.QueryByOutTradeNo(context.Background(), &OutTradeNoRequest{OutTradeNo: "1217752501201407033233368018", MchID: testMchID})
	require.NoError(t, err)
	assert.Equal(t, TradeStateSuccess, result.TradeState)
}
