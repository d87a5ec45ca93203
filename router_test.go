package wxpay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		op       Operation
		business string
		provider string
	}{
		{OperationOrder, "/v3/pay/transactions/jsapi", "/v3/pay/partner/transactions/jsapi"},
		{OperationQueryByTransactionID, "/v3/pay/transactions/id/{transaction_id}", "/v3/pay/partner/transactions/id/{transaction_id}"},
		{OperationQueryByOutTradeNo, "/v3/pay/transactions/out-trade-no/{out_trade_no}", "/v3/pay/partner/transactions/out-trade-no/{out_trade_no}"},
		{OperationCloseOrder, "/v3/pay/transactions/out-trade-no/{out_trade_no}/close", "/v3/pay/partner/transactions/out-trade-no/{out_trade_no}/close"},
		{OperationRefund, "/v3/refund/domestic/refunds", "/v3/refund/domestic/refunds"},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := Resolve(tt.op, AccountModeBusiness)
			require.NoError(t, err)
			assert.Equal(t, tt.business, got)

			got, err = Resolve(tt.op, AccountModeProvider)
			require.NoError(t, err)
			assert.Equal(t, tt.provider, got)
		})
	}
}

func TestResolve_EveryOperationHasBothModes(t *testing.T) {
	for op := range endpoints {
		for _, mode := range []AccountMode{AccountModeBusiness, AccountModeProvider} {
			path, err := Resolve(op, mode)
			require.NoError(t, err, "%s/%s", op, mode)
			assert.NotEmpty(t, path, "%s/%s", op, mode)
		}
	}
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve("payNotify", AccountModeBusiness)
	assert.True(t, errors.Is(err, ErrUnknownOperation))
	assert.Equal(t, ErrCodeUnknownOperation, ErrorCode(err))

	_, err = Resolve(OperationOrder, AccountMode(0))
	assert.True(t, errors.Is(err, ErrInvalidAccountMode))
	assert.Equal(t, ErrCodeInvalidParam, ErrorCode(err))

	_, err = Endpoint("")
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		tokens   map[string]string
		want     string
	}{
		{"single", "/x/{a}/y", map[string]string{"a": "1"}, "/x/1/y"},
		{"unresolved kept", "/x/{a}/y", map[string]string{}, "/x/{a}/y"},
		{"nil tokens", "/x/{a}/y", nil, "/x/{a}/y"},
		{"extra key ignored", "/x/{a}/y", map[string]string{"a": "1", "b": "2"}, "/x/1/y"},
		{"repeated", "/{a}/{a}", map[string]string{"a": "z"}, "/z/z"},
		{"no placeholder", "/v3/refund/domestic/refunds", map[string]string{"a": "1"}, "/v3/refund/domestic/refunds"},
		{"escaped", "/x/{a}", map[string]string{"a": "a b/c"}, "/x/a%20b%2Fc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, tt.tokens))
		})
	}
}

func TestExpand(t *testing.T) {
	got, err := Expand("/v3/pay/transactions/id/{transaction_id}", map[string]string{TokenTransactionID: "4200000985202103031441826014"})
	require.NoError(t, err)
	assert.Equal(t, "/v3/pay/transactions/id/4200000985202103031441826014", got)

	_, err = Expand("/x/{a}/y", map[string]string{})
	assert.True(t, errors.Is(err, ErrMissingSubstitutionToken))
	assert.Equal(t, ErrCodeMissingToken, ErrorCode(err))

	_, err = Expand("/x/{a}/y", map[string]string{"a": ""})
	assert.True(t, errors.Is(err, ErrMissingSubstitutionToken))

	got, err = Expand("/v3/refund/domestic/refunds", nil)
	require.NoError(t, err)
	assert.Equal(t, "/v3/refund/domestic/refunds", got)
}
