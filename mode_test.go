package wxpay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountMode_String(t *testing.T) {
	assert.Equal(t, "business", AccountModeBusiness.String())
	assert.Equal(t, "provider", AccountModeProvider.String())
	assert.Equal(t, "AccountMode(7)", AccountMode(7).String())
	assert.False(t, AccountMode(0).Valid())
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		op      Operation
		want    AccountMode
		wantErr error
	}{
		{
			name:    "order with appid",
			payload: map[string]any{"appid": "wxd678efh567hg6787", "mchid": testMchID},
			op:      OperationOrder,
			want:    AccountModeBusiness,
		},
		{
			name:    "order with sp_appid and sp_mchid",
			payload: map[string]any{"sp_appid": "wx8888888888888888", "sp_mchid": "1230000109", "sub_mchid": "1900000109"},
			op:      OperationOrder,
			want:    AccountModeProvider,
		},
		{
			name:    "order with sp_appid only",
			payload: map[string]any{"sp_appid": "wx8888888888888888"},
			op:      OperationOrder,
			wantErr: ErrAmbiguousAccountMode,
		},
		{
			name:    "order with empty appid",
			payload: map[string]any{"appid": ""},
			op:      OperationOrder,
			wantErr: ErrAmbiguousAccountMode,
		},
		{
			name:    "query with mchid",
			payload: map[string]any{"out_trade_no": "1217752501201407033233368018", "mchid": testMchID},
			op:      OperationQueryByOutTradeNo,
			want:    AccountModeBusiness,
		},
		{
			name:    "query with sp_mchid",
			payload: map[string]any{"transaction_id": "4200000985202103031441826014", "sp_mchid": "1230000109", "sub_mchid": "1900000109"},
			op:      OperationQueryByTransactionID,
			want:    AccountModeProvider,
		},
		{
			name:    "close with sub_mchid only",
			payload: map[string]any{"out_trade_no": "1217752501201407033233368018", "sub_mchid": "1900000109"},
			op:      OperationCloseOrder,
			want:    AccountModeProvider,
		},
		{
			name:    "close without merchant id",
			payload: map[string]any{"out_trade_no": "1217752501201407033233368018"},
			op:      OperationCloseOrder,
			wantErr: ErrAmbiguousAccountMode,
		},
		{
			name:    "refund without sub_mchid",
			payload: map[string]any{"out_refund_no": "1217752501201407033233368018"},
			op:      OperationRefund,
			want:    AccountModeBusiness,
		},
		{
			name:    "refund with sub_mchid",
			payload: map[string]any{"sub_mchid": "1900000109"},
			op:      OperationRefund,
			want:    AccountModeProvider,
		},
		{
			name:    "unknown operation",
			payload: map[string]any{"mchid": testMchID},
			op:      "payNotify",
			wantErr: ErrUnknownOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectMode(tt.payload, tt.op)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectMode_AgreesWithTypedRequests(t *testing.T) {
	tests := []struct {
		req interface{ accountMode() AccountMode }
		op  Operation
	}{
		{&BusinessOrderRequest{AppID: "wxd678efh567hg6787", MchID: testMchID}, OperationOrder},
		{&ProviderOrderRequest{SpAppID: "wx8888888888888888", SpMchID: "1230000109", SubMchID: "1900000109"}, OperationOrder},
		{&QueryByTransactionIDRequest{TransactionID: "4200000985202103031441826014", MchID: testMchID}, OperationQueryByTransactionID},
		{&ProviderQueryByTransactionIDRequest{TransactionID: "4200000985202103031441826014", SpMchID: "1230000109", SubMchID: "1900000109"}, OperationQueryByTransactionID},
		{&OutTradeNoRequest{OutTradeNo: "1217752501201407033233368018", MchID: testMchID}, OperationCloseOrder},
		{&ProviderOutTradeNoRequest{OutTradeNo: "1217752501201407033233368018", SpMchID: "1230000109", SubMchID: "1900000109"}, OperationQueryByOutTradeNo},
		{&RefundRequest{RefundParams{OutRefundNo: "1217752501201407033233368018"}}, OperationRefund},
		{&ProviderRefundRequest{SubMchID: "1900000109", RefundParams: RefundParams{OutRefundNo: "1217752501201407033233368018"}}, OperationRefund},
	}

	for _, tt := range tests {
		payload, err := toPayload(tt.req)
		assert.NoError(t, err)

		got, err := DetectMode(payload, tt.op)
		assert.NoError(t, err)
		assert.Equal(t, tt.req.accountMode(), got, "%T", tt.req)
	}
}
