package wxpay

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountFromYuan(t *testing.T) {
	tests := []struct {
		yuan string
		want int64
	}{
		{"0.01", 1},
		{"1", 100},
		{"12.34", 1234},
		{"12.345", 1235},
		{"0.004", 0},
	}

	for _, tt := range tests {
		t.Run(tt.yuan, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountFromYuan(decimal.RequireFromString(tt.yuan)))
		})
	}
}

func TestYuan(t *testing.T) {
	assert.True(t, Yuan(1234).Equal(decimal.RequireFromString("12.34")))
	assert.Equal(t, "1.00", Yuan(100).StringFixed(2))
}

func TestNewOrderAmount(t *testing.T) {
	amount := NewOrderAmount(decimal.RequireFromString("9.9"))
	assert.Equal(t, OrderAmount{Total: 990, Currency: CurrencyCNY}, amount)
}

func TestFormatExpireTime(t *testing.T) {
	ts := time.Date(2018, 6, 8, 10, 34, 56, 0, time.FixedZone("CST", 8*3600))
	got := FormatExpireTime(ts)
	assert.Equal(t, "2018-06-08T10:34:56+08:00", got)
	assert.True(t, isRFC3339(got))
	assert.False(t, isRFC3339("2018-06-08 10:34:56"))
}
