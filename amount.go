package wxpay

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AmountFromYuan 元转分，四舍五入到分
func AmountFromYuan(yuan decimal.Decimal) int64 {
	return yuan.Mul(hundred).Round(0).IntPart()
}

// Yuan 分转元
func Yuan(fen int64) decimal.Decimal {
	return decimal.New(fen, -2)
}

// NewOrderAmount 按元构造人民币订单金额
func NewOrderAmount(yuan decimal.Decimal) OrderAmount {
	return OrderAmount{
		Total:    AmountFromYuan(yuan),
		Currency: CurrencyCNY,
	}
}

// FormatExpireTime 按网关要求格式化订单失效时间（RFC 3339，秒级）
func FormatExpireTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func isRFC3339(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
