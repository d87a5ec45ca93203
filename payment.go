package wxpay

import "strconv"

// JSAPIPayParams 生成小程序 / 公众号调起支付的参数。
// appID 为下单时的 appid；服务商下单传了 sub_appid 时须为 sub_appid。
func (c *Client) JSAPIPayParams(appID, prepayID string) (*JSAPIPayParams, error) {
	if appID == "" {
		return nil, NewError(ErrCodeInvalidParam, "appId is required")
	}
	if prepayID == "" {
		return nil, NewError(ErrCodeInvalidParam, "prepay_id is required")
	}

	timestamp := strconv.FormatInt(c.signer.now().Unix(), 10)
	nonceStr := c.signer.nonce()
	pkg := "prepay_id=" + prepayID

	paySign, err := c.signer.Sign(BuildMessage(appID, timestamp, nonceStr, pkg))
	if err != nil {
		return nil, err
	}

	return &JSAPIPayParams{
		AppID:     appID,
		TimeStamp: timestamp,
		NonceStr:  nonceStr,
		Package:   pkg,
		SignType:  "RSA",
		PaySign:   paySign,
	}, nil
}
