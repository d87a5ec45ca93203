package wxpay

// OrderParams 下单公共参数
type OrderParams struct {
	Description   string      `json:"description" validate:"required,max=127"`            // 商品描述
	OutTradeNo    string      `json:"out_trade_no" validate:"required,tradeno"`           // 商户订单号，只能是数字、大小写字母_-*
	TimeExpire    string      `json:"time_expire,omitempty" validate:"omitempty,rfc3339"` // 订单失效时间（RFC 3339）
	Attach        string      `json:"attach,omitempty" validate:"max=128"`                // 附加数据，查询与通知中原样返回
	NotifyURL     string      `json:"notify_url" validate:"required,url"`                 // 支付结果通知地址
	GoodsTag      string      `json:"goods_tag,omitempty"`                                // 订单优惠标记
	SupportFapiao bool        `json:"support_fapiao,omitempty"`                           // 电子发票入口开放标识
	Amount        OrderAmount `json:"amount"`                                             // 订单金额
	Detail        *Detail     `json:"detail,omitempty"`                                   // 优惠功能
	SceneInfo     *SceneInfo  `json:"scene_info,omitempty"`                               // 支付场景描述
	SettleInfo    *SettleInfo `json:"settle_info,omitempty"`                              // 结算信息
}

// OrderAmount 订单金额（单位：分）
type OrderAmount struct {
	Total    int64  `json:"total"`
	Currency string `json:"currency,omitempty"` // 默认 CNY
}

// Detail 优惠功能
type Detail struct {
	CostPrice   int64         `json:"cost_price,omitempty"`   // 订单原价
	InvoiceID   string        `json:"invoice_id,omitempty"`   // 商品小票ID
	GoodsDetail []GoodsDetail `json:"goods_detail,omitempty"` // 单品列表
}

// GoodsDetail 单品
type GoodsDetail struct {
	MerchantGoodsID  string `json:"merchant_goods_id"`
	WechatpayGoodsID string `json:"wechatpay_goods_id,omitempty"`
	GoodsName        string `json:"goods_name,omitempty"`
	Quantity         int    `json:"quantity"`
	UnitPrice        int64  `json:"unit_price"` // 单位：分
}

// SceneInfo 支付场景
type SceneInfo struct {
	PayerClientIP string     `json:"payer_client_ip"`
	DeviceID      string     `json:"device_id,omitempty"`
	StoreInfo     *StoreInfo `json:"store_info,omitempty"`
}

// StoreInfo 商户门店信息
type StoreInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	AreaCode string `json:"area_code,omitempty"`
	Address  string `json:"address,omitempty"`
}

// SettleInfo 结算信息
type SettleInfo struct {
	ProfitSharing bool `json:"profit_sharing,omitempty"` // 是否指定分账
}

// BusinessPayer 直连商户支付者
type BusinessPayer struct {
	OpenID string `json:"openid" validate:"required"`
}

// ProviderPayer 服务商支付者，sp_openid 与 sub_openid 二选一
type ProviderPayer struct {
	SpOpenID  string `json:"sp_openid,omitempty" validate:"required_without=SubOpenID"`
	SubOpenID string `json:"sub_openid,omitempty" validate:"required_without=SpOpenID"`
}

// BusinessOrderRequest 直连商户下单
type BusinessOrderRequest struct {
	AppID string `json:"appid" validate:"required"`
	MchID string `json:"mchid" validate:"required"`
	OrderParams
	Payer BusinessPayer `json:"payer"`
}

// ProviderOrderRequest 服务商下单
type ProviderOrderRequest struct {
	SpAppID  string `json:"sp_appid" validate:"required"`
	SpMchID  string `json:"sp_mchid" validate:"required"`
	SubAppID string `json:"sub_appid,omitempty"`
	SubMchID string `json:"sub_mchid" validate:"required"`
	OrderParams
	Payer ProviderPayer `json:"payer"`
}

// PrepayResult 下单结果
type PrepayResult struct {
	PrepayID string `json:"prepay_id"`
}

// QueryByTransactionIDRequest 直连商户按微信支付订单号查询
type QueryByTransactionIDRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	MchID         string `json:"mchid" validate:"required"`
}

// ProviderQueryByTransactionIDRequest 服务商按微信支付订单号查询
type ProviderQueryByTransactionIDRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	SpMchID       string `json:"sp_mchid" validate:"required"`
	SubMchID      string `json:"sub_mchid" validate:"required"`
}

// OutTradeNoRequest 直连商户按商户订单号查询 / 关单
type OutTradeNoRequest struct {
	OutTradeNo string `json:"out_trade_no" validate:"required,tradeno"`
	MchID      string `json:"mchid" validate:"required"`
}

// ProviderOutTradeNoRequest 服务商按商户订单号查询 / 关单
type ProviderOutTradeNoRequest struct {
	OutTradeNo string `json:"out_trade_no" validate:"required,tradeno"`
	SpMchID    string `json:"sp_mchid" validate:"required"`
	SubMchID   string `json:"sub_mchid" validate:"required"`
}

// TradeType 交易类型
type TradeType string

const (
	TradeTypeJSAPI    TradeType = "JSAPI"    // 公众号支付
	TradeTypeNative   TradeType = "NATIVE"   // 扫码支付
	TradeTypeApp      TradeType = "APP"      // APP支付
	TradeTypeMicropay TradeType = "MICROPAY" // 付款码支付
	TradeTypeMWeb     TradeType = "MWEB"     // H5支付
	TradeTypeFacepay  TradeType = "FACEPAY"  // 刷脸支付
)

// TradeState 交易状态
type TradeState string

const (
	TradeStateSuccess    TradeState = "SUCCESS"    // 支付成功
	TradeStateRefund     TradeState = "REFUND"     // 转入退款
	TradeStateNotPay     TradeState = "NOTPAY"     // 未支付
	TradeStateClosed     TradeState = "CLOSED"     // 已关闭
	TradeStateRevoked    TradeState = "REVOKED"    // 已撤销（仅付款码支付）
	TradeStateUserPaying TradeState = "USERPAYING" // 用户支付中（仅付款码支付）
	TradeStatePayError   TradeState = "PAYERROR"   // 支付失败（仅付款码支付）
)

// IsPaid 是否已支付（含转入退款）
func (s TradeState) IsPaid() bool {
	return s == TradeStateSuccess || s == TradeStateRefund
}

// IsFinal 是否为终态，终态订单不会再变化
func (s TradeState) IsFinal() bool {
	switch s {
	case TradeStateSuccess, TradeStateRefund, TradeStateClosed, TradeStateRevoked, TradeStatePayError:
		return true
	}
	return false
}

// QueryPayer 查询结果中的支付者
type QueryPayer struct {
	OpenID    string `json:"openid,omitempty"`
	SpOpenID  string `json:"sp_openid,omitempty"`
	SubOpenID string `json:"sub_openid,omitempty"`
}

// QueryAmount 查询结果中的金额
type QueryAmount struct {
	Total         int64  `json:"total"`
	PayerTotal    int64  `json:"payer_total"`
	Currency      string `json:"currency"`
	PayerCurrency string `json:"payer_currency"`
}

// PromotionDetail 优惠详情
type PromotionDetail struct {
	CouponID            string               `json:"coupon_id"`
	Name                string               `json:"name,omitempty"`
	Scope               string               `json:"scope,omitempty"` // GLOBAL / SINGLE
	Type                string               `json:"type,omitempty"`  // CASH / NOCASH
	Amount              int64                `json:"amount"`
	StockID             string               `json:"stock_id,omitempty"`
	WechatpayContribute int64                `json:"wechatpay_contribute,omitempty"`
	MerchantContribute  int64                `json:"merchant_contribute,omitempty"`
	OtherContribute     int64                `json:"other_contribute,omitempty"`
	Currency            string               `json:"currency,omitempty"`
	GoodsDetail         []PromotionGoodsItem `json:"goods_detail,omitempty"`
}

// PromotionGoodsItem 优惠单品
type PromotionGoodsItem struct {
	GoodsID        string `json:"goods_id"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`
	DiscountAmount int64  `json:"discount_amount"`
	GoodsRemark    string `json:"goods_remark,omitempty"`
}

// QueryResultBase 查询结果公共字段
type QueryResultBase struct {
	OutTradeNo      string            `json:"out_trade_no"`
	TransactionID   string            `json:"transaction_id,omitempty"`
	TradeType       TradeType         `json:"trade_type,omitempty"`
	TradeState      TradeState        `json:"trade_state"`
	TradeStateDesc  string            `json:"trade_state_desc,omitempty"`
	BankType        string            `json:"bank_type,omitempty"`
	Attach          string            `json:"attach,omitempty"`
	SuccessTime     string            `json:"success_time,omitempty"`
	Payer           *QueryPayer       `json:"payer,omitempty"`
	Amount          *QueryAmount      `json:"amount,omitempty"`
	SceneInfo       *QuerySceneInfo   `json:"scene_info,omitempty"`
	PromotionDetail []PromotionDetail `json:"promotion_detail,omitempty"`
}

// QuerySceneInfo 查询结果中的场景信息
type QuerySceneInfo struct {
	DeviceID string `json:"device_id,omitempty"`
}

// OrderQueryResult 直连商户查询结果
type OrderQueryResult struct {
	AppID string `json:"appid"`
	MchID string `json:"mchid"`
	QueryResultBase
}

// ProviderOrderQueryResult 服务商查询结果
type ProviderOrderQueryResult struct {
	SpAppID  string `json:"sp_appid"`
	SpMchID  string `json:"sp_mchid"`
	SubAppID string `json:"sub_appid,omitempty"`
	SubMchID string `json:"sub_mchid"`
	QueryResultBase
}

// RefundAmount 退款金额（单位：分）
type RefundAmount struct {
	Refund   int64          `json:"refund"`
	Total    int64          `json:"total"`
	Currency string         `json:"currency"`
	From     []RefundSource `json:"from,omitempty"`
}

// RefundSource 退款出资账户
type RefundSource struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}

// RefundGoods 退款单品
type RefundGoods struct {
	MerchantGoodsID  string `json:"merchant_goods_id"`
	WechatpayGoodsID string `json:"wechatpay_goods_id,omitempty"`
	GoodsName        string `json:"goods_name,omitempty"`
	UnitPrice        int64  `json:"unit_price"`
	RefundAmount     int64  `json:"refund_amount"`
	RefundQuantity   int    `json:"refund_quantity"`
}

// RefundParams 退款公共参数，transaction_id 与 out_trade_no 二选一
type RefundParams struct {
	TransactionID string        `json:"transaction_id,omitempty" validate:"required_without=OutTradeNo"`
	OutTradeNo    string        `json:"out_trade_no,omitempty" validate:"required_without=TransactionID"`
	OutRefundNo   string        `json:"out_refund_no" validate:"required,tradeno"`
	Reason        string        `json:"reason,omitempty"`
	NotifyURL     string        `json:"notify_url,omitempty" validate:"omitempty,url"`
	FundsAccount  string        `json:"funds_account,omitempty"`
	Amount        RefundAmount  `json:"amount"`
	GoodsDetail   []RefundGoods `json:"goods_detail,omitempty"`
}

// RefundRequest 直连商户退款
type RefundRequest struct {
	RefundParams
}

// ProviderRefundRequest 服务商退款
type ProviderRefundRequest struct {
	SubMchID string `json:"sub_mchid" validate:"required"`
	RefundParams
}

// RefundResult 退款结果
type RefundResult struct {
	RefundID            string `json:"refund_id"`
	OutRefundNo         string `json:"out_refund_no"`
	TransactionID       string `json:"transaction_id"`
	OutTradeNo          string `json:"out_trade_no"`
	Channel             string `json:"channel"`
	UserReceivedAccount string `json:"user_received_account"`
	SuccessTime         string `json:"success_time,omitempty"`
	CreateTime          string `json:"create_time"`
	Status              string `json:"status"` // SUCCESS / CLOSED / PROCESSING / ABNORMAL
	FundsAccount        string `json:"funds_account,omitempty"`
	Amount              struct {
		Total            int64  `json:"total"`
		Refund           int64  `json:"refund"`
		PayerTotal       int64  `json:"payer_total"`
		PayerRefund      int64  `json:"payer_refund"`
		SettlementTotal  int64  `json:"settlement_total"`
		SettlementRefund int64  `json:"settlement_refund"`
		DiscountRefund   int64  `json:"discount_refund"`
		Currency         string `json:"currency"`
	} `json:"amount"`
	PromotionDetail []PromotionDetail `json:"promotion_detail,omitempty"`
}

// JSAPIPayParams 调起支付参数（wx.requestPayment / WeixinJSBridge）
type JSAPIPayParams struct {
	AppID     string `json:"appId"`
	TimeStamp string `json:"timeStamp"`
	NonceStr  string `json:"nonceStr"`
	Package   string `json:"package"`
	SignType  string `json:"signType"`
	PaySign   string `json:"paySign"`
}

// 退款状态常量
const (
	RefundStatusSuccess    = "SUCCESS"
	RefundStatusClosed     = "CLOSED"
	RefundStatusProcessing = "PROCESSING"
	RefundStatusAbnormal   = "ABNORMAL"
)

// 货币类型
const CurrencyCNY = "CNY"

func (*BusinessOrderRequest) accountMode() AccountMode { return AccountModeBusiness }
func (*ProviderOrderRequest) accountMode() AccountMode { return AccountModeProvider }
func (*QueryByTransactionIDRequest) accountMode() AccountMode { return AccountModeBusiness }
func (*ProviderQueryByTransactionIDRequest) accountMode() AccountMode { return AccountModeProvider }
func (*OutTradeNoRequest) accountMode() AccountMode { return AccountModeBusiness }
func (*ProviderOutTradeNoRequest) accountMode() AccountMode { return AccountModeProvider }
func (*RefundRequest) accountMode() AccountMode { return AccountModeBusiness }
func (*ProviderRefundRequest) accountMode() AccountMode { return AccountModeProvider }

func (*BusinessOrderRequest) isOrderRequest() {}
func (*ProviderOrderRequest) isOrderRequest() {}
func (*QueryByTransactionIDRequest) isTransactionIDQuery() {}
func (*ProviderQueryByTransactionIDRequest) isTransactionIDQuery() {}
func (*OutTradeNoRequest) isOutTradeNoRequest() {}
func (*ProviderOutTradeNoRequest) isOutTradeNoRequest() {}
func (*RefundRequest) isRefundRequest() {}
func (*ProviderRefundRequest) isRefundRequest() {}
