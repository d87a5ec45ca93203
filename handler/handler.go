// Package handler 把基础支付接口暴露为 HTTP 接口（gin）
// 请求体为网关原始字段，直连商户 / 服务商模式按字段自动识别
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	wxpay "github.com/liuscraft/wxpay-sdk-go"
)

// Handlers 基础支付 HTTP 处理器集合
type Handlers struct {
	client    *wxpay.Client
	node      *snowflake.Node
	nodeID    int64
	notifyURL string
	logger    *zap.Logger
}

// Option 配置选项
type Option func(*Handlers)

// WithNotifyURL 设置默认支付结果通知地址，下单请求未携带 notify_url 时使用
func WithNotifyURL(url string) Option {
	return func(h *Handlers) {
		h.notifyURL = url
	}
}

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handlers) {
		h.logger = logger
	}
}

// WithNode 设置商户订单号生成节点（0-1023）
func WithNode(nodeID int64) Option {
	return func(h *Handlers) {
		h.nodeID = nodeID
	}
}

// NewHandlers 创建 HTTP 处理器集合
// 使用示例:
//
//	h, err := handler.NewHandlers(client, handler.WithNotifyURL("https://yourdomain.com/notify"))
//	r := gin.New()
//	h.Register(r.Group("/pay"))
func NewHandlers(client *wxpay.Client, opts ...Option) (*Handlers, error) {
	h := &Handlers{
		client: client,
		nodeID: 1,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	node, err := snowflake.NewNode(h.nodeID)
	if err != nil {
		return nil, err
	}
	h.node = node

	return h, nil
}

// Register 注册路由
func (h *Handlers) Register(r gin.IRouter) {
	r.POST("/orders", h.Order)
	r.GET("/orders/transaction-id/:transaction_id", h.QueryByTransactionID)
	r.GET("/orders/out-trade-no/:out_trade_no", h.QueryByOutTradeNo)
	r.POST("/orders/out-trade-no/:out_trade_no/close", h.CloseOrder)
	r.POST("/refunds", h.Refund)
}

// Order 下单
// 请求体为下单字段；out_trade_no 缺省时自动生成，notify_url 缺省时使用默认地址。
// 成功时同时返回调起支付参数。
func (h *Handlers) Order(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	mode, err := wxpay.DetectMode(payload, wxpay.OperationOrder)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if s, _ := payload["out_trade_no"].(string); s == "" {
		payload["out_trade_no"] = h.nextTradeNo()
	}
	if s, _ := payload["notify_url"].(string); s == "" && h.notifyURL != "" {
		payload["notify_url"] = h.notifyURL
	}

	var (
		result *wxpay.PrepayResult
		appID  string
	)
	switch mode {
	case wxpay.AccountModeBusiness:
		var req wxpay.BusinessOrderRequest
		if err := remarshal(payload, &req); err != nil {
			h.writeError(c, err)
			return
		}
		appID = req.AppID
		result, err = h.client.Order(c.Request.Context(), &req)
	case wxpay.AccountModeProvider:
		var req wxpay.ProviderOrderRequest
		if err := remarshal(payload, &req); err != nil {
			h.writeError(c, err)
			return
		}
		appID = req.SpAppID
		if req.SubAppID != "" {
			appID = req.SubAppID
		}
		result, err = h.client.OrderOnProvider(c.Request.Context(), &req)
	}
	if err != nil {
		h.logger.Warn("order failed", zap.Stringer("mode", mode), zap.Any("out_trade_no", payload["out_trade_no"]), zap.Error(err))
		h.writeError(c, err)
		return
	}

	data := gin.H{
		"out_trade_no": payload["out_trade_no"],
		"prepay_id":    result.PrepayID,
	}
	if params, err := h.client.JSAPIPayParams(appID, result.PrepayID); err == nil {
		data["pay_params"] = params
	} else {
		h.logger.Warn("build pay params failed", zap.Error(err))
	}

	h.logger.Info("order created", zap.Stringer("mode", mode), zap.Any("out_trade_no", payload["out_trade_no"]))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// QueryByTransactionID 按微信支付订单号查询
// 查询参数: mchid 或 sp_mchid + sub_mchid，其他参数不转发给网关
func (h *Handlers) QueryByTransactionID(c *gin.Context) {
	payload := queryPayload(c)
	payload["transaction_id"] = c.Param("transaction_id")

	mode, err := wxpay.DetectMode(payload, wxpay.OperationQueryByTransactionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var result any
	switch mode {
	case wxpay.AccountModeBusiness:
		result, err = h.client.QueryByTransactionID(c.Request.Context(), &wxpay.QueryByTransactionIDRequest{
			TransactionID: c.Param("transaction_id"),
			MchID:         c.Query("mchid"),
		})
	case wxpay.AccountModeProvider:
		result, err = h.client.QueryByTransactionIDOnProvider(c.Request.Context(), &wxpay.ProviderQueryByTransactionIDRequest{
			TransactionID: c.Param("transaction_id"),
			SpMchID:       c.Query("sp_mchid"),
			SubMchID:      c.Query("sub_mchid"),
		})
	}
	if err != nil {
		h.logger.Warn("query by transaction_id failed", zap.String("transaction_id", c.Param("transaction_id")), zap.Error(err))
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// QueryByOutTradeNo 按商户订单号查询
// 查询参数: mchid 或 sp_mchid + sub_mchid，其他参数不转发给网关
func (h *Handlers) QueryByOutTradeNo(c *gin.Context) {
	payload := queryPayload(c)
	payload["out_trade_no"] = c.Param("out_trade_no")

	mode, err := wxpay.DetectMode(payload, wxpay.OperationQueryByOutTradeNo)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var result any
	switch mode {
	case wxpay.AccountModeBusiness:
		result, err = h.client.QueryByOutTradeNo(c.Request.Context(), &wxpay.OutTradeNoRequest{
			OutTradeNo: c.Param("out_trade_no"),
			MchID:      c.Query("mchid"),
		})
	case wxpay.AccountModeProvider:
		result, err = h.client.QueryByOutTradeNoOnProvider(c.Request.Context(), &wxpay.ProviderOutTradeNoRequest{
			OutTradeNo: c.Param("out_trade_no"),
			SpMchID:    c.Query("sp_mchid"),
			SubMchID:   c.Query("sub_mchid"),
		})
	}
	if err != nil {
		h.logger.Warn("query by out_trade_no failed", zap.String("out_trade_no", c.Param("out_trade_no")), zap.Error(err))
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// CloseOrder 关闭订单
// 请求体: {"mchid": "..."} 或 {"sp_mchid": "...", "sub_mchid": "..."}
func (h *Handlers) CloseOrder(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}
	payload["out_trade_no"] = c.Param("out_trade_no")

	mode, err := wxpay.DetectMode(payload, wxpay.OperationCloseOrder)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var status int
	switch mode {
	case wxpay.AccountModeBusiness:
		var req wxpay.OutTradeNoRequest
		if err := remarshal(payload, &req); err != nil {
			h.writeError(c, err)
			return
		}
		status, err = h.client.CloseOrder(c.Request.Context(), &req)
	case wxpay.AccountModeProvider:
		var req wxpay.ProviderOutTradeNoRequest
		if err := remarshal(payload, &req); err != nil {
			h.writeError(c, err)
			return
		}
		status, err = h.client.CloseOrderOnProvider(c.Request.Context(), &req)
	}
	if err != nil {
		h.logger.Warn("close order failed", zap.String("out_trade_no", c.Param("out_trade_no")), zap.Int("status", status), zap.Error(err))
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": wxpay.IsClosed(status),
		"status":  status,
	})
}

// Refund 申请退款
func (h *Handlers) Refund(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	mode, err := wxpay.DetectMode(payload, wxpay.OperationRefund)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var result *wxpay.RefundResult
	switch mode {
	case wxpay.AccountModeBusiness:
		var req wxpay.RefundRequest
		if err := remarshal(payload, &req); err != nil {
			h.writeError(c, err)
			return
		}
		result, err = h.client.Refund(c.Request.Context(), &req)
	case wxpay.AccountModeProvider:
		var req wxpay.ProviderRefundRequest
		if err := remarshal(payload, &req); err != nil {
			h.writeError(c, err)
			return
		}
		result, err = h.client.RefundOnProvider(c.Request.Context(), &req)
	}
	if err != nil {
		h.logger.Warn("refund failed", zap.Any("out_refund_no", payload["out_refund_no"]), zap.Error(err))
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// nextTradeNo 生成商户订单号
func (h *Handlers) nextTradeNo() string {
	return "WX" + h.node.Generate().String()
}

// bindPayload 请求体须为 JSON 对象，null 与解析失败一样返回 400
func (h *Handlers) bindPayload(c *gin.Context) (map[string]any, bool) {
	payload := make(map[string]any)
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return nil, false
	}
	return payload, true
}

// identityKeys 查询接口只转发商户标识，其余查询参数忽略
var identityKeys = []string{"mchid", "sp_mchid", "sub_mchid"}

// queryPayload 取出查询参数中的商户标识
func queryPayload(c *gin.Context) map[string]any {
	payload := make(map[string]any, len(identityKeys))
	for _, k := range identityKeys {
		if v := c.Query(k); v != "" {
			payload[k] = v
		}
	}
	return payload
}

func remarshal(payload map[string]any, dst any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return wxpay.WrapError(wxpay.ErrCodeInvalidParam, "invalid request body", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return wxpay.WrapError(wxpay.ErrCodeInvalidParam, "invalid request body", err)
	}
	return nil
}

// writeError 参数错误返回 400，网关错误透传状态码与错误码，其余返回 502
func (h *Handlers) writeError(c *gin.Context, err error) {
	body := gin.H{
		"success": false,
		"message": err.Error(),
	}

	if ge, ok := wxpay.AsGatewayError(err); ok {
		body["code"] = ge.Code
		body["message"] = ge.Message
		c.JSON(ge.StatusCode, body)
		return
	}

	var we *wxpay.WxPayError
	if errors.As(err, &we) {
		body["code"] = we.Code
		switch we.Code {
		case wxpay.ErrCodeInvalidParam, wxpay.ErrCodeMissingToken:
			c.JSON(http.StatusBadRequest, body)
			return
		}
	}
	c.JSON(http.StatusBadGateway, body)
}
