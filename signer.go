package wxpay

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Signer 商户 API 私钥签名器（SHA256-RSA2048）
type Signer struct {
	mchID    string
	serialNo string
	key      *rsa.PrivateKey

	now   func() time.Time
	nonce func() string
}

// NewSigner 创建签名器
func NewSigner(mchID, serialNo string, key *rsa.PrivateKey) *Signer {
	return &Signer{
		mchID:    mchID,
		serialNo: serialNo,
		key:      key,
		now:      time.Now,
		nonce:    newNonce,
	}
}

// Sign 对消息做 SHA256-RSA 签名并 Base64 编码
func (s *Signer) Sign(message string) (string, error) {
	hash := sha256.Sum256([]byte(message))
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, hash[:])
	if err != nil {
		return "", WrapError(ErrCodeSignFailed, "rsa sign failed", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify 使用商户自己的公钥校验签名，仅用于核对本签名器产生的签名。
// 网关应答与回调由平台证书签名，不能用它校验。
func (s *Signer) Verify(message, signature string) bool {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	hash := sha256.Sum256([]byte(message))
	return rsa.VerifyPKCS1v15(&s.key.PublicKey, crypto.SHA256, hash[:], sig) == nil
}

// Authorization 生成请求的 Authorization 头。
// 签名串：HTTP方法\nURL(含查询串)\n时间戳\n随机串\n请求体\n
func (s *Signer) Authorization(method, canonicalURL string, body []byte) (string, error) {
	timestamp := strconv.FormatInt(s.now().Unix(), 10)
	nonceStr := s.nonce()

	message := BuildMessage(method, canonicalURL, timestamp, nonceStr, string(body))
	signature, err := s.Sign(message)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`%s mchid="%s",nonce_str="%s",signature="%s",timestamp="%s",serial_no="%s"`,
		SignatureScheme, s.mchID, nonceStr, signature, timestamp, s.serialNo), nil
}

// BuildMessage 按行拼接签名串，每行以 \n 结尾
func BuildMessage(lines ...string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseAuthorization 解析 Authorization 头中的键值对
func ParseAuthorization(header string) (map[string]string, bool) {
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || scheme != SignatureScheme {
		return nil, false
	}

	fields := make(map[string]string)
	for _, part := range strings.Split(rest, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		fields[k] = strings.Trim(v, `"`)
	}
	return fields, true
}

// newNonce 32 位随机串
func newNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
