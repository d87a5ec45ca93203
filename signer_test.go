package wxpay

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedSigner(t *testing.T) *Signer {
	s := NewSigner(testMchID, testSerialNo, testPrivateKey(t))
	s.now = func() time.Time { return time.Unix(1554208460, 0) }
	s.nonce = func() string { return "593BEC0C930BF1AFEB40B4A08C8FB242" }
	return s
}

func TestBuildMessage(t *testing.T) {
	assert.Equal(t, "GET\n/v3/certificates\n1554208460\n593BEC0C930BF1AFEB40B4A08C8FB242\n\n",
		BuildMessage("GET", "/v3/certificates", "1554208460", "593BEC0C930BF1AFEB40B4A08C8FB242", ""))
	assert.Equal(t, "", BuildMessage())
}

func TestSigner_SignVerify(t *testing.T) {
	s := newFixedSigner(t)

	sig, err := s.Sign("hello\n")
	require.NoError(t, err)
	assert.True(t, s.Verify("hello\n", sig))
	assert.False(t, s.Verify("hello", sig))
	assert.False(t, s.Verify("hello\n", "not-base64!"))
}

func TestSigner_Authorization(t *testing.T) {
	s := newFixedSigner(t)
	body := []byte(`{"mchid":"1900000001"}`)

	header, err := s.Authorization("POST", "/v3/pay/transactions/jsapi", body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(header, SignatureScheme+" "))

	fields, ok := ParseAuthorization(header)
	require.True(t, ok)
	assert.Equal(t, testMchID, fields["mchid"])
	assert.Equal(t, testSerialNo, fields["serial_no"])
	assert.Equal(t, "1554208460", fields["timestamp"])
	assert.Equal(t, "593BEC0C930BF1AFEB40B4A08C8FB242", fields["nonce_str"])

	message := BuildMessage("POST", "/v3/pay/transactions/jsapi", "1554208460", "593BEC0C930BF1AFEB40B4A08C8FB242", string(body))
	assert.True(t, s.Verify(message, fields["signature"]))
}

func TestParseAuthorization_WrongScheme(t *testing.T) {
	_, ok := ParseAuthorization(`Bearer abc`)
	assert.False(t, ok)

	_, ok = ParseAuthorization("")
	assert.False(t, ok)
}

func TestNewNonce(t *testing.T) {
	a, b := newNonce(), newNonce()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
