package wxpay

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testMchID    = "1900000001"
	testSerialNo = "5157F09EFDC096DE15EBE81A47057A72"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

// testPrivateKey 所有用例共用一把 2048 位密钥
func testPrivateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testKey = key
	})
	return testKey
}

func testPKCS8PEM(t *testing.T) []byte {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(testPrivateKey(t))
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		MchID:      testMchID,
		SerialNo:   testSerialNo,
		PrivateKey: testPrivateKey(t),
	}
}

func newTestClient(t *testing.T, transport Transport) *Client {
	t.Helper()
	client, err := NewClientWithTransport(testConfig(t), transport)
	require.NoError(t, err)
	return client
}

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Post(ctx context.Context, rawURL string, body any) (*Response, error) {
	args := m.Called(ctx, rawURL, body)
	resp, _ := args.Get(0).(*Response)
	return resp, args.Error(1)
}

func (m *mockTransport) Get(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	args := m.Called(ctx, rawURL, query)
	resp, _ := args.Get(0).(*Response)
	return resp, args.Error(1)
}

// funcTransport 用函数实现 Transport，适合需要按请求动态应答的用例
type funcTransport struct {
	post func(ctx context.Context, rawURL string, body any) (*Response, error)
	get  func(ctx context.Context, rawURL string, query url.Values) (*Response, error)
}

func (f *funcTransport) Post(ctx context.Context, rawURL string, body any) (*Response, error) {
	return f.post(ctx, rawURL, body)
}

func (f *funcTransport) Get(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	return f.get(ctx, rawURL, query)
}

func jsonResponse(status int, body string) *Response {
	return &Response{StatusCode: status, Data: []byte(body)}
}
