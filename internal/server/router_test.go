package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hedera-bridge/internal/handler"
	"hedera-bridge/internal/service"
	"hedera-bridge/internal/wallet"
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/mirror"
	"hedera-bridge/pkg/walletconnect"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoService struct {
	last *walletconnect.SessionRequest
}

func (s *echoService) Approve(ctx context.Context, req *walletconnect.SessionRequest) *jsonrpc.Response {
	s.last = req
	return jsonrpc.FormatResult(req.ID, map[string]string{"method": req.Method()})
}

func (s *echoService) Reject(ctx context.Context, req *walletconnect.SessionRequest) *jsonrpc.Response {
	return service.NewHederaRequestService(nil, false).Reject(ctx, req)
}

type staticAccount struct{}

func (staticAccount) GetAccount() wallet.Account {
	return wallet.Account{AccountID: "0.0.1001"}
}

type stubMirror struct {
	err error
}

func (m stubMirror) GetAccountBalance(ctx context.Context, address string) (*mirror.Balance, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &mirror.Balance{Balance: "1,234.5", Name: "HBAR", Symbol: "ℏ"}, nil
}

func newTestRouter(svc service.RequestService, account handler.AccountProvider, m handler.BalanceQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHTTPRouter(Handlers{
		Session: handler.NewSessionHandler(svc),
		Account: handler.NewAccountHandler(account),
		Balance: handler.NewBalanceHandler(m),
	})
}

func do(t *testing.T, r http.Handler, method, path string, body []byte) map[string]interface{} {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const sessionBody = `{"id":1700000000000123,"topic":"abc","params":{"chainId":"hedera:testnet","request":{"method":"hedera_signMessage","params":{"message":"aGVsbG8="}}}}`

func TestSessionRequest_Approve(t *testing.T) {
	svc := &echoService{}
	r := newTestRouter(svc, staticAccount{}, stubMirror{})

	out := do(t, r, http.MethodPost, "/api/v1/session_request", []byte(sessionBody))
	assert.Equal(t, float64(1700000000000123), out["id"])
	assert.Equal(t, "2.0", out["jsonrpc"])
	assert.Equal(t, "hedera_signMessage", out["result"].(map[string]interface{})["method"])

	require.NotNil(t, svc.last)
	assert.Equal(t, "abc", svc.last.Topic)
	assert.Equal(t, "hedera:testnet", svc.last.Params.ChainID)
	assert.JSONEq(t, `{"message":"aGVsbG8="}`, string(svc.last.Params.Request.Params))
}

func TestSessionRequest_Reject(t *testing.T) {
	r := newTestRouter(&echoService{}, staticAccount{}, stubMirror{})

	out := do(t, r, http.MethodPost, "/api/v1/session_request/reject", []byte(sessionBody))
	assert.Equal(t, float64(1700000000000123), out["id"])
	assert.Equal(t, "User rejected methods.", out["error"].(map[string]interface{})["message"])
}

func TestSessionRequest_BadBody(t *testing.T) {
	r := newTestRouter(&echoService{}, staticAccount{}, stubMirror{})

	for _, body := range []string{`not json`, `{"id":1,"topic":"abc","params":{"chainId":"hedera:testnet","request":{}}}`} {
		out := do(t, r, http.MethodPost, "/api/v1/session_request", []byte(body))
		assert.Equal(t, float64(0), out["id"])
		rpcErr := out["error"].(map[string]interface{})
		assert.Equal(t, float64(-32600), rpcErr["code"])
	}
}

func TestGetChain(t *testing.T) {
	r := newTestRouter(&echoService{}, staticAccount{}, stubMirror{})

	out := do(t, r, http.MethodGet, "/api/v1/chains/hedera:testnet", nil)
	assert.Equal(t, float64(0), out["code"])
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "Hedera Testnet", data["name"])
	assert.Equal(t, float64(3030), data["slip44"])

	out = do(t, r, http.MethodGet, "/api/v1/chains/hedera:mainnet", nil)
	assert.Equal(t, float64(20101), out["code"])
	assert.Contains(t, out["msg"], "hedera:mainnet")
}

func TestGetAccount(t *testing.T) {
	out := do(t, newTestRouter(&echoService{}, staticAccount{}, stubMirror{}), http.MethodGet, "/api/v1/account", nil)
	assert.Equal(t, "0.0.1001", out["data"].(map[string]interface{})["accountId"])

	out = do(t, newTestRouter(&echoService{}, nil, stubMirror{}), http.MethodGet, "/api/v1/account", nil)
	assert.Equal(t, float64(10002), out["code"])
}

func TestGetBalance(t *testing.T) {
	r := newTestRouter(&echoService{}, staticAccount{}, stubMirror{})
	out := do(t, r, http.MethodGet, "/api/v1/accounts/0.0.1001/balance", nil)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "1,234.5", data["balance"])
	assert.Equal(t, "ℏ", data["symbol"])

	out = do(t, r, http.MethodGet, "/api/v1/accounts/abc/balance", nil)
	assert.Equal(t, float64(-32600), out["code"])

	r = newTestRouter(&echoService{}, staticAccount{}, stubMirror{err: errors.New("mirror node returned 404")})
	out = do(t, r, http.MethodGet, "/api/v1/accounts/0.0.404/balance", nil)
	assert.Equal(t, float64(20201), out["code"])
	assert.Contains(t, out["msg"], "404")
}

func TestHealth(t *testing.T) {
	out := do(t, newTestRouter(&echoService{}, staticAccount{}, stubMirror{}), http.MethodGet, "/health", nil)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "UP", data["status"])
	assert.Equal(t, "loaded", data["wallet"])
	assert.Equal(t, []interface{}{"hedera:testnet"}, data["chains"])

	out = do(t, newTestRouter(&echoService{}, nil, stubMirror{}), http.MethodGet, "/health", nil)
	assert.Equal(t, "unavailable", out["data"].(map[string]interface{})["wallet"])
}
