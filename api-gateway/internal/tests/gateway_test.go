package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodfriend/api-gateway/internal/gateway"
	"foodfriend/api-gateway/internal/mocks"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var services = gateway.Config{
	OrderSvcURL:   "http://order-svc",
	ChatSvcURL:    "http://chat-svc",
	DinerSvcURL:   "http://diner-svc",
	KitchenSvcURL: "http://kitchen-svc",
}

func newGateway(t *testing.T, cfg gateway.Config, client gateway.HTTPClient) *gateway.Gateway {
	log, _ := test.NewNullLogger()
	return gateway.NewGateway(cfg, client, log)
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := newGateway(t, gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Target(t *testing.T) {
	gw := newGateway(t, services, nil)

	tests := []struct {
		path     string
		expected string
	}{
		{"/api/sessions", "http://diner-svc"},
		{"/api/sessions/abc/cart/items/8", "http://diner-svc"},
		{"/api/menu", "http://diner-svc"},
		{"/api/tables/4/qrcode", "http://diner-svc"},
		{"/api/board", "http://kitchen-svc"},
		{"/api/board/orders/ORD-1/advance", "http://kitchen-svc"},
		{"/api/order", "http://order-svc"},
		{"/api/order/ORD-1/status", "http://order-svc"},
		{"/api/orders", "http://order-svc"},
		{"/api/nutrition/generate", "http://order-svc"},
		{"/api/chat", "http://chat-svc"},
		{"/api/ordering", ""},
		{"/api/unknown", ""},
		{"/", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			assert.Equal(t, testCase.expected, gw.Target(testCase.path))
		})
	}
}

func TestGateway_RouteHandler_Proxies(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, services, mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://kitchen-svc/api/board?status=ready" && req.Method == http.MethodGet
	})).Return(okResponse(`{"filter":"ready"}`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/board?status=ready", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), `"filter":"ready"`)
}

func TestGateway_RouteHandler_ForwardsBody(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, services, mockClient)

	var forwarded string
	mockClient.On("Do", mock.Anything).Run(func(args mock.Arguments) {
		req := args.Get(0).(*http.Request)
		b, _ := io.ReadAll(req.Body)
		forwarded = string(b)
	}).Return(okResponse(`{"success":true}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(`{"orderId":"ORD-1"}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"orderId":"ORD-1"}`, forwarded)
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := newGateway(t, services, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := newGateway(t, services, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_ServesFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Food Friend</h1>"), 0o644))

	cfg := services
	cfg.FrontendDir = dir
	router := newGateway(t, cfg, nil).SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/table/4", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Food Friend")
}
