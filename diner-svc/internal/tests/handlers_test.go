package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "foodfriend/diner-svc/internal/api/http"
	"foodfriend/diner-svc/internal/domain"
	"foodfriend/diner-svc/internal/mocks"
	"foodfriend/diner-svc/internal/nutrition"
	"foodfriend/diner-svc/internal/qr"
	"foodfriend/diner-svc/internal/session"
	"foodfriend/remote"

	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router   *mux.Router
	store    *session.Store
	clock    *clockwork.FakeClock
	orders   *mocks.OrderSubmitter
	chat     *mocks.ChatService
	source   *mocks.NutritionSource
	reporter *mocks.Reporter
}

func setupTestRouter(t *testing.T) *testEnv {
	log, _ := test.NewNullLogger()
	env := &testEnv{
		clock:    clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
		orders:   mocks.NewOrderSubmitter(t),
		chat:     mocks.NewChatService(t),
		source:   mocks.NewNutritionSource(t),
		reporter: mocks.NewReporter(t),
	}
	env.store = session.NewStore(session.Deps{
		Orders:     env.orders,
		Chat:       env.chat,
		Nutrition:  nutrition.NewFetcher(env.source, env.reporter),
		Reporter:   env.reporter,
		Clock:      env.clock,
		Log:        log,
		PopupDelay: 5 * time.Second,
		Run:        func(f func()) { f() },
	})

	handler := httpapi.NewHandler(env.store, qr.TableGenerator{Size: 128}, log)
	env.router = mux.NewRouter()
	handler.RegisterRoutes(env.router)
	return env
}

func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeView(t *testing.T, recorder *httptest.ResponseRecorder) session.View {
	t.Helper()
	var view session.View
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &view))
	return view
}

func (env *testEnv) seatedSession(t *testing.T) string {
	id := decodeView(t, env.do(t, "POST", "/api/sessions", "")).ID
	recorder := env.do(t, "POST", "/api/sessions/"+id+"/scan", `{"payload":"FOODFRIEND-TABLE-4"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	return id
}

func TestHandler_createSession(t *testing.T) {
	env := setupTestRouter(t)

	recorder := env.do(t, "POST", "/api/sessions", "")
	assert.Equal(t, http.StatusCreated, recorder.Code)
	view := decodeView(t, recorder)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, domain.StepScanning, view.Step)

	recorder = env.do(t, "GET", "/api/sessions/"+view.ID, "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(t, "GET", "/api/sessions/unknown", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_tableEntry(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		payload      string
		expectedCode int
		expectedStep domain.Step
		expectedBody string
	}{
		{
			name:         "scan_success",
			path:         "/scan",
			payload:      `{"payload":"FOODFRIEND-TABLE-12"}`,
			expectedCode: http.StatusOK,
			expectedStep: domain.StepMenu,
			expectedBody: `"tableNumber":12`,
		},
		{
			name:         "scan_invalid",
			path:         "/scan",
			payload:      `{"payload":"hello"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedStep: domain.StepScanning,
			expectedBody: `"manualEntry":true`,
		},
		{
			name:         "manual_string",
			path:         "/table",
			payload:      `{"tableNumber":"33"}`,
			expectedCode: http.StatusOK,
			expectedStep: domain.StepMenu,
			expectedBody: `"tableNumber":33`,
		},
		{
			name:         "manual_number",
			path:         "/table",
			payload:      `{"tableNumber":9}`,
			expectedCode: http.StatusOK,
			expectedStep: domain.StepMenu,
		},
		{
			name:         "manual_out_of_range",
			path:         "/table",
			payload:      `{"tableNumber":"250"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedStep: domain.StepScanning,
			expectedBody: qr.InvalidManualMessage,
		},
		{
			name:         "camera_error",
			path:         "/scan/error",
			payload:      `{"kind":"not_found"}`,
			expectedCode: http.StatusOK,
			expectedStep: domain.StepScanning,
			expectedBody: `"manualEntry":true`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			env := setupTestRouter(t)
			id := decodeView(t, env.do(t, "POST", "/api/sessions", "")).ID

			recorder := env.do(t, "POST", "/api/sessions/"+id+testCase.path, testCase.payload)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Equal(t, testCase.expectedStep, decodeView(t, recorder).Step)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_invalidJSON(t *testing.T) {
	env := setupTestRouter(t)
	id := decodeView(t, env.do(t, "POST", "/api/sessions", "")).ID

	recorder := env.do(t, "POST", "/api/sessions/"+id+"/scan", `bad json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_cart(t *testing.T) {
	env := setupTestRouter(t)
	id := env.seatedSession(t)

	recorder := env.do(t, "POST", "/api/sessions/"+id+"/cart/items/2", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	env.do(t, "POST", "/api/sessions/"+id+"/cart/items/2", "")
	recorder = env.do(t, "DELETE", "/api/sessions/"+id+"/cart/items/2", "")
	view := decodeView(t, recorder)
	assert.Equal(t, 1, view.Cart.Count)
	assert.Equal(t, "$9.99", view.Cart.FormattedTotal)

	recorder = env.do(t, "POST", "/api/sessions/"+id+"/cart/items/abc", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, "GET", "/api/menu?session="+id, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	var menu []struct {
		ID     int `json:"id"`
		InCart int `json:"inCart"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &menu))
	assert.Len(t, menu, 16)
	assert.Equal(t, 1, menu[1].InCart)
	assert.Zero(t, menu[0].InCart)
}

func TestHandler_stepMismatch(t *testing.T) {
	env := setupTestRouter(t)
	id := decodeView(t, env.do(t, "POST", "/api/sessions", "")).ID

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "add_item", path: "/cart/items/1"},
		{name: "place_order", path: "/order"},
		{name: "popup_accept", path: "/popup/accept"},
		{name: "chat_message", path: "/chat/messages", body: `{"text":"hi"}`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := env.do(t, "POST", "/api/sessions/"+id+testCase.path, testCase.body)
			assert.Equal(t, http.StatusConflict, recorder.Code)
		})
	}
}

func TestHandler_orderAndChat(t *testing.T) {
	env := setupTestRouter(t)
	id := env.seatedSession(t)
	env.do(t, "POST", "/api/sessions/"+id+"/cart/items/8", "")

	env.orders.On("PlaceOrder", mock.Anything, mock.Anything).Return(nil).Once()
	env.reporter.On("OrderPlaced", mock.Anything, 4).Once()
	env.source.On("GenerateNutrition", mock.Anything, mock.Anything).Return(nil, errors.New("down")).Once()
	env.reporter.On("RemoteFailure", mock.Anything, mock.Anything, mock.Anything).Once()
	env.reporter.On("NutritionFallback", nutrition.ReasonRemoteError).Once()

	recorder := env.do(t, "POST", "/api/sessions/"+id+"/order", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	view := decodeView(t, recorder)
	assert.Equal(t, domain.StepOrderConfirmed, view.Step)
	require.NotNil(t, view.Order)
	assert.Equal(t, 4, view.Order.TableNumber)

	env.reporter.On("PopupShown").Once()
	env.clock.Advance(5 * time.Second)
	require.Eventually(t, func() bool {
		return decodeView(t, env.do(t, "GET", "/api/sessions/"+id, "")).Popup.Visible
	}, time.Second, time.Millisecond)

	recorder = env.do(t, "POST", "/api/sessions/"+id+"/popup/accept", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(t, "POST", "/api/sessions/"+id+"/popup/persona", `{"persona":"pirate"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	env.chat.On("Chat", mock.Anything, mock.Anything).Return(remote.ChatResponse{Response: "Ahoy"}, nil).Once()
	recorder = env.do(t, "POST", "/api/sessions/"+id+"/popup/persona", `{"persona":"celebrity"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, domain.StepChatting, decodeView(t, recorder).Step)

	env.chat.On("Chat", mock.Anything, mock.Anything).Return(remote.ChatResponse{Response: "Sure thing"}, nil).Once()
	recorder = env.do(t, "POST", "/api/sessions/"+id+"/chat/messages", `{"text":"sign my napkin"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.do(t, "GET", "/api/sessions/"+id, "")
	view = decodeView(t, recorder)
	require.NotNil(t, view.Chat)
	assert.Len(t, view.Chat.History, 3)

	recorder = env.do(t, "POST", "/api/sessions/"+id+"/chat/close", "")
	assert.Equal(t, domain.StepOrderConfirmed, decodeView(t, recorder).Step)
}

func TestHandler_getTableQRCode(t *testing.T) {
	env := setupTestRouter(t)

	tests := []struct {
		name         string
		path         string
		expectedCode int
	}{
		{name: "success", path: "/api/tables/5/qrcode", expectedCode: http.StatusOK},
		{name: "out_of_range", path: "/api/tables/0/qrcode", expectedCode: http.StatusBadRequest},
		{name: "not_a_number", path: "/api/tables/five/qrcode", expectedCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := env.do(t, "GET", testCase.path, "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedCode == http.StatusOK {
				assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHandler_healthCheck(t *testing.T) {
	env := setupTestRouter(t)
	recorder := env.do(t, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"service":"diner-svc"`)
}
