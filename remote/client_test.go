package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodfriend/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PlaceOrder(t *testing.T) {
	var got PlaceOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(Ack{Success: true, OrderID: got.OrderID})
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/api/")
	err := client.PlaceOrder(context.Background(), PlaceOrderRequest{
		Items:       []OrderItem{{ID: 8, Name: "Tacos", Quantity: 2, Price: 10.99, Emoji: "🌮"}},
		TableNumber: 7,
		Total:       21.98,
		OrderID:     "ORD-ABC",
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-ABC", got.OrderID)
	assert.Equal(t, 7, got.TableNumber)
	assert.Len(t, got.Items, 1)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)

	err = client.UpdateStatus(context.Background(), "ORD-1", "ready")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClient_UpdateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/order/ORD-1/status", r.URL.Path)
		var body StatusUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "preparing", body.Status)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL).UpdateStatus(context.Background(), "ORD-1", "preparing"))
}

func TestClient_ListOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"ORD-2","items":[],"total":5.99,"status":"ready","tableNumber":3,"createdAt":"2024-05-01T10:00:00Z"}]`))
	}))
	defer srv.Close()

	orders, err := NewClient(srv.URL).ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ready", orders[0].Status)
	assert.Equal(t, 3, orders[0].TableNumber)
	assert.Equal(t, 2024, orders[0].CreatedAt.Year())
}

func TestClient_ChatSendsEmptyHistory(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.Write([]byte(`{"response":"hi there"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Chat(context.Background(), ChatRequest{Message: "START_CONVERSATION", Persona: "friend"})
	require.NoError(t, err)
	assert.Equal(t, "hi there", resp.Response)
	assert.Equal(t, []any{}, raw["conversationHistory"])
	_, hasLover := raw["loverConfig"]
	assert.False(t, hasLover)
}

func TestClient_GenerateNutrition_MissingTotals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"healthTip":"eat more"}`))
	}))
	defer srv.Close()

	report, err := NewClient(srv.URL).GenerateNutrition(context.Background(), []catalog.Portion{{Name: "Tacos", Quantity: 1}})
	require.NoError(t, err)
	assert.Nil(t, report.Totals)
}

func TestClient_GenerateNutrition_FractionalPercentages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items":[{"name":"Tacos","quantity":2,"calories":1040,"protein":48}],
			"totals":{"calories":1040,"protein":48,"carbs":96,"fat":52,"fiber":12,"sugar":8},
			"dailyPercentages":{"calories":52,"protein":96.5,"carbs":32,"fat":80.2,"fiber":48,"sugar":16},
			"healthTip":"remote tip"
		}`))
	}))
	defer srv.Close()

	report, err := NewClient(srv.URL).GenerateNutrition(context.Background(), []catalog.Portion{{Name: "Tacos", Quantity: 2}})
	require.NoError(t, err)
	require.NotNil(t, report.Totals)
	assert.Equal(t, 1040.0, report.Totals.Calories)
	assert.Equal(t, 96.5, report.DailyPercentages.Protein)
	assert.Equal(t, 80.2, report.DailyPercentages.Fat)
	assert.Equal(t, "remote tip", report.HealthTip)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(srv.URL, WithTimeout(20*time.Millisecond))
	_, err := client.ListOrders(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
