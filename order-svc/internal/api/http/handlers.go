package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodfriend/middleware"
	"foodfriend/order-svc/internal/domain"
	"foodfriend/order-svc/internal/service"
	"foodfriend/remote"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Orders    service.OrderServiceInterface
	Nutrition service.NutritionServiceInterface
	Log       logrus.FieldLogger
}

func NewHandler(orders service.OrderServiceInterface, nutrition service.NutritionServiceInterface, log logrus.FieldLogger) *Handler {
	return &Handler{Orders: orders, Nutrition: nutrition, Log: log}
}

// RegisterRoutes serves the order contract both at the root and under /api,
// which is where the gateway forwards it.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	for _, prefix := range []string{"", "/api"} {
		r.HandleFunc(prefix+"/order", h.placeOrder).Methods("POST")
		r.HandleFunc(prefix+"/orders", h.listOrders).Methods("GET")
		r.HandleFunc(prefix+"/order/{id}/status", h.updateStatus).Methods("PUT")
		r.HandleFunc(prefix+"/nutrition/generate", h.generateNutrition).Methods("POST")
		r.HandleFunc(prefix+"/nutrition/{itemId:[0-9]+}", h.itemNutrition).Methods("GET")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req remote.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, remote.Ack{Error: "invalid payload"})
		return
	}

	order, err := h.Orders.Place(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, remote.Ack{Success: true, OrderID: order.ID})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var body remote.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, remote.Ack{Error: "invalid payload"})
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, remote.Ack{Success: true, OrderID: order.ID})
}

func (h *Handler) generateNutrition(w http.ResponseWriter, r *http.Request) {
	var req remote.NutritionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, remote.Ack{Error: "invalid payload"})
		return
	}

	report, err := h.Nutrition.Generate(r.Context(), req.Items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) itemNutrition(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])

	facts, err := h.Nutrition.ItemFacts(itemID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, facts)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidNutritionRequest):
		writeJSON(w, http.StatusBadRequest, remote.Ack{Error: err.Error()})
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, service.ErrUnknownItem):
		writeJSON(w, http.StatusNotFound, remote.Ack{Error: err.Error()})
	case errors.Is(err, domain.ErrOrderExists):
		writeJSON(w, http.StatusConflict, remote.Ack{Error: err.Error()})
	default:
		middleware.Logger(r, h.Log).WithError(err).Error("order request failed")
		writeJSON(w, http.StatusInternalServerError, remote.Ack{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
