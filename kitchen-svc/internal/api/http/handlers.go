package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodfriend/kitchen-svc/internal/portal"
	"foodfriend/remote"

	"github.com/gorilla/mux"
)

type BoardInterface interface {
	Snapshot(filter string) (portal.Snapshot, error)
	Refresh(ctx context.Context) error
	UpdateStatus(ctx context.Context, orderID, status string) error
	Advance(ctx context.Context, orderID string) error
}

var _ BoardInterface = (*portal.Board)(nil)

type Handler struct {
	Board BoardInterface
}

func NewHandler(board BoardInterface) *Handler {
	return &Handler{Board: board}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/board", h.getBoard).Methods("GET")
	r.HandleFunc("/api/board/refresh", h.refresh).Methods("POST")
	r.HandleFunc("/api/board/orders/{id}/status", h.updateStatus).Methods("PUT")
	r.HandleFunc("/api/board/orders/{id}/advance", h.advance).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "kitchen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	h.writeBoard(w, r.URL.Query().Get("status"))
}

// refresh re-fetches and returns the board; a failed fetch still shows the
// previous orders.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	h.Board.Refresh(r.Context())
	h.writeBoard(w, r.URL.Query().Get("status"))
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var body remote.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Board.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeBoard(w, r.URL.Query().Get("status"))
}

func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.Advance(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeBoard(w, r.URL.Query().Get("status"))
}

func (h *Handler) writeBoard(w http.ResponseWriter, filter string) {
	snap, err := h.Board.Snapshot(filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, portal.ErrInvalidFilter), errors.Is(err, portal.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, portal.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, portal.ErrNoTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}
