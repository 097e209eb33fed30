package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodfriend/catalog"
	"foodfriend/diner-svc/internal/domain"
	"foodfriend/diner-svc/internal/qr"
	"foodfriend/diner-svc/internal/session"
	"foodfriend/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type SessionStore interface {
	Create() *session.Session
	Get(id string) (*session.Session, error)
}

var _ SessionStore = (*session.Store)(nil)

const sessionPath = "/api/sessions/{id}"

type Handler struct {
	Sessions SessionStore
	QR       qr.Generator
	Log      logrus.FieldLogger
}

func NewHandler(sessions SessionStore, generator qr.Generator, log logrus.FieldLogger) *Handler {
	return &Handler{Sessions: sessions, QR: generator, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/tables/{n}/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	r.HandleFunc(sessionPath, h.getSession).Methods("GET")

	r.HandleFunc(sessionPath+"/scan", h.scan).Methods("POST")
	r.HandleFunc(sessionPath+"/scan/error", h.scanError).Methods("POST")
	r.HandleFunc(sessionPath+"/table", h.enterTable).Methods("POST")

	r.HandleFunc(sessionPath+"/cart/items/{itemId}", h.addItem).Methods("POST")
	r.HandleFunc(sessionPath+"/cart/items/{itemId}", h.removeItem).Methods("DELETE")
	r.HandleFunc(sessionPath+"/cart/open", h.action((*session.Session).OpenCart)).Methods("POST")
	r.HandleFunc(sessionPath+"/cart/close", h.action((*session.Session).CloseCart)).Methods("POST")

	r.HandleFunc(sessionPath+"/order", h.action((*session.Session).PlaceOrder)).Methods("POST")
	r.HandleFunc(sessionPath+"/order/new", h.action((*session.Session).NewOrder)).Methods("POST")
	r.HandleFunc(sessionPath+"/reset", h.action((*session.Session).Reset)).Methods("POST")

	r.HandleFunc(sessionPath+"/popup/accept", h.action((*session.Session).AcceptPopup)).Methods("POST")
	r.HandleFunc(sessionPath+"/popup/dismiss", h.action((*session.Session).DismissPopup)).Methods("POST")
	r.HandleFunc(sessionPath+"/popup/later", h.action((*session.Session).PopupLater)).Methods("POST")
	r.HandleFunc(sessionPath+"/popup/back", h.action((*session.Session).PopupBack)).Methods("POST")
	r.HandleFunc(sessionPath+"/popup/persona", h.selectPersona).Methods("POST")

	r.HandleFunc(sessionPath+"/chat/gender", h.selectGender).Methods("POST")
	r.HandleFunc(sessionPath+"/chat/status", h.selectStatus).Methods("POST")
	r.HandleFunc(sessionPath+"/chat/back", h.action((*session.Session).ChatBack)).Methods("POST")
	r.HandleFunc(sessionPath+"/chat/messages", h.sendMessage).Methods("POST")
	r.HandleFunc(sessionPath+"/chat/close", h.action((*session.Session).CloseChat)).Methods("POST")

	r.HandleFunc(sessionPath+"/speech/stop", h.action((*session.Session).StopSpeech)).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "diner-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

type menuItem struct {
	catalog.MenuItem
	InCart int `json:"inCart"`
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	quantities := map[int]int{}
	if id := r.URL.Query().Get("session"); id != "" {
		sess, err := h.Sessions.Get(id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		for _, item := range sess.View().Cart.Items {
			quantities[item.ID] = item.Quantity
		}
	}

	menu := catalog.Menu()
	items := make([]menuItem, 0, len(menu))
	for _, item := range menu {
		items = append(items, menuItem{MenuItem: item, InCart: quantities[item.ID]})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	table, err := strconv.Atoi(mux.Vars(r)["n"])
	if err != nil {
		http.Error(w, "Invalid table number", http.StatusBadRequest)
		return
	}

	png, err := h.QR.Generate(table)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Create()
	writeJSON(w, http.StatusCreated, sess.View())
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

// action adapts a body-less session operation.
func (h *Handler) action(op func(*session.Session) (session.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := h.session(w, r)
		if !ok {
			return
		}
		view, err := op(sess)
		h.respond(w, r, view, err)
	}
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Payload string `json:"payload"`
	}
	sess, ok := h.decode(w, r, &body)
	if !ok {
		return
	}
	view, err := sess.Scan(body.Payload)
	h.respond(w, r, view, err)
}

func (h *Handler) scanError(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Kind qr.CameraErrorKind `json:"kind"`
	}
	sess, ok := h.decode(w, r, &body)
	if !ok {
		return
	}
	view, err := sess.ScanFailed(body.Kind)
	h.respond(w, r, view, err)
}

func (h *Handler) enterTable(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TableNumber json.RawMessage `json:"tableNumber"`
	}
	sess, ok := h.decode(w, r, &body)
	if !ok {
		return
	}

	// The page sends the raw input text; a bare number is accepted too.
	input := string(body.TableNumber)
	var text string
	if err := json.Unmarshal(body.TableNumber, &text); err == nil {
		input = text
	}
	view, err := sess.EnterTable(input)
	h.respond(w, r, view, err)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	h.cartItem(w, r, (*session.Session).AddItem)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.cartItem(w, r, (*session.Session).RemoveItem)
}

func (h *Handler) cartItem(w http.ResponseWriter, r *http.Request, op func(*session.Session, int) (session.View, error)) {
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	view, err := op(sess, itemID)
	h.respond(w, r, view, err)
}

func (h *Handler) selectPersona(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Persona string `json:"persona"`
	}
	sess, ok := h.decode(w, r, &body)
	if !ok {
		return
	}
	kind, err := domain.ParsePersona(body.Persona)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := sess.SelectPersona(kind)
	h.respond(w, r, view, err)
}

func (h *Handler) selectGender(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Gender string `json:"gender"`
	}
	sess, ok := h.decode(w, r, &body)
	if !ok {
		return
	}
	gender, err := domain.ParseGender(body.Gender)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := sess.SelectGender(gender)
	h.respond(w, r, view, err)
}

func (h *Handler) selectStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RelationshipStatus string `json:"relationshipStatus"`
	}
	sess, ok := h.decode(w, r, &body)
	if !ok {
		return
	}
	status, err := domain.ParseRelationshipStatus(body.RelationshipStatus)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := sess.SelectRelationshipStatus(status)
	h.respond(w, r, view, err)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	sess, ok := h.decode(w, r, &body)
	if !ok {
		return
	}
	view, err := sess.SendMessage(body.Text)
	h.respond(w, r, view, err)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := h.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	return sess, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, body any) (*session.Session, bool) {
	sess, ok := h.session(w, r)
	if !ok {
		return nil, false
	}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return sess, true
}

// respond writes the view. Rejected table input still returns the view so
// the page can show the scanner message.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, view session.View, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, view)
	case errors.Is(err, qr.ErrInvalidPayload), errors.Is(err, domain.ErrInvalidTable):
		writeJSON(w, http.StatusUnprocessableEntity, view)
	default:
		h.writeError(w, r, err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTable),
		errors.Is(err, qr.ErrInvalidPayload),
		errors.Is(err, domain.ErrUnknownPersona),
		errors.Is(err, domain.ErrUnknownGender),
		errors.Is(err, domain.ErrUnknownRelationshipStatus):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrStepMismatch),
		errors.Is(err, domain.ErrPopupNotVisible),
		errors.Is(err, domain.ErrPopupStep),
		errors.Is(err, domain.ErrChatNotReady):
		status = http.StatusConflict
	}

	log := middleware.Logger(r, h.Log).WithError(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed")
	} else {
		log.WithField("status", status).Debug("request rejected")
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
