package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL   string
	ChatSvcURL    string
	DinerSvcURL   string
	KitchenSvcURL string
	FrontendDir   string
}

type route struct {
	prefix string
	target func(Config) string
}

// routes are matched on whole path segments, first match wins.
var routes = []route{
	{"/api/sessions", func(c Config) string { return c.DinerSvcURL }},
	{"/api/menu", func(c Config) string { return c.DinerSvcURL }},
	{"/api/tables", func(c Config) string { return c.DinerSvcURL }},
	{"/api/board", func(c Config) string { return c.KitchenSvcURL }},
	{"/api/order", func(c Config) string { return c.OrderSvcURL }},
	{"/api/orders", func(c Config) string { return c.OrderSvcURL }},
	{"/api/nutrition", func(c Config) string { return c.OrderSvcURL }},
	{"/api/chat", func(c Config) string { return c.ChatSvcURL }},
}

type Gateway struct {
	config Config
	client HTTPClient
	log    logrus.FieldLogger
}

func NewGateway(config Config, client HTTPClient, log logrus.FieldLogger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards the request unchanged to targetURL + path.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log := g.log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path, "target": targetURL})
	log.Debug("proxy")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.WithError(err).Error("failed to create request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("upstream unavailable")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Error("failed to copy response")
	}
}

// Target returns the upstream for an API path, or "" when none matches.
func (g *Gateway) Target(path string) string {
	for _, rt := range routes {
		if path == rt.prefix || strings.HasPrefix(path, rt.prefix+"/") {
			return rt.target(g.config)
		}
	}
	return ""
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if target := g.Target(path); target != "" {
		g.ProxyRequest(w, r, target)
		return
	}

	if strings.HasPrefix(path, "/api/") {
		g.log.WithField("path", path).Warn("unmatched API route")
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
