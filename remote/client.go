package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"foodfriend/catalog"
)

var ErrUnexpectedStatus = errors.New("unexpected status from remote service")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout bounds every call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient swaps the transport, mainly for tests.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.http = h }
}

// Client talks to the order, chat and nutrition endpoints under one base URL.
type Client struct {
	baseURL string
	http    HTTPClient
	timeout time.Duration
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: 30 * time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) PlaceOrder(ctx context.Context, req PlaceOrderRequest) error {
	return c.do(ctx, http.MethodPost, "/order", req, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateStatus(ctx context.Context, orderID, status string) error {
	return c.do(ctx, http.MethodPut, "/order/"+url.PathEscape(orderID)+"/status", StatusUpdate{Status: status}, nil)
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if req.ConversationHistory == nil {
		req.ConversationHistory = []ChatTurn{}
	}
	var resp ChatResponse
	err := c.do(ctx, http.MethodPost, "/chat", req, &resp)
	return resp, err
}

// GenerateNutrition returns the remote report as decoded. Callers decide
// whether a report without totals is usable.
func (c *Client) GenerateNutrition(ctx context.Context, items []catalog.Portion) (*catalog.Report, error) {
	var report catalog.Report
	if err := c.do(ctx, http.MethodPost, "/nutrition/generate", NutritionRequest{Items: items}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %w: %d", method, path, ErrUnexpectedStatus, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
