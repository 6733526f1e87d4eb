// Package client is the HTTP side of the display contract: remote displays
// (monitor, kitchen screens) talk to pos-service through it instead of
// holding the store directly. It satisfies view.Source.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Jaomarks/eternapdv/internal/order"
)

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func New(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(req *http.Request, want int, out any) error {
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != want {
		var e apiError
		if json.NewDecoder(res.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("pos-service: %s (status %d)", e.Error, res.StatusCode)
		}
		return fmt.Errorf("pos-service: status %d", res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Snapshot fetches one filtered snapshot, implementing view.Source.
func (c *Client) Snapshot(f order.Filter) (order.Snapshot, error) {
	url := fmt.Sprintf("%s/orders?status=%s", c.BaseURL, f.Status)
	if f.Delivery != nil {
		url += fmt.Sprintf("&delivery=%t", *f.Delivery)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return order.Snapshot{}, err
	}
	var snap order.Snapshot
	if err := c.do(req, http.StatusOK, &snap); err != nil {
		return order.Snapshot{}, err
	}
	return snap, nil
}

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, in order.CreateOrderRequest) (order.Order, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return order.Order{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return order.Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	var o order.Order
	if err := c.do(req, http.StatusCreated, &o); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

// UpdateStatus advances one order through the state machine.
func (c *Client) UpdateStatus(ctx context.Context, id int, st order.Status) (order.Order, error) {
	body, err := json.Marshal(order.UpdateStatusRequest{Status: st})
	if err != nil {
		return order.Order{}, err
	}
	url := fmt.Sprintf("%s/orders/%d/status", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return order.Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	var o order.Order
	if err := c.do(req, http.StatusOK, &o); err != nil {
		return order.Order{}, err
	}
	return o, nil
}
