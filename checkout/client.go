package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kirana/models"
)

// ErrAuthRequired means the caller holds no token; the flow defers to
// login and resumes afterwards.
var ErrAuthRequired = errors.New("authentication required")

// ErrOrderFailed is the generic submission failure. The basket is left
// untouched; the caller must resubmit manually.
var ErrOrderFailed = errors.New("order creation failed")

// Client talks to the storefront API with a bearer token.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// PlaceOrder submits the order request. Shipping info must already
// have passed Validate; an invalid form never reaches the network.
func (c *Client) PlaceOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	if c.Token == "" {
		return models.Order{}, ErrAuthRequired
	}
	if errs := shippingInfoFrom(req.Address).Validate(); len(errs) > 0 {
		return models.Order{}, fmt.Errorf("%w: invalid shipping info", ErrOrderFailed)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.Order{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return models.Order{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return models.Order{}, ErrAuthRequired
	}
	if resp.StatusCode != http.StatusCreated {
		return models.Order{}, fmt.Errorf("%w: server returned %d", ErrOrderFailed, resp.StatusCode)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return models.Order{}, fmt.Errorf("%w: bad response", ErrOrderFailed)
	}
	return order, nil
}

// CancelOrder flips an order to cancelled via the API.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (models.Order, error) {
	if c.Token == "" {
		return models.Order{}, ErrAuthRequired
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.BaseURL+"/api/orders/"+orderID+"/cancel", nil)
	if err != nil {
		return models.Order{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return models.Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Order{}, fmt.Errorf("cancel failed: server returned %d", resp.StatusCode)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func shippingInfoFrom(a models.ShippingAddress) ShippingInfo {
	return ShippingInfo{
		FullName: a.FullName,
		Email:    a.Email,
		Phone:    a.Phone,
		Address:  a.Address,
		City:     a.City,
		Pincode:  a.Pincode,
	}
}
