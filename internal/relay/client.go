// Package relay forwards quote submissions to a third-party form-forwarding
// endpoint (web3forms-compatible). Failures are non-fatal to the caller.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	endpoint  string
	accessKey string
	fromName  string
	client    *http.Client
}

func NewClient(endpoint, accessKey, fromName string) *Client {
	return &Client{
		endpoint:  endpoint,
		accessKey: accessKey,
		fromName:  fromName,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether an access key was provided. Quote intake skips
// the relay side effect when it was not.
func (c *Client) Configured() bool {
	return c.accessKey != "" && c.endpoint != ""
}

type forwardPayload struct {
	AccessKey     string `json:"access_key"`
	Subject       string `json:"subject"`
	FromName      string `json:"from_name"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	InsuranceType string `json:"insurance_type"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	Message       string `json:"message,omitempty"`
}

type forwardResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Forward relays a quote submission to the configured endpoint.
func (c *Client) Forward(ctx context.Context, name, phone, email, insuranceType, vehicleNumber, message string) error {
	payload := forwardPayload{
		AccessKey:     c.accessKey,
		Subject:       fmt.Sprintf("New Insurance Quote Request - %s", insuranceType),
		FromName:      c.fromName,
		Name:          name,
		Phone:         phone,
		Email:         email,
		InsuranceType: insuranceType,
		VehicleNumber: vehicleNumber,
		Message:       message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach relay endpoint: %w", err)
	}
	defer resp.Body.Close()

	var result forwardResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode relay response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("relay rejected submission: %s", result.Message)
	}
	return nil
}
