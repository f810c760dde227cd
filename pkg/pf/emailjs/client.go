package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends transactional email through the EmailJS REST API.
type Client struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	httpClient *http.Client
}

// NewClient creates an EmailJS client for the given service and template.
func NewClient(endpoint, serviceID, templateID, publicKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Message holds the template parameters for a contact notification.
type Message struct {
	FromName  string
	FromEmail string
	Subject   string
	Body      string
	SentDate  time.Time
	ToName    string
	ToEmail   string
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send relays a contact message through the configured EmailJS template.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if !c.IsConfigured() {
		return fmt.Errorf("emailjs is not configured")
	}

	req := sendRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: map[string]any{
			"from_name":     msg.FromName,
			"from_email":    msg.FromEmail,
			"subject":       msg.Subject,
			"message":       msg.Body,
			"sent_date":     msg.SentDate.Format("Monday, 2 January 2006 15:04"),
			"to_name":       msg.ToName,
			"to_email":      msg.ToEmail,
			"reply_to":      msg.FromEmail,
			"email_subject": fmt.Sprintf("New Contact: %s - %s", msg.FromName, msg.Subject),
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("cannot marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cannot create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("cannot call EmailJS API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("EmailJS API returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// IsConfigured reports whether all required EmailJS settings are present.
func (c *Client) IsConfigured() bool {
	return c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}
