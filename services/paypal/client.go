package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"paypal-vault-api/types"
)

const (
	SandboxEndpoint    = "https://api-m.sandbox.paypal.com"
	ProductionEndpoint = "https://api-m.paypal.com"
	RequestTimeout     = 30 * time.Second
)

// Client talks to the PayPal REST API. It holds the merchant credentials and
// never exposes them past this package.
type Client struct {
	clientID     string
	clientSecret string
	environment  string
	client       *http.Client
	transport    *http.Transport

	// baseURLOverride points the client at a fake processor in tests.
	baseURLOverride string
}

func NewClient(clientID, clientSecret, environment string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		environment:  environment,
		transport:    transport,
		client: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
	}
}

func (c *Client) baseURL() string {
	if c.baseURLOverride != "" {
		return c.baseURLOverride
	}
	if c.environment == "live" || c.environment == "production" {
		return ProductionEndpoint
	}
	return SandboxEndpoint
}

func (c *Client) checkCredentials() error {
	if c.clientID == "" || c.clientSecret == "" {
		return types.NewConfigError("PayPal client credentials are not configured")
	}
	return nil
}

// postForm performs a credential-authenticated form POST against the OAuth
// endpoint and decodes the JSON response into out.
func (c *Client) postForm(ctx context.Context, operation, path string, form url.Values, out interface{}) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error creating %s request: %v", operation, err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, operation, out)
}

// doJSON performs a bearer-authenticated JSON call against the REST API. A
// non-empty requestID is forwarded as PayPal-Request-Id for upstream
// at-most-once handling. A nil body sends an empty request.
func (c *Client) doJSON(ctx context.Context, operation, method, path, accessToken, requestID string, body, out interface{}) error {
	if err := c.checkCredentials(); err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling %s request: %v", operation, err)
		}
		payload = bytes.NewBuffer(data)
	}

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, payload)
	if err != nil {
		return fmt.Errorf("error creating %s request: %v", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if requestID != "" {
		req.Header.Set("PayPal-Request-Id", requestID)
	}

	return c.send(req, operation, out)
}

func (c *Client) send(req *http.Request, operation string, out interface{}) error {
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return &types.UpstreamError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &types.UpstreamError{Operation: operation, Err: fmt.Errorf("error reading response body: %v", err)}
	}

	log.Printf("PayPal %s response received in %v with status %d", operation, time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &types.UpstreamError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       json.RawMessage(respBody),
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &types.UpstreamError{Operation: operation,
			Err: fmt.Errorf("error decoding response: %v, response body: %s", err, string(respBody))}
	}
	return nil
}
