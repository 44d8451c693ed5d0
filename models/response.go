package models

import "encoding/json"

// ErrorResponse is the JSON error envelope returned to the browser. Details
// carries the upstream processor body verbatim when the failure came from the
// remote API.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

type HealthStatus struct {
	Status                 string `json:"status"`
	Mode                   string `json:"mode"`
	ClientIDConfigured     bool   `json:"clientIdConfigured"`
	ClientSecretConfigured bool   `json:"clientSecretConfigured"`
	Time                   string `json:"time"`
	Uptime                 string `json:"uptime"`
}

// ClientConfig is the public subset of configuration the checkout page needs
// to initialize the processor's browser SDK.
type ClientConfig struct {
	ClientID string `json:"clientId"`
	Mode     string `json:"mode"`
}

type ClientTokenResponse struct {
	IDToken string `json:"id_token"`
}
