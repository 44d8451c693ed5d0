package handlers

import (
	"fmt"
	"net/http"
	"time"

	"paypal-vault-api/config"
	"paypal-vault-api/models"
	"paypal-vault-api/utils"
)

// ConfigHandler serves the health check and the public client configuration
// the checkout page needs to boot the processor's browser SDK.
type ConfigHandler struct {
	cfg       *config.Config
	startTime time.Time
}

func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg, startTime: time.Now()}
}

func (h *ConfigHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.cfg.PayPal.ClientID == "" || h.cfg.PayPal.ClientSecret == "" {
		status = "misconfigured"
	}

	utils.SendJSONResponse(w, http.StatusOK, models.HealthStatus{
		Status:                 status,
		Mode:                   h.cfg.Mode(),
		ClientIDConfigured:     h.cfg.PayPal.ClientID != "",
		ClientSecretConfigured: h.cfg.PayPal.ClientSecret != "",
		Time:                   time.Now().Format(time.RFC3339),
		Uptime:                 fmt.Sprintf("%v", time.Since(h.startTime)),
	})
}

func (h *ConfigHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, http.StatusOK, models.ClientConfig{
		ClientID: h.cfg.PayPal.ClientID,
		Mode:     h.cfg.Mode(),
	})
}
