package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"paypal-vault-api/cache"
	"paypal-vault-api/config"
	"paypal-vault-api/handlers"
	"paypal-vault-api/middleware"
	"paypal-vault-api/services/order"
	"paypal-vault-api/services/paypal"
	"paypal-vault-api/services/token"
	"paypal-vault-api/services/vault"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		// Only slow requests and errors are worth a line.
		elapsed := time.Since(start)
		if elapsed > 500*time.Millisecond || wrapper.status >= 400 {
			log.Printf(
				"%s %s %s %d %v",
				r.Method,
				r.RequestURI,
				r.RemoteAddr,
				wrapper.status,
				elapsed,
			)
		}
	})
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds | log.LUTC)

	numCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(numCPU)
	log.Printf("Server starting with %d CPUs available", numCPU)

	cfg := config.Load()
	log.Printf("Configuration loaded, mode: %s", cfg.Mode())

	// The relay is stateless; Redis is an optional collaborator for the
	// access-token cache and rate limiting.
	var tokenCache cache.TokenCache
	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			log.Printf("Warning: token cache disabled: %v", err)
		} else {
			defer redisCache.Close()
			tokenCache = redisCache
			log.Println("Successfully connected to Redis for token caching")
		}

		rateLimiter, err = middleware.NewRateLimiter(cfg.Redis.URL)
		if err != nil {
			log.Printf("Warning: rate limiting disabled: %v", err)
			rateLimiter = nil
		} else {
			defer rateLimiter.Close()
		}
	}

	client := paypal.NewClient(cfg.PayPal.ClientID, cfg.PayPal.ClientSecret, cfg.PayPal.Environment)

	tokenService := token.NewService(client, tokenCache)
	vaultService := vault.NewService(client, tokenService)
	orderService := order.NewService(client, tokenService)

	configHandler := handlers.NewConfigHandler(cfg)
	tokenHandler := handlers.NewTokenHandler(tokenService)
	vaultHandler := handlers.NewVaultHandler(vaultService)
	orderHandler := handlers.NewOrderHandler(orderService)

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)
	router.Use(middleware.SecurityHeadersMiddleware)
	if rateLimiter != nil {
		router.Use(rateLimiter.RateLimitMiddleware())
	}

	router.HandleFunc("/health", configHandler.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", configHandler.Health).Methods("GET")
	api.HandleFunc("/config", configHandler.ClientConfig).Methods("GET", "OPTIONS")
	api.HandleFunc("/generate-client-token", tokenHandler.GenerateClientToken).Methods("GET", "OPTIONS")

	api.HandleFunc("/setup-tokens", vaultHandler.CreateSetupToken).Methods("POST", "OPTIONS")
	api.HandleFunc("/payment-tokens", vaultHandler.CreatePaymentToken).Methods("POST", "OPTIONS")
	api.HandleFunc("/payment-tokens/{customerId}", vaultHandler.ListPaymentTokens).Methods("GET", "OPTIONS")

	api.HandleFunc("/orders", orderHandler.CreateOrder).Methods("POST", "OPTIONS")
	api.HandleFunc("/orders/{orderId}/capture", orderHandler.CaptureOrder).Methods("POST", "OPTIONS")

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   60 * time.Second, // an order create can serialize two upstream calls
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stop
	log.Println("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
