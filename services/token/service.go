package token

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"paypal-vault-api/cache"
	"paypal-vault-api/models"
	"paypal-vault-api/services/paypal"
)

const (
	accessTokenKey = "paypal:access_token"

	// Cached tokens are retired a minute before the processor expires them so
	// an in-flight call never carries a token about to die.
	expiryMargin = 60 * time.Second
)

type oauthAPI interface {
	GetAccessToken(ctx context.Context) (*paypal.AccessToken, error)
	GenerateIdentityToken(ctx context.Context, payer models.Payer) (string, error)
}

// Service is the Token Service: it exchanges the merchant credentials for an
// app-level access token and mints user identity tokens for the browser SDK.
type Service struct {
	api   oauthAPI
	cache cache.TokenCache
}

// NewService builds a token service. tokenCache may be nil, in which case
// every call re-authenticates upstream, matching the uncached relay behavior.
func NewService(api oauthAPI, tokenCache cache.TokenCache) *Service {
	return &Service{api: api, cache: tokenCache}
}

// AccessToken returns a bearer token for the REST API, consulting the cache
// first when one is configured. Cache failures degrade to a fresh fetch.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, accessTokenKey)
		if err != nil {
			log.Printf("Token cache read failed, fetching fresh token: %v", err)
		} else if found {
			return cached, nil
		}
	}

	token, err := s.api.GetAccessToken(ctx)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		ttl := time.Duration(token.ExpiresIn)*time.Second - expiryMargin
		if err := s.cache.Set(ctx, accessTokenKey, token.Token, ttl); err != nil {
			log.Printf("Token cache write failed: %v", err)
		}
	}

	return token.Token, nil
}

// GenerateClientToken mints a user identity token. For a returning payer the
// token is bound to the known customer id, which is what lets the browser SDK
// recognize the shopper.
func (s *Service) GenerateClientToken(ctx context.Context, payer models.Payer) (string, error) {
	idToken, err := s.api.GenerateIdentityToken(ctx, payer)
	if err != nil {
		return "", err
	}

	logIdentityTokenExpiry(idToken, payer)

	return idToken, nil
}

// logIdentityTokenExpiry reads the minted token's exp claim for operational
// logging. The token is verified by the processor, not here, so an unparseable
// token is logged and passed through untouched.
func logIdentityTokenExpiry(idToken string, payer models.Payer) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		log.Printf("Identity token is not a parseable JWT, passing through: %v", err)
		return
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	subject := "new payer"
	if customerID, returning := payer.Returning(); returning {
		subject = fmt.Sprintf("customer %s", customerID)
	}
	log.Printf("Minted identity token for %s, expires in %v", subject, time.Until(exp.Time).Round(time.Second))
}
