package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Session is what the identity provider vouches for: a stable user id
// plus the metadata flags the app gates on.
type Session struct {
	UserID            string
	Email             string
	Name              string
	IsEmployer        bool
	IsProfileComplete bool
}

// SessionVerifier validates a session token with the identity
// provider. The provider owns the protocol; we only consume it.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

// HTTPVerifier calls the provider's session-verification endpoint.
type HTTPVerifier struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewHTTPVerifier(baseURL, secretKey string, timeout time.Duration) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL:   baseURL,
		secretKey: secretKey,
		http:      &http.Client{Timeout: timeout},
	}
}

type verifyResponse struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	PublicMetadata struct {
		Name              string `json:"name"`
		IsEmployer        bool   `json:"is_employer"`
		IsProfileComplete bool   `json:"is_profile_complete"`
	} `json:"public_metadata"`
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/sessions/verify", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+v.secretKey)

	resp, err := v.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verify session: status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}

	return &Session{
		UserID:            body.UserID,
		Email:             body.Email,
		Name:              body.PublicMetadata.Name,
		IsEmployer:        body.PublicMetadata.IsEmployer,
		IsProfileComplete: body.PublicMetadata.IsProfileComplete,
	}, nil
}
