package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	goShop "github.com/MrEthical07/goShop"
	"github.com/MrEthical07/goShop/store"
	"github.com/google/uuid"
)

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type loginData struct {
	Admin store.Profile `json:"admin"`
	Token string        `json:"token"`
}

// Login authenticates against the storefront API and, on success, stores
// the returned token and admin profile through the gate.
//
// Login does not use [Client.Do] on purpose: the 401 a wrong password
// earns is a credential rejection, not a session revocation, and must
// not clear a session or trigger the forced-logout handler. Any existing
// session is replaced only after the server accepts the credentials.
func (c *Client) Login(ctx context.Context, usernameOrEmail, password string, remember bool) (*store.Profile, error) {
	if c == nil || c.gate == nil {
		return nil, goShop.ErrGateNotReady
	}

	body, err := jsonBody(loginRequest{UsernameOrEmail: usernameOrEmail, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/login", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	requestID := goShop.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	ctx = goShop.WithRequestID(ctx, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || env.Status != "success" {
		c.gate.Metrics().Inc(goShop.MetricLoginFailure)
		c.gate.Audit(ctx, goShop.AuditEvent{
			EventType: goShop.AuditLoginFailure,
			Username:  usernameOrEmail,
			Success:   false,
			Error:     env.Message,
		})
		if env.Message != "" {
			return nil, fmt.Errorf("%w: %s", goShop.ErrLoginFailed, env.Message)
		}
		return nil, goShop.ErrLoginFailed
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode login response: %w", decodeErr)
	}

	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode login data: %w", err)
	}
	if data.Token == "" {
		return nil, goShop.ErrTokenMissing
	}

	profile := data.Admin
	if err := c.gate.SetSession(ctx, data.Token, &profile, remember); err != nil {
		return nil, err
	}

	c.gate.Metrics().Inc(goShop.MetricLoginSuccess)
	c.gate.Audit(ctx, goShop.AuditEvent{
		EventType: goShop.AuditLoginSuccess,
		Username:  profile.Username,
		Success:   true,
	})

	return &profile, nil
}

// Logout clears the local session. The storefront API keeps no
// server-side session state for admins, so no request is sent.
func (c *Client) Logout(ctx context.Context) error {
	if c == nil || c.gate == nil {
		return goShop.ErrGateNotReady
	}
	return c.gate.Logout(ctx)
}
