// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/anorlov/vaultshare/internal/config"
	"github.com/anorlov/vaultshare/internal/logger"
	"github.com/anorlov/vaultshare/internal/utils"
	"github.com/anorlov/vaultshare/models"
	"github.com/go-resty/resty/v2"
)

type httpRelayAdapter struct {
	client  *resty.Client
	hashKey string
	logger  *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRelayAdapter constructs the HTTP/REST implementation of
// [RelayAdapter]. The base URL from adapterCfg is normalised and validated;
// the shared HMAC hasher pool for body integrity signatures is initialised
// from the security config.
func NewHTTPRelayAdapter(adapterCfg config.ClientAdapter, security config.Security, log *logger.Logger) (RelayAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid relay address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(security.HashKey)

	return &httpRelayAdapter{client: cli, hashKey: security.HashKey, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RelayAdapter].
func (h *httpRelayAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RelayAdapter].
func (h *httpRelayAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRelayAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}

// Register implements [RelayAdapter].
func (h *httpRelayAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [RelayAdapter].
func (h *httpRelayAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(token)
	return models.User{
		Email:               body.Email,
		PublicKey:           body.PublicKey,
		EncryptedPrivateKey: body.EncryptedPrivateKey,
	}, nil
}

// GetVault implements [RelayAdapter].
func (h *httpRelayAdapter) GetVault(ctx context.Context) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault")
	if err != nil {
		return "", fmt.Errorf("get vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var blob models.VaultBlob
	if err = json.Unmarshal(resp.Body(), &blob); err != nil {
		return "", fmt.Errorf("decode vault response: %w", err)
	}

	return blob.EncryptedData, nil
}

// PutVault implements [RelayAdapter]. The body carries an HMAC-SHA256
// integrity signature in the HashSHA256 header; the relay recomputes it
// before accepting the blob.
func (h *httpRelayAdapter) PutVault(ctx context.Context, encryptedData string) error {
	body, err := json.Marshal(models.VaultBlob{EncryptedData: encryptedData})
	if err != nil {
		return fmt.Errorf("marshal vault blob: %w", err)
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("HashSHA256", utils.HashString(string(body), h.hashKey)).
		SetBody(body).
		Put("/api/vault")
	if err != nil {
		return fmt.Errorf("put vault request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetPublicKey implements [RelayAdapter].
func (h *httpRelayAdapter) GetPublicKey(ctx context.Context, email string) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/keys/" + url.PathEscape(email))
	if err != nil {
		return "", fmt.Errorf("get public key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.PublicKeyResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode public key response: %w", err)
	}

	return body.PublicKey, nil
}

// CreateShare implements [RelayAdapter].
func (h *httpRelayAdapter) CreateShare(ctx context.Context, req models.ShareRequest) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/share")
	if err != nil {
		return "", fmt.Errorf("create share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var body models.ShareCreatedResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode create share response: %w", err)
	}

	return body.ID, nil
}

// ListShares implements [RelayAdapter].
func (h *httpRelayAdapter) ListShares(ctx context.Context) ([]models.ShareEnvelope, error) {
	resp, err := h.authedRequest(ctx).Get("/api/share")
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelopes []models.ShareEnvelope
	if err = json.Unmarshal(resp.Body(), &envelopes); err != nil {
		return nil, fmt.Errorf("decode share inbox: %w", err)
	}

	return envelopes, nil
}

// DeleteShare implements [RelayAdapter].
func (h *httpRelayAdapter) DeleteShare(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/share/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete share request: %w", err)
	}

	return mapHTTPError(resp)
}
