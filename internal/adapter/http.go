package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

const authenticatePath = "/authenticate"

type httpRemoteAdapter struct {
	client      *utils.HTTPClient
	devicesPath string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP implementation of [RemoteAdapter].
// It normalises cfg.BaseURL and bounds every request by cfg.RequestTimeout.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPRemoteAdapter(cfg config.Remote, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	devicesPath := cfg.DevicesPath
	if devicesPath == "" {
		devicesPath = config.DefaultDevicesPath
	}
	if !strings.HasPrefix(devicesPath, "/") {
		devicesPath = "/" + devicesPath
	}

	return &httpRemoteAdapter{
		client:      utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		devicesPath: devicesPath,
		logger:      logger,
	}, nil
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

// Authenticate implements [RemoteAdapter]. The request body is
// {"username","password","rememberMe":false}; the token is read from the
// "id_token" field of the response.
func (h *httpRemoteAdapter) Authenticate(ctx context.Context, username, password string) (models.Credential, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Username: username, Password: password}).
		Post(authenticatePath)
	if err != nil {
		return models.Credential{}, fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	if err = json.Unmarshal(resp.Body(), &authResp); err != nil {
		return models.Credential{}, fmt.Errorf("%w: decode authenticate response: %v", ErrMalformedResponse, err)
	}
	// the token is opaque: only a blank one is refused, the value is kept as sent
	if strings.TrimSpace(authResp.IDToken) == "" {
		return models.Credential{}, fmt.Errorf("%w: missing id_token", ErrEmptyResponse)
	}

	return models.Credential{Token: authResp.IDToken}, nil
}

// GetDevices implements [RemoteAdapter].
func (h *httpRemoteAdapter) GetDevices(ctx context.Context, token string) ([]models.Device, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(h.devicesPath)
	if err != nil {
		return nil, fmt.Errorf("get devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, fmt.Errorf("%w: get devices", ErrEmptyResponse)
	}

	var devices []models.Device
	if err = json.Unmarshal(body, &devices); err != nil {
		return nil, fmt.Errorf("%w: decode devices: %v", ErrMalformedResponse, err)
	}

	h.logger.Debug().
		Int("count", len(devices)).
		Int("status", resp.StatusCode()).
		Msg("fetched remote devices")

	return devices, nil
}
