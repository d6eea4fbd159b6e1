package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/models"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerTraceID        = "X-Trace-ID"

	pathPresences        = "/api/presences"
	pathPresencesBulk    = "/api/presences/bulk"
	pathUniformInspected = "/api/uniform-inspections"
)

var collectionPaths = map[models.Collection]string{
	models.CollectionUsers:      "/api/users",
	models.CollectionSections:   "/api/sections",
	models.CollectionActivities: "/api/activities",
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. The initial bearer token is taken from appCfg.Token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}
	a.SetToken(appCfg.Token)

	return a, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [ServerAdapter]. It issues GET / and ignores the status.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	_, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerTraceID, uuid.NewString()).
		Get("/")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrNetwork, err)
	}

	return nil
}

// CreatePresence implements [ServerAdapter].
func (h *httpServerAdapter) CreatePresence(ctx context.Context, presence models.OfflinePresence) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerIdempotencyKey, presence.TempID).
		SetBody(presence).
		Post(pathPresences)
	if err != nil {
		return fmt.Errorf("%w: create presence: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// CreatePresencesBulk implements [ServerAdapter]. A 2xx answer is decoded into
// [models.BulkPresenceResponse]; per-record errors are left to the caller.
func (h *httpServerAdapter) CreatePresencesBulk(ctx context.Context, req models.BulkPresenceRequest) (models.BulkPresenceResponse, error) {
	var result models.BulkPresenceResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathPresencesBulk)
	if err != nil {
		return result, fmt.Errorf("%w: create presences bulk: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("%w: bulk presences: %w", ErrInvalidResponse, err)
	}

	return result, nil
}

// CreateUniformInspection implements [ServerAdapter].
func (h *httpServerAdapter) CreateUniformInspection(ctx context.Context, inspection models.OfflineInspection) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerIdempotencyKey, inspection.TempID).
		SetBody(inspection).
		Post(pathUniformInspected)
	if err != nil {
		return fmt.Errorf("%w: create uniform inspection: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// GetCollection implements [ServerAdapter]. The backend answers either a
// bare JSON array or an object wrapping it under "data".
func (h *httpServerAdapter) GetCollection(ctx context.Context, collection models.Collection) ([]models.Entity, error) {
	path, ok := collectionPaths[collection]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrNetwork, collection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	entities, err := decodeEntities(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidResponse, collection, err)
	}

	return entities, nil
}

func decodeEntities(body []byte) ([]models.Entity, error) {
	body = bytes.TrimSpace(body)

	if bytes.HasPrefix(body, []byte("{")) {
		var envelope struct {
			Data []models.Entity `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		if envelope.Data == nil {
			return []models.Entity{}, nil
		}
		return envelope.Data, nil
	}

	entities := make([]models.Entity, 0)
	if err := json.Unmarshal(body, &entities); err != nil {
		return nil, err
	}

	return entities, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(headerTraceID, uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
