package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"dipadubank/internal/config"
	"dipadubank/internal/models"

	"github.com/google/uuid"
)

// AuthTransport adds the API key and JSON content type to every request
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

type accessCheckRequest struct {
	RoqUserID  string   `json:"roq_user_id"`
	TenantID   string   `json:"tenant_id"`
	Roles      []string `json:"roles"`
	Entity     string   `json:"entity"`
	Operation  string   `json:"operation"`
	ResourceID *string  `json:"resource_id,omitempty"`
}

type accessCheckResponse struct {
	Allowed bool `json:"allowed"`
}

// RemoteAuthorizer asks an external authorization service. Any failure to get
// an answer is returned as an error and the caller must deny.
type RemoteAuthorizer struct {
	baseURL string
	client  *http.Client
	breaker CircuitBreakerInterface
	logger  ResourceLoggerInterface
	metrics MetricsRecorderInterface
	slog    *slog.Logger
}

func NewRemoteAuthorizer(
	cfg config.AuthorizationConfig,
	logger ResourceLoggerInterface,
	metrics MetricsRecorderInterface,
	slogger *slog.Logger,
) AuthorizationServiceInterface {
	transport := &AuthTransport{
		apiKey: cfg.RemoteAPIKey,
		base:   http.DefaultTransport,
	}

	breakerConfig := DefaultCircuitBreakerConfig()
	if cfg.CircuitBreakerThreshold > 0 {
		breakerConfig.MaxFailures = cfg.CircuitBreakerThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		breakerConfig.ResetTimeout = cfg.CircuitBreakerTimeout
	}
	breakerConfig.OnStateChange = func(from, to models.CircuitBreakerState) {
		logger.LogCircuitBreakerStateChange(context.Background(), "authorization", from.String(), to.String())
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": "authorization"})
	}

	timeout := cfg.RemoteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &RemoteAuthorizer{
		baseURL: cfg.RemoteURL,
		client:  &http.Client{Transport: transport, Timeout: timeout},
		breaker: NewCircuitBreaker(breakerConfig),
		logger:  logger,
		metrics: metrics,
		slog:    slogger,
	}
}

func (a *RemoteAuthorizer) HasAccess(ctx context.Context, identity models.Identity, entity string, resourceID *uuid.UUID, op models.Operation) (bool, error) {
	if identity.RoqUserID == "" {
		recordDecision(ctx, a.logger, a.metrics, entity, op, resourceID, false)
		return false, nil
	}

	if a.breaker.IsOpen() {
		return false, ErrCircuitBreakerOpen
	}

	allowed, err := a.check(ctx, identity, entity, resourceID, op)
	if err != nil {
		a.breaker.RecordFailure()
		return false, err
	}
	a.breaker.RecordSuccess()

	recordDecision(ctx, a.logger, a.metrics, entity, op, resourceID, allowed)
	return allowed, nil
}

func (a *RemoteAuthorizer) check(ctx context.Context, identity models.Identity, entity string, resourceID *uuid.UUID, op models.Operation) (bool, error) {
	payload := accessCheckRequest{
		RoqUserID: identity.RoqUserID,
		TenantID:  identity.TenantID,
		Roles:     identity.Roles,
		Entity:    entity,
		Operation: string(op),
	}
	if resourceID != nil {
		id := resourceID.String()
		payload.ResourceID = &id
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/authorization/check", bytes.NewReader(b))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.slog.ErrorContext(ctx, "authorization request failed",
			"url", req.URL.String(),
			"error", err,
		)
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var decision accessCheckResponse
		if err := json.Unmarshal(body, &decision); err != nil {
			return false, fmt.Errorf("decode authorization response: %w", err)
		}
		return decision.Allowed, nil
	case http.StatusForbidden:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected authorization response (%d): %s", resp.StatusCode, string(body))
	}
}
