// Package identity is the client side of the external identity
// collaborator. This service never manages credentials itself; it only
// exchanges an opaque bearer token for the user ID that owns it.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownToken is returned when the identity service does not
// recognize the presented token. Handlers translate it into a 401.
var ErrUnknownToken = errors.New("unknown or expired token")

// Resolver exchanges a bearer token for the authenticated user ID.
type Resolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// HTTPResolver asks the identity service over HTTP.
type HTTPResolver struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPResolver(config utils.IdentityConfig, log *zap.Logger) *HTTPResolver {
	return &HTTPResolver{
		baseURL: config.BaseURL,
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("client", "identity")),
	}
}

func (r *HTTPResolver) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v1/userinfo", nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Error("Identity service unreachable", zap.Error(err))
		return uuid.Nil, fmt.Errorf("call identity service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return uuid.Nil, ErrUnknownToken
	default:
		r.log.Error("Unexpected identity service response", zap.Int("status", resp.StatusCode))
		return uuid.Nil, fmt.Errorf("identity service returned %d", resp.StatusCode)
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return uuid.Nil, fmt.Errorf("decode userinfo response: %w", err)
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identity service returned malformed user id %q: %w", body.UserID, err)
	}

	return userID, nil
}
