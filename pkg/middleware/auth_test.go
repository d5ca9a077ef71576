package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinema-tickets/pkg/identity"
	"cinema-tickets/pkg/middleware"
	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver struct {
	userID uuid.UUID
	err    error
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	return s.userID, nil
}

func runAuth(t *testing.T, resolver identity.Resolver, authHeader string) (*httptest.ResponseRecorder, *uuid.UUID) {
	t.Helper()

	var seen *uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
			seen = &id
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	middleware.Authenticate(resolver, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthenticate_Success(t *testing.T) {
	userID := uuid.New()
	rec, seen := runAuth(t, &stubResolver{userID: userID}, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, userID, *seen)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec, seen := runAuth(t, &stubResolver{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthenticate_BadFormat(t *testing.T) {
	rec, seen := runAuth(t, &stubResolver{}, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	rec, seen := runAuth(t, &stubResolver{err: identity.ErrUnknownToken}, "Bearer stale")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthenticate_ResolverFailure(t *testing.T) {
	rec, seen := runAuth(t, &stubResolver{err: errors.New("identity service unreachable")}, "Bearer token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, seen)
}
