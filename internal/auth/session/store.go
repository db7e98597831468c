package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/favourop/portfolio-backend/internal/auth"
)

const sessionKeyPrefix = "session:" // Key for session data: session:{token}

// Store keeps admin sessions in Redis. Tokens are opaque and expire via
// key TTL; there is no server-side sweep.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new session store
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) key(token string) string {
	return sessionKeyPrefix + token
}

// Create issues a fresh opaque token for the principal.
func (s *Store) Create(ctx context.Context, principal *auth.Principal) (string, error) {
	token := uuid.NewString()

	data, err := json.Marshal(principal)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session principal: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Get resolves a token to its principal, refusing expired or unknown
// tokens.
func (s *Store) Get(ctx context.Context, token string) (*auth.Principal, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var principal auth.Principal
	if err := json.Unmarshal(data, &principal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session principal: %w", err)
	}

	return &principal, nil
}

// Delete revokes a token. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Authorizer adapts the store to the authorization gate contract. It is
// the session-token variant of the gate.
type Authorizer struct {
	store *Store
}

var _ auth.Authorizer = (*Authorizer)(nil)

func NewAuthorizer(store *Store) *Authorizer {
	return &Authorizer{store: store}
}

func (a *Authorizer) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	return a.store.Get(ctx, token)
}
