package credentials

import (
	"context"
	"event-staffing-service/internal/domain"
	"event-staffing-service/internal/ports"
	"fmt"
	"strings"
)

// APIKey binds the routing credential to its fixed name in a KeyValueStore.
type APIKey struct {
	store ports.KeyValueStore
	name  string
}

func NewAPIKey(store ports.KeyValueStore) *APIKey {
	return &APIKey{store: store, name: domain.CredentialKey}
}

func (a *APIKey) Get(ctx context.Context) (string, bool, error) {
	v, found, err := a.store.GetKey(ctx, a.name)
	if err != nil {
		return "", false, fmt.Errorf("get api key: %w", err)
	}

	v = strings.TrimSpace(v)
	if !found || v == "" {
		return "", false, nil
	}

	return v, true, nil
}

func (a *APIKey) Set(ctx context.Context, value string) error {
	if err := a.store.SetKey(ctx, a.name, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("set api key: %w", err)
	}
	return nil
}

func (a *APIKey) Remove(ctx context.Context) error {
	if err := a.store.DeleteKey(ctx, a.name); err != nil {
		return fmt.Errorf("remove api key: %w", err)
	}
	return nil
}
