package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/course-tutor/internal/domain"
	"github.com/bnema/course-tutor/internal/ports"
)

var ErrEmptySecret = errors.New("secret value is empty")

// CredentialService manages the secrets the tutor needs at runtime: the
// platform password, the web service token and the reasoning API key.
type CredentialService struct {
	store ports.SecretStore
}

func NewCredentialService(store ports.SecretStore) *CredentialService {
	return &CredentialService{store: store}
}

// Set stores value under name and returns the namespaced key it used.
func (s *CredentialService) Set(ctx context.Context, name string, value string) (string, error) {
	key, err := domain.SecretKey(name)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return "", ErrEmptySecret
	}

	if err := s.store.Put(ctx, key, value); err != nil {
		return "", fmt.Errorf("store secret %q: %w", key, err)
	}
	return key, nil
}

func (s *CredentialService) Remove(ctx context.Context, name string) (string, error) {
	key, err := domain.SecretKey(name)
	if err != nil {
		return "", err
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return "", fmt.Errorf("delete secret %q: %w", key, err)
	}
	return key, nil
}

// Resolve reads the secret a configuration *_ref entry points at.
func (s *CredentialService) Resolve(ctx context.Context, ref string) (string, error) {
	key, err := domain.SecretKey(ref)
	if err != nil {
		return "", err
	}

	value, err := s.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("resolve secret %q: %w", key, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("resolve secret %q: %w", key, ErrEmptySecret)
	}
	return value, nil
}
