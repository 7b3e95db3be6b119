package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
)

// SeedAccount is one bootstrap account from configuration.
type SeedAccount struct {
	Email    string
	Password string
	Roles    []v1.AccountRole
}

// Seed creates every account whose email is not registered yet and returns how many were created.
// Running it again is a no-op.
func (s *Service) Seed(ctx context.Context, seeds []SeedAccount) (int, error) {
	created := 0
	for _, seed := range seeds {
		_, err := s.store.FindAccountByEmail(ctx, seed.Email)
		if err == nil {
			slog.Debug("Seed account exists, skipping", "email", seed.Email)
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return created, fmt.Errorf("failed to look up seed account %s: %w", seed.Email, err)
		}

		account := &v1.Account{
			Email:    seed.Email,
			Password: seed.Password,
			Roles:    append([]v1.AccountRole(nil), seed.Roles...),
		}
		if err := s.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				// Created concurrently by another instance.
				continue
			}
			return created, fmt.Errorf("failed to seed account %s: %w", seed.Email, err)
		}
		created++
	}

	slog.Info("Account seeding completed", "requested", len(seeds), "created", created)
	return created, nil
}
