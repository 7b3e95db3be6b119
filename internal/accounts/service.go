package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
)

// ErrBadCredentials is returned by Authenticate for an unknown email or a wrong password.
var ErrBadCredentials = errors.New("bad credentials")

// UsernameNotFoundError is returned by LoadByUsername when no account has the email.
type UsernameNotFoundError struct {
	Username string
}

func (e *UsernameNotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.Username)
}

// Service manages account persistence and credential checks.
type Service struct {
	store   storage.AccountStore
	encoder *PasswordEncoder
}

func NewService(store storage.AccountStore, encoder *PasswordEncoder) *Service {
	return &Service{store: store, encoder: encoder}
}

// SaveAccount normalizes roles, hashes the raw password and persists the account.
// On success account holds the stored id, email, roles and encoded hash; on
// failure it is left untouched. A taken email yields storage.ErrDuplicate.
func (s *Service) SaveAccount(ctx context.Context, account *v1.Account) error {
	email := strings.TrimSpace(account.Email)
	if email == "" {
		return errors.New("account email is required")
	}

	encoded, err := s.encoder.Encode(account.Password)
	if err != nil {
		return err
	}

	stored := v1.Account{
		Email:    email,
		Password: encoded,
		Roles:    v1.NormalizeRoles(account.Roles),
	}
	if err := s.store.SaveAccount(ctx, &stored); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("failed to save account: %w", err)
	}

	*account = stored
	slog.Info("Account saved", "account_id", account.ID, "roles", account.Roles)
	return nil
}

// LoadByUsername looks an account up by its login email.
func (s *Service) LoadByUsername(ctx context.Context, username string) (*v1.Account, error) {
	acc, err := s.store.FindAccountByEmail(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &UsernameNotFoundError{Username: username}
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// LoadByID resolves the account a token subject refers to.
func (s *Service) LoadByID(ctx context.Context, id int64) (*v1.Account, error) {
	return s.store.FindAccountByID(ctx, id)
}

// Authenticate checks the email/password pair and returns the account on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*v1.Account, error) {
	acc, err := s.LoadByUsername(ctx, email)
	if err != nil {
		var notFound *UsernameNotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	ok, err := s.encoder.Matches(password, acc.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBadCredentials
	}
	return acc, nil
}
