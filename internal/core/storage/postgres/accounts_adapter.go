package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
	"github.com/lib/pq"
)

// AccountAdapter implements storage.AccountStore using PostgreSQL.
type AccountAdapter struct {
	db *sql.DB
}

// NewAccountAdapter creates a new AccountAdapter sharing the given connection.
func NewAccountAdapter(db *sql.DB) *AccountAdapter {
	return &AccountAdapter{db: db}
}

// SaveAccount inserts account and populates account.ID.
// Returns storage.ErrDuplicate if the email is already registered.
func (a *AccountAdapter) SaveAccount(ctx context.Context, account *v1.Account) error {
	var id int64
	err := a.db.QueryRowContext(ctx, queryInsertAccount,
		account.Email,
		account.Password,
		pq.Array(roleStrings(account.Roles)),
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	account.ID = id
	slog.Debug("[Postgres] Saved account", "account_id", id)
	return nil
}

func (a *AccountAdapter) FindAccountByEmail(ctx context.Context, email string) (*v1.Account, error) {
	acc, err := scanAccountRow(a.db.QueryRowContext(ctx, queryFindAccountByEmail, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return acc, nil
}

func (a *AccountAdapter) FindAccountByID(ctx context.Context, id int64) (*v1.Account, error) {
	acc, err := scanAccountRow(a.db.QueryRowContext(ctx, queryFindAccountByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account %d: %w", id, err)
	}
	return acc, nil
}
