package v1

import "sort"

// AccountRole is an authority granted to an account.
type AccountRole string

const (
	RoleAdmin AccountRole = "ADMIN"
	RoleUser  AccountRole = "USER"
)

// Account is a login identity. Email is the unique username.
type Account struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`

	// Password holds the encoded hash, prefixed with its encoder id (e.g. "{bcrypt}").
	Password string `json:"-"`

	// Roles is a distinct set; see NormalizeRoles.
	Roles []AccountRole `json:"roles"`
}

// HasRole reports whether the account holds role.
func (a *Account) HasRole(role AccountRole) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeRoles returns roles with duplicates and empty entries removed, in a stable order.
func NormalizeRoles(roles []AccountRole) []AccountRole {
	seen := make(map[AccountRole]struct{}, len(roles))
	out := make([]AccountRole, 0, len(roles))
	for _, r := range roles {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
