package accounts

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptID = "bcrypt"

// ErrUnknownEncoding is returned when a stored hash has no recognized {id} prefix.
var ErrUnknownEncoding = errors.New("unknown password encoding")

// PasswordEncoder hashes passwords into a self-describing "{id}hash" form so
// the algorithm can change without invalidating stored credentials.
type PasswordEncoder struct {
	cost int
}

// NewPasswordEncoder returns an encoder that writes bcrypt hashes with the given cost.
// A cost of zero selects bcrypt.DefaultCost.
func NewPasswordEncoder(cost int) *PasswordEncoder {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordEncoder{cost: cost}
}

// Encode hashes raw and prefixes the result with the algorithm id.
func (e *PasswordEncoder) Encode(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return "{" + bcryptID + "}" + string(hash), nil
}

// Matches reports whether raw matches the encoded hash.
func (e *PasswordEncoder) Matches(raw, encoded string) (bool, error) {
	id, hash, ok := splitEncoded(encoded)
	if !ok {
		return false, ErrUnknownEncoding
	}

	switch id {
	case bcryptID:
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to compare password: %w", err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownEncoding, id)
	}
}

func splitEncoded(encoded string) (id, hash string, ok bool) {
	if !strings.HasPrefix(encoded, "{") {
		return "", "", false
	}
	end := strings.Index(encoded, "}")
	if end < 0 {
		return "", "", false
	}
	return encoded[1:end], encoded[end+1:], true
}
