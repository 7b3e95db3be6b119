package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// ErrInvalidToken is returned by Parse for any token that must not be honored.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT body of both token types.
type Claims struct {
	Email string    `json:"email"`
	Roles []string  `json:"roles"`
	Type  TokenType `json:"typ"`
	jwt.StandardClaims
}

// AccountID returns the subject as an account id.
func (c *Claims) AccountID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// TokenPair is the result of a successful grant.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenConfig configures a TokenService.
type TokenConfig struct {
	SigningKey      string
	ResourceID      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// TokenService signs and verifies HS256 tokens.
type TokenService struct {
	key        []byte
	resourceID string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	return &TokenService{
		key:        []byte(cfg.SigningKey),
		resourceID: cfg.ResourceID,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        time.Now,
	}
}

// Issue signs a new access and refresh token for account.
func (s *TokenService) Issue(account *v1.Account) (*TokenPair, error) {
	access, err := s.sign(account, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(account, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL / time.Second),
	}, nil
}

func (s *TokenService) sign(account *v1.Account, typ TokenType, ttl time.Duration) (string, error) {
	now := s.now()
	roles := make([]string, 0, len(account.Roles))
	for _, r := range account.Roles {
		roles = append(roles, string(r))
	}

	claims := Claims{
		Email: account.Email,
		Roles: roles,
		Type:  typ,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			Audience:  s.resourceID,
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}
	return signed, nil
}

// Parse verifies the signature, expiry, audience and type of a token.
func (s *TokenService) Parse(tokenString string, want TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyAudience(s.resourceID, true) {
		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}
	if claims.Type != want {
		return nil, fmt.Errorf("%w: expected %s token", ErrInvalidToken, want)
	}
	if _, err := claims.AccountID(); err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}
	return claims, nil
}
