package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eventdesk-lab/eventdesk/internal/accounts"
	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
	"github.com/eventdesk-lab/eventdesk/internal/metrics"
	"github.com/gin-gonic/gin"
)

const (
	grantPassword     = "password"
	grantRefreshToken = "refresh_token"

	tokenScope = "read write"
)

// OAuth2 error codes (RFC 6749 section 5.2).
const (
	errInvalidRequest       = "invalid_request"
	errInvalidClient        = "invalid_client"
	errInvalidGrant         = "invalid_grant"
	errUnsupportedGrantType = "unsupported_grant_type"
	errInvalidToken         = "invalid_token"
	errUnauthorized         = "unauthorized"
	errServerError          = "server_error"
)

// AccountService is the subset of accounts.Service the token endpoint and middleware need.
type AccountService interface {
	Authenticate(ctx context.Context, email, password string) (*v1.Account, error)
	LoadByID(ctx context.Context, id int64) (*v1.Account, error)
}

// ClientCredentials identifies the single OAuth2 client allowed to request tokens.
type ClientCredentials struct {
	ID     string
	Secret string
}

// oauthError carries an RFC 6749 error response back to the handler.
type oauthError struct {
	statusCode  int
	code        string
	description string
}

func (e *oauthError) Error() string {
	return e.description
}

// TokenResponse is the successful /oauth/token body.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// Handler serves the OAuth2 token endpoint.
type Handler struct {
	client   ClientCredentials
	tokens   *TokenService
	accounts AccountService
	metrics  *metrics.Metrics
}

func NewHandler(client ClientCredentials, tokens *TokenService, accounts AccountService, m *metrics.Metrics) *Handler {
	return &Handler{client: client, tokens: tokens, accounts: accounts, metrics: m}
}

// RegisterRoutes wires the token endpoint to the provided router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/oauth/token", h.TokenHandler)
}

// TokenHandler implements the password and refresh_token grants.
func (h *Handler) TokenHandler(c *gin.Context) {
	if err := h.authenticateClient(c); err != nil {
		c.Header("WWW-Authenticate", `Basic realm="oauth2/client"`)
		writeOAuthError(c, err)
		return
	}

	grantType := c.PostForm("grant_type")

	var (
		account *v1.Account
		err     *oauthError
	)
	switch grantType {
	case grantPassword:
		account, err = h.passwordGrant(c)
	case grantRefreshToken:
		account, err = h.refreshGrant(c)
	case "":
		err = &oauthError{http.StatusBadRequest, errInvalidRequest, "Missing grant type"}
	default:
		err = &oauthError{http.StatusBadRequest, errUnsupportedGrantType, "Unsupported grant type: " + grantType}
	}
	if err != nil {
		writeOAuthError(c, err)
		return
	}

	pair, issueErr := h.tokens.Issue(account)
	if issueErr != nil {
		slog.Error("Failed to issue tokens", "error", issueErr, "account_id", account.ID)
		writeOAuthError(c, &oauthError{http.StatusInternalServerError, errServerError, "Failed to issue token"})
		return
	}

	h.metrics.TokenIssued(grantType)
	slog.Info("Issued access token", "account_id", account.ID, "grant_type", grantType)

	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, TokenResponse{
		AccessToken:  pair.AccessToken,
		TokenType:    "bearer",
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		Scope:        tokenScope,
	})
}

func (h *Handler) authenticateClient(c *gin.Context) *oauthError {
	id, secret, ok := c.Request.BasicAuth()
	if !ok {
		return &oauthError{http.StatusUnauthorized, errInvalidClient, "Full authentication is required to access this resource"}
	}
	idOK := subtle.ConstantTimeCompare([]byte(id), []byte(h.client.ID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(secret), []byte(h.client.Secret)) == 1
	if !idOK || !secretOK {
		slog.Warn("Rejected token request with bad client credentials", "client_id", id)
		return &oauthError{http.StatusUnauthorized, errInvalidClient, "Bad client credentials"}
	}
	return nil
}

func (h *Handler) passwordGrant(c *gin.Context) (*v1.Account, *oauthError) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		return nil, &oauthError{http.StatusBadRequest, errInvalidRequest, "Missing username or password"}
	}

	account, err := h.accounts.Authenticate(c.Request.Context(), username, password)
	if errors.Is(err, accounts.ErrBadCredentials) {
		slog.Info("Rejected password grant", "username", username)
		return nil, &oauthError{http.StatusBadRequest, errInvalidGrant, "Bad credentials"}
	}
	if err != nil {
		slog.Error("Failed to authenticate account", "error", err, "username", username)
		return nil, &oauthError{http.StatusInternalServerError, errServerError, "Failed to authenticate"}
	}
	return account, nil
}

func (h *Handler) refreshGrant(c *gin.Context) (*v1.Account, *oauthError) {
	raw := c.PostForm("refresh_token")
	if raw == "" {
		return nil, &oauthError{http.StatusBadRequest, errInvalidRequest, "Missing refresh token"}
	}

	claims, err := h.tokens.Parse(raw, TokenTypeRefresh)
	if err != nil {
		slog.Info("Rejected refresh grant", "error", err)
		return nil, &oauthError{http.StatusBadRequest, errInvalidGrant, "Invalid refresh token"}
	}

	id, _ := claims.AccountID()
	account, err := h.accounts.LoadByID(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &oauthError{http.StatusBadRequest, errInvalidGrant, "Invalid refresh token"}
	}
	if err != nil {
		slog.Error("Failed to load account for refresh", "error", err, "account_id", id)
		return nil, &oauthError{http.StatusInternalServerError, errServerError, "Failed to load account"}
	}
	return account, nil
}

// writeOAuthError serializes an oauthError as an RFC 6749 error body.
func writeOAuthError(c *gin.Context, err *oauthError) {
	c.AbortWithStatusJSON(err.statusCode, gin.H{
		"error":             err.code,
		"error_description": err.description,
	})
}
