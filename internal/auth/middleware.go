package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const accountContextKey = "eventdesk.account"

// Authenticate resolves an optional "Authorization: Bearer" access token to an
// account and stores it on the context. Requests without a bearer token pass
// through anonymously; a bearer token that fails verification is rejected with 401.
func Authenticate(tokens *TokenService, accounts AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := tokens.Parse(raw, TokenTypeAccess)
		if err != nil {
			slog.Info("Rejected bearer token", "error", err, "path", c.Request.URL.Path)
			rejectToken(c, "Invalid access token")
			return
		}

		id, _ := claims.AccountID()
		account, err := accounts.LoadByID(c.Request.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			slog.Info("Bearer token references unknown account", "account_id", id)
			rejectToken(c, "Invalid access token")
			return
		}
		if err != nil {
			slog.Error("Failed to load account for bearer token", "error", err, "account_id", id)
			writeOAuthError(c, &oauthError{http.StatusInternalServerError, errServerError, "Failed to load account"})
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

// RequireAccount rejects anonymous requests with 401.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentAccount(c) == nil {
			c.Header("WWW-Authenticate", `Bearer realm="eventdesk"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":             errUnauthorized,
				"error_description": "Full authentication is required to access this resource",
			})
			return
		}
		c.Next()
	}
}

// CurrentAccount returns the authenticated account, or nil for anonymous requests.
func CurrentAccount(c *gin.Context) *v1.Account {
	v, ok := c.Get(accountContextKey)
	if !ok {
		return nil
	}
	account, _ := v.(*v1.Account)
	return account
}

// SetCurrentAccount stores account on the context as Authenticate would.
func SetCurrentAccount(c *gin.Context, account *v1.Account) {
	c.Set(accountContextKey, account)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func rejectToken(c *gin.Context, description string) {
	c.Header("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+description+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":             errInvalidToken,
		"error_description": description,
	})
}
