package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/ajit-max/event/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

type identityCtxKey struct{}

type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*domain.Identity, error)
}

// Authenticate проверяет bearer-токен и кладёт личность пользователя в контекст запроса.
func Authenticate(guard Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity, err := guard.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			c.Set("error", err.Error())
			if errors.Is(err, domain.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serverErrorBody)
			return
		}

		c.Set(identityKey, identity)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// RequireAdmin должен стоять после Authenticate.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity := IdentityFrom(c.Request.Context())
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"message": "not authorized, no token"})
			return
		}
		if !identity.IsAdmin() {
			c.Set("error", "not authorized as an admin")
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"message": "not authorized as an admin"})
			return
		}

		c.Next()
	}
}

func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFrom(ctx context.Context) *domain.Identity {
	identity, _ := ctx.Value(identityCtxKey{}).(*domain.Identity)
	return identity
}
