package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/calldesk/callcenter-backend-go/internal/domain/auth"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
)

// identityFromRequest resolves the authenticated caller from the verified
// access-token claims. AuthRequired has already rejected anything else.
func identityFromRequest(r *http.Request) (user.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Identity{}, auth.ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return user.Identity{}, auth.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return user.Identity{
		ID:    id,
		Email: email,
		Name:  name,
		Role:  user.Role(role),
	}, nil
}
