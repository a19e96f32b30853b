package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the access token payload issued by the identity provider.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 access tokens. Issuing tokens is the identity provider's job.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Verify parses tokenString and returns the caller identity it carries.
func (v *Verifier) Verify(tokenString string) (entity.Identity, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return entity.Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	role := entity.UserRole(claims.Role)
	if role != entity.UserRoleAdmin {
		role = entity.DefaultRole()
	}
	return entity.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     role,
	}, nil
}
