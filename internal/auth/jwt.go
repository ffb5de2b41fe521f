package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"article-generator/internal/domain"
)

// supabaseAudience is the audience Supabase puts on signed-in user tokens.
const supabaseAudience = "authenticated"

var (
	ErrMissingToken = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid token")
)

// userClaims are the Supabase access token claims used here.
type userClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// JWTVerifier verifies Supabase access tokens locally with the project's
// HS256 JWT secret.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token and returns the identity it carries.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*domain.Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &userClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(supabaseAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*userClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &domain.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
