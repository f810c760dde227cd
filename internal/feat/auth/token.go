package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims are embedded in the signed session token: subject identifier,
// role, and expiry. The token is minted at login and re-verified on every
// admin request; no session state is kept server-side.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenService signs and verifies compact HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret
// and token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Mint signs a token embedding the user's identifier, email and role.
func (t *TokenService) Mint(user *User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token string, returning its claims.
// Signature, expiry and signing method are all checked.
func (t *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// VerifyToken adapts Verify to the middleware's TokenVerifier contract.
func (t *TokenService) VerifyToken(tokenString string) (userID, email, role string, err error) {
	claims, err := t.Verify(tokenString)
	if err != nil {
		return "", "", "", err
	}
	return claims.UserID, claims.Email, claims.Role, nil
}

// TTL returns the configured token lifetime.
func (t *TokenService) TTL() time.Duration {
	return t.ttl
}

// Verifier adapts a Service to the middleware's TokenVerifier contract.
// The service builds its token machinery on Start, after middleware is
// already attached to the router, so the lookup is deferred to call time.
type Verifier struct {
	Service Service
}

func (v Verifier) VerifyToken(tokenString string) (userID, email, role string, err error) {
	tokens := v.Service.Tokens()
	if tokens == nil {
		return "", "", "", ErrInvalidToken
	}
	return tokens.VerifyToken(tokenString)
}
