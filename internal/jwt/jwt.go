package jwt

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the service issues: the authenticated user's
// id and type. Handlers trust these values completely and perform their own
// per-operation authorization on top.
type Claims struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Option configures a JWT instance.
type Option func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(secretKey string) Option {
	return func(j *JWT) { j.secretKey = secretKey }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.exp = exp }
}

// New creates a new JWT instance.
func New(opts ...Option) *JWT {
	j := &JWT{
		secretKey: "secret",
		exp:       time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for the given user id and type.
func (j *JWT) Generate(ctx context.Context, userID int64, userType string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Validate checks the token signature and expiration.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
