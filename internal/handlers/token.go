package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-job-market/internal/jwt"
	"github.com/sbilibin2017/gw-job-market/internal/logger"
)

// tokener is the token inspection contract shared by every authenticated
// handler. The per-handler tokener interfaces all satisfy it.
type tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UnauthorizedErrorResponse represents a missing or invalid token response
// swagger:model UnauthorizedErrorResponse
type UnauthorizedErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// authorize extracts and validates the bearer token, writing a 401 response
// on failure. The second return value reports whether the request may
// proceed.
func authorize(ctx context.Context, w http.ResponseWriter, r *http.Request, tokenGetter tokener) (*jwt.Claims, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(UnauthorizedErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(UnauthorizedErrorResponse{
			Error: "Unauthorized",
		})
		return nil, false
	}

	return claims, true
}
