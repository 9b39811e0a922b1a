// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/bestbox/bestbox/pkg/config"
)

// TokenValidator validates a bearer token and extracts the caller identity.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*UserContext, error)
}

// JWTValidator validates JWTs against a JWKS endpoint or an HMAC shared key.
type JWTValidator struct {
	issuer    string
	keySet    jwk.Set
	sharedKey []byte
}

// NewJWTValidator builds a validator from config. Exactly one of jwks_url or
// shared_key_env must be set.
func NewJWTValidator(ctx context.Context, cfg *config.AuthConfig) (*JWTValidator, error) {
	v := &JWTValidator{issuer: cfg.Issuer}

	switch {
	case cfg.JWKSURL != "":
		cache := jwk.NewCache(ctx)
		if err := cache.Register(cfg.JWKSURL); err != nil {
			return nil, fmt.Errorf("failed to register JWKS endpoint: %w", err)
		}
		v.keySet = jwk.NewCachedSet(cache, cfg.JWKSURL)
	case cfg.SharedKeyEnv != "":
		key := os.Getenv(cfg.SharedKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("shared key env %s is empty", cfg.SharedKeyEnv)
		}
		v.sharedKey = []byte(key)
	default:
		return nil, fmt.Errorf("auth enabled but neither jwks_url nor shared_key_env configured")
	}

	return v, nil
}

// Validate parses and verifies the token, then maps claims to a UserContext.
// Recognized claims: sub, org, roles, permissions.
func (v *JWTValidator) Validate(ctx context.Context, token string) (*UserContext, error) {
	opts := []jwt.ParseOption{jwt.WithContext(ctx), jwt.WithValidate(true)}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.keySet != nil {
		opts = append(opts, jwt.WithKeySet(v.keySet))
	} else {
		opts = append(opts, jwt.WithKey(jwa.HS256, v.sharedKey))
	}

	tok, err := jwt.Parse([]byte(token), opts...)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	uc := &UserContext{UserID: tok.Subject()}
	if org, ok := tok.Get("org"); ok {
		if s, ok := org.(string); ok {
			uc.OrgID = s
		}
	}
	uc.Roles = stringClaim(tok, "roles")
	uc.Permissions = stringClaim(tok, "permissions")

	return uc, nil
}

func stringClaim(tok jwt.Token, name string) []string {
	raw, ok := tok.Get(name)
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Middleware returns an HTTP middleware that authenticates requests and
// injects the UserContext. When validator is nil (auth disabled), identity
// is taken from the X-BestBox-User / X-BestBox-Org / X-BestBox-Permissions
// headers, falling back to a demo identity.
func Middleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validator == nil {
				next.ServeHTTP(w, r.WithContext(WithUserContext(r.Context(), headerIdentity(r))))
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":"missing bearer token"}`, http.StatusUnauthorized)
				return
			}

			uc, err := validator.Validate(r.Context(), strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserContext(r.Context(), uc)))
		})
	}
}

func headerIdentity(r *http.Request) *UserContext {
	uc := &UserContext{
		UserID: r.Header.Get("X-BestBox-User"),
		OrgID:  r.Header.Get("X-BestBox-Org"),
	}
	if uc.UserID == "" {
		uc.UserID = "demo"
	}
	if perms := r.Header.Get("X-BestBox-Permissions"); perms != "" {
		uc.Permissions = strings.Split(perms, ",")
	} else {
		uc.Permissions = []string{"erp:read", "crm:read", "it:read", "oa:read", "kb:read"}
	}
	return uc
}
