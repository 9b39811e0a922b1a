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

// Package auth validates caller identity and carries it through the request
// context. Tools consult UserContext.Permissions before dispatching.
package auth

import (
	"context"
)

// UserContext is the caller identity attached to every turn.
type UserContext struct {
	UserID      string   `json:"user_id"`
	OrgID       string   `json:"org_id,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether the caller holds the given permission tag.
func (u *UserContext) HasPermission(tag string) bool {
	if u == nil {
		return false
	}
	for _, p := range u.Permissions {
		if p == tag {
			return true
		}
	}
	return false
}

type contextKey struct{}

// WithUserContext attaches the user context to ctx.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, contextKey{}, uc)
}

// FromContext extracts the user context, or nil when absent.
func FromContext(ctx context.Context) *UserContext {
	uc, _ := ctx.Value(contextKey{}).(*UserContext)
	return uc
}
