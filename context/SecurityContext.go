// Copyright 2024-2025 NetCracker Technology Corporation
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

package context

import (
	"net/http"
	"strings"

	"github.com/shaj13/go-guardian/v2/auth"
)

const UsernameExt = "username"

// SessionCookieName holds the opaque session token on the browser side.
const SessionCookieName = "pandamonium_session"

type SecurityContext interface {
	GetUserId() string
	GetUsername() string
	GetSessionToken() string
}

func Create(r *http.Request) SecurityContext {
	user := auth.User(r)
	return &securityContextImpl{
		userId:   user.GetID(),
		username: user.GetExtensions().Get(UsernameExt),
		token:    GetSessionToken(r),
	}
}

func CreateSystemContext() SecurityContext {
	return &securityContextImpl{userId: "system"}
}

func CreateFromId(userId string) SecurityContext {
	return &securityContextImpl{
		userId: userId,
	}
}

type securityContextImpl struct {
	userId   string
	username string
	token    string
}

func (ctx securityContextImpl) GetUserId() string {
	return ctx.userId
}

func (ctx securityContextImpl) GetUsername() string {
	return ctx.username
}

func (ctx securityContextImpl) GetSessionToken() string {
	return ctx.token
}

// GetSessionToken reads the session token from the cookie, falling back to a
// bearer Authorization header for non-browser clients.
func GetSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authorizationHeaderValue := r.Header.Get("authorization")
	return strings.ReplaceAll(authorizationHeaderValue, "Bearer ", "")
}
