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

package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/pandamonium-social/pandamonium-backend/context"
	"github.com/pandamonium-social/pandamonium-backend/metrics"
	"github.com/pandamonium-social/pandamonium-backend/service"
	"github.com/pandamonium-social/pandamonium-backend/view"
	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/token"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
)

// Sessions are opaque server-side tokens: the browser holds a random token in
// a cookie, the server maps it to the authenticated user (id and username).
// Restarting the node logs everyone out, which is acceptable for now.

var sessionStrategy auth.Strategy
var sessionCache libcache.Cache
var systemInfoService service.SystemInfoService

func SetupGoGuardian(systemService service.SystemInfoService) error {
	systemInfoService = systemService

	sessionTTL := time.Duration(systemInfoService.GetSessionTTLMinutes()) * time.Minute
	sessionCache = libcache.LRU.New(10000)
	sessionCache.SetTTL(sessionTTL)
	sessionCache.RegisterOnExpired(func(key, _ interface{}) {
		sessionCache.Delete(key)
		metrics.ActiveSessionCount.WithLabelValues().Set(float64(sessionCache.Len()))
	})
	// NoOpAuthenticate rejects every cache miss, so only tokens issued by
	// CreateSession ever authenticate.
	sessionStrategy = token.New(token.NoOpAuthenticate, sessionCache, token.SetParser(sessionTokenParser{}))
	return nil
}

type sessionTokenParser struct{}

func (sessionTokenParser) Token(r *http.Request) (string, error) {
	if t := context.GetSessionToken(r); t != "" {
		return t, nil
	}
	return "", token.ErrInvalidToken
}

// CreateSession issues a fresh session token for the authenticated user and
// registers it in the session store.
func CreateSession(user view.User) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	sessionToken := hex.EncodeToString(raw)

	extensions := auth.Extensions{}
	extensions.Set(context.UsernameExt, user.Username)
	sessionCache.Store(sessionToken, auth.NewUserInfo(user.Username, user.Uuid, []string{}, extensions))
	metrics.ActiveSessionCount.WithLabelValues().Set(float64(sessionCache.Len()))

	return sessionToken, nil
}

func DestroySession(sessionToken string) {
	if sessionToken == "" {
		return
	}
	sessionCache.Delete(sessionToken)
	metrics.ActiveSessionCount.WithLabelValues().Set(float64(sessionCache.Len()))
}

// SessionCookie builds the http cookie carrying the session token.
func SessionCookie(sessionToken string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     context.SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   systemInfoService.IsProductionMode(),
		MaxAge:   maxAge,
	}
}
