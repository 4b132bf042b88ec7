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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buraksezer/olric"
	"github.com/pandamonium-social/pandamonium-backend/context"
	"github.com/pandamonium-social/pandamonium-backend/service"
	"github.com/pandamonium-social/pandamonium-backend/view"
	"github.com/pandamonium-social/pandamonium-backend/websocket"
)

type stubUserService struct {
	user *view.User
}

func (s stubUserService) RegisterUser(view.UserRegistrationReq) (*view.User, error) {
	return s.user, nil
}
func (s stubUserService) AuthenticateUser(string, string) (*view.User, error) {
	return s.user, nil
}
func (s stubUserService) GetUserProfile(string, string) (*view.User, error) {
	return s.user, nil
}
func (s stubUserService) GetUsersByIds([]string) ([]view.User, error) {
	return nil, nil
}
func (s stubUserService) UpdateUserProfile(string, view.UserProfilePatch) (*view.User, error) {
	return s.user, nil
}
func (s stubUserService) AddFriend(string, string) (*view.User, error) {
	return s.user, nil
}
func (s stubUserService) AddRelation(string, string) (*view.User, error) {
	return s.user, nil
}
func (s stubUserService) StoreUserAvatar(string, []byte) error {
	return nil
}
func (s stubUserService) GetUserAvatar(string) (*view.UserAvatar, error) {
	return nil, nil
}
func (s stubUserService) TrackBambooMembership(string, string) error {
	return nil
}

type stubEventBus struct {
	loggedEvents []websocket.UserLoggedEvent
}

func (s *stubEventBus) TrackSession(string) error                      { return nil }
func (s *stubEventBus) HasBranchSession(string) (bool, error)          { return false, nil }
func (s *stubEventBus) ListSessions() ([]service.WsBusSession, error)  { return nil, nil }
func (s *stubEventBus) ListNodes() ([]string, error)                   { return nil, nil }
func (s *stubEventBus) GetBindAddr() string                            { return "" }
func (s *stubEventBus) GetUserLoggedTopic() *olric.DTopic              { return nil }
func (s *stubEventBus) GetUserMessageTopic() *olric.DTopic             { return nil }
func (s *stubEventBus) PublishUserMessage(websocket.UserMessageEvent)  {}
func (s *stubEventBus) PublishUserLogged(e websocket.UserLoggedEvent) {
	s.loggedEvents = append(s.loggedEvents, e)
}

func setupSessionStore(t *testing.T) {
	systemService, err := service.NewSystemInfoService()
	if err != nil {
		t.Fatalf("failed to read system configuration: %v", err)
	}
	if err := SetupGoGuardian(systemService); err != nil {
		t.Fatalf("failed to setup authentication: %v", err)
	}
}

func TestLoginDestroysPreviousSession(t *testing.T) {
	setupSessionStore(t)

	user := view.User{Uuid: "11111111-1111-1111-1111-111111111111", Username: "amelie"}
	previousToken, err := CreateSession(user)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	eventBus := &stubEventBus{}
	authController := NewAuthController(stubUserService{user: &user}, eventBus)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"identifier":"amelie","password":"pandamonium"}`))
	r.AddCookie(&http.Cookie{Name: context.SessionCookieName, Value: previousToken})
	w := httptest.NewRecorder()
	authController.Login(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if _, exists := sessionCache.Load(previousToken); exists {
		t.Error("expected the session presented at login to be destroyed")
	}

	var resp view.UserLoginResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if resp.Token == previousToken {
		t.Error("expected login to issue a fresh session token")
	}
	if _, exists := sessionCache.Load(resp.Token); !exists {
		t.Error("expected the fresh session token to be registered")
	}
	if len(eventBus.loggedEvents) != 1 {
		t.Errorf("expected one user_logged event, got %d", len(eventBus.loggedEvents))
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	setupSessionStore(t)

	user := view.User{Uuid: "22222222-2222-2222-2222-222222222222", Username: "benoit"}
	sessionToken, err := CreateSession(user)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	authController := NewAuthController(stubUserService{user: &user}, &stubEventBus{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	r.AddCookie(&http.Cookie{Name: context.SessionCookieName, Value: sessionToken})
	w := httptest.NewRecorder()
	authController.Logout(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if _, exists := sessionCache.Load(sessionToken); exists {
		t.Error("expected the session to be destroyed on logout")
	}
}
