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

package service

import (
	"net/http"
	"testing"

	"github.com/pandamonium-social/pandamonium-backend/entity"
	"github.com/pandamonium-social/pandamonium-backend/exception"
)

type stubUserRepository struct {
	users map[string]*entity.UserEntity
}

func (s stubUserRepository) SaveUser(*entity.UserEntity) error { return nil }
func (s stubUserRepository) GetUserById(userId string) (*entity.UserEntity, error) {
	return s.users[userId], nil
}
func (s stubUserRepository) GetUserByUsername(string) (*entity.UserEntity, error) {
	return nil, nil
}
func (s stubUserRepository) GetUserByEmail(string) (*entity.UserEntity, error) {
	return nil, nil
}
func (s stubUserRepository) GetUsersByIds([]string) ([]entity.UserEntity, error) {
	return nil, nil
}
func (s stubUserRepository) UpdateUserColumns(*entity.UserEntity, []string) error {
	return nil
}
func (s stubUserRepository) GetUserAvatar(string) (*entity.UserAvatarEntity, error) {
	return nil, nil
}
func (s stubUserRepository) SaveUserAvatar(*entity.UserAvatarEntity) error { return nil }

func TestGetUserProfileUnknownUser(t *testing.T) {
	userService := NewUserService(stubUserRepository{users: map[string]*entity.UserEntity{}})

	user, err := userService.GetUserProfile("99999999-9999-9999-9999-999999999999", "99999999-9999-9999-9999-999999999999")
	if user != nil {
		t.Errorf("expected no user, got %+v", user)
	}
	if err == nil {
		t.Fatal("expected a not-found error, got nil")
	}
	customError, ok := err.(*exception.CustomError)
	if !ok {
		t.Fatalf("expected CustomError, got %T: %v", err, err)
	}
	if customError.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", customError.Status)
	}
	if customError.Code != exception.UserNotFound {
		t.Errorf("expected code %s, got %s", exception.UserNotFound, customError.Code)
	}
}
