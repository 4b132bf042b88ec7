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

package repository

import (
	"net/http"
	"testing"

	"github.com/pandamonium-social/pandamonium-backend/exception"
)

func assertMissingFetchIdentifier(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	customError, ok := err.(*exception.CustomError)
	if !ok {
		t.Fatalf("expected CustomError, got %T: %v", err, err)
	}
	if customError.Code != exception.MissingFetchIdentifier {
		t.Errorf("expected code %s, got %s", exception.MissingFetchIdentifier, customError.Code)
	}
	if customError.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", customError.Status)
	}
}

func TestFetchWithoutIdentifierIsHardError(t *testing.T) {
	userRepository, err := NewUserRepositoryPG(nil)
	if err != nil {
		t.Fatalf("failed to create user repository: %v", err)
	}
	bambooRepository := NewBambooRepositoryPG(nil)
	branchRepository := NewBranchRepositoryPG(nil)
	messageRepository := NewMessageRepositoryPG(nil)
	roleRepository := NewRoleRepositoryPG(nil)

	testCases := []struct {
		name  string
		fetch func() error
	}{
		{"UserById", func() error { _, err := userRepository.GetUserById(""); return err }},
		{"UserByUsername", func() error { _, err := userRepository.GetUserByUsername(""); return err }},
		{"UserByEmail", func() error { _, err := userRepository.GetUserByEmail(""); return err }},
		{"UserAvatar", func() error { _, err := userRepository.GetUserAvatar(""); return err }},
		{"BambooById", func() error { _, err := bambooRepository.GetBambooById(""); return err }},
		{"BranchById", func() error { _, err := branchRepository.GetBranchById(""); return err }},
		{"MessageById", func() error { _, err := messageRepository.GetMessageById(""); return err }},
		{"RoleById", func() error { _, err := roleRepository.GetRoleById(""); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertMissingFetchIdentifier(t, tc.fetch())
		})
	}
}
