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

package entity

import (
	"strings"
	"testing"

	"github.com/pandamonium-social/pandamonium-backend/exception"
)

func TestNewRoleRecordHierarchyBounds(t *testing.T) {
	testCases := []struct {
		name      string
		hierarchy int
		valid     bool
	}{
		{"Min", 0, true},
		{"Max", 100, true},
		{"BelowMin", -1, false},
		{"AboveMax", 101, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			roleEntity := &RoleEntity{
				Name:       "Jardinier",
				Hierarchy:  tc.hierarchy,
				BambooUuid: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
			}
			roleRecord, err := NewRoleRecord(roleEntity)
			if tc.valid {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if !roleRecord.Valid() {
					t.Error("expected a valid record")
				}
			} else {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if err.Error() != exception.RoleHierarchyOutOfRangeMsg {
					t.Errorf("expected message %q, got %q", exception.RoleHierarchyOutOfRangeMsg, err.Error())
				}
			}
		})
	}
}

func TestNewRoleRecordRejectsLongName(t *testing.T) {
	roleEntity := &RoleEntity{
		Name:       strings.Repeat("a", 51),
		Hierarchy:  10,
		BambooUuid: "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
	}
	_, err := NewRoleRecord(roleEntity)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != exception.RoleNameTooLongMsg {
		t.Errorf("expected message %q, got %q", exception.RoleNameTooLongMsg, err.Error())
	}
}
