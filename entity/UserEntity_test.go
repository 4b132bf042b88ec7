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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pandamonium-social/pandamonium-backend/exception"
)

func validUserEntity() *UserEntity {
	return &UserEntity{
		Username:           "panda.roux",
		Email:              "panda@example.fr",
		Password:           "motdepasse",
		DateOfBirth:        time.Now().AddDate(-20, 0, 0),
		RegistrationDate:   time.Now(),
		LastConnectionDate: time.Now(),
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "panda.roux", "a_b-c.d", "seize_caracteres"}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("expected %q to be a valid username", username)
		}
	}
	invalid := []string{"", "ab", "dix.sept.caracteres", "avec espace", "accentué", "em@il"}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("expected %q to be rejected", username)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.fr", "panda.roux@mail.example.com", "p-r_1@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be a valid email", email)
		}
	}
	invalid := []string{"", "plainaddress", "@no-local.fr", "no-domain@", "user@domain", "user@domain.toolong"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}

func TestNewUserRecordValid(t *testing.T) {
	userRecord, err := NewUserRecord(validUserEntity())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !userRecord.Valid() {
		t.Error("expected a valid record")
	}
}

func TestNewUserRecordRejectsYoungUser(t *testing.T) {
	userEntity := validUserEntity()
	userEntity.DateOfBirth = time.Now().AddDate(-14, 0, 0)

	userRecord, err := NewUserRecord(userEntity)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var customErr *exception.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	if customErr.Message != exception.DateOfBirthTooYoungMsg {
		t.Errorf("expected message %q, got %q", exception.DateOfBirthTooYoungMsg, customErr.Message)
	}
	if userRecord.Valid() {
		t.Error("expected an invalid record")
	}
}

func TestNewUserRecordRejectsShortPassword(t *testing.T) {
	userEntity := validUserEntity()
	userEntity.Password = "court"

	_, err := NewUserRecord(userEntity)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var customErr *exception.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("expected CustomError, got %T", err)
	}
	if customErr.Message != exception.PasswordLengthMsg {
		t.Errorf("expected message %q, got %q", exception.PasswordLengthMsg, customErr.Message)
	}
}

func TestNewUserRecordReportsEveryRejection(t *testing.T) {
	userEntity := validUserEntity()
	userEntity.Username = "x"
	userEntity.Email = "not-an-email"

	userRecord, err := NewUserRecord(userEntity)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// the first rejection is reported, but every failing column is flagged
	if userRecord.Column("username").Valid() {
		t.Error("expected username column to be invalid")
	}
	if userRecord.Column("email").Valid() {
		t.Error("expected email column to be invalid")
	}
}

func TestMakeUserView(t *testing.T) {
	userEntity := validUserEntity()
	userEntity.Uuid = "11111111-1111-1111-1111-111111111111"
	userEntity.Friends = "22222222-2222-2222-2222-222222222222" + "33333333-3333-3333-3333-333333333333"

	userView := MakeUserView(userEntity)
	if len(userView.Friends) != 2 {
		t.Errorf("expected 2 friends, got %v", userView.Friends)
	}
	if userView.Email != userEntity.Email {
		t.Errorf("expected email %q, got %q", userEntity.Email, userView.Email)
	}
}

func TestMakePublicUserViewHidesPrivateFields(t *testing.T) {
	userEntity := validUserEntity()
	userEntity.Uuid = "11111111-1111-1111-1111-111111111111"
	userEntity.PrivateBio = "secret"
	userEntity.Friends = "22222222-2222-2222-2222-222222222222"

	publicView := MakePublicUserView(userEntity)
	if publicView.Email != "" {
		t.Error("expected email to be hidden")
	}
	if publicView.PrivateBio != "" {
		t.Error("expected private bio to be hidden")
	}
	if publicView.DateOfBirth != "" {
		t.Error("expected date of birth to be hidden")
	}
	if len(publicView.Friends) != 0 {
		t.Error("expected friend list to be hidden")
	}
}

func TestMakeUserEmailKey(t *testing.T) {
	if MakeUserEmailKey("Panda@Example.FR") != "panda@example.fr" {
		t.Error("expected email key to be lowercased")
	}
	if MakeUserEmailKey(strings.ToLower("panda@example.fr")) != "panda@example.fr" {
		t.Error("expected lowercase email to be unchanged")
	}
}
