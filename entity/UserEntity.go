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
	"regexp"
	"strings"
	"time"

	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/record"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
)

const UserTable = "users"

// MinimumAgeYears gates registration; the 365.25 days-per-year approximation
// is part of the stored contract, do not "fix" it to calendar arithmetic.
const MinimumAgeYears = 15

var (
	usernameRegexp = regexp.MustCompile(`^[\w.-]{3,16}$`)
	emailRegexp    = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
)

func IsValidUsername(username string) bool {
	return usernameRegexp.MatchString(username)
}

func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

type UserEntity struct {
	tableName struct{} `pg:"users, alias:users"`

	Uuid               string    `pg:"uuid, pk, type:varchar"`
	Username           string    `pg:"username, type:varchar"`
	Email              string    `pg:"email, type:varchar"`
	Password           string    `pg:"password, type:varchar"`
	DateOfBirth        time.Time `pg:"date_of_birth, type:date"`
	Friends            string    `pg:"friends, type:varchar, use_zero"`
	Relations          string    `pg:"relations, type:varchar, use_zero"`
	Bamboos            string    `pg:"bamboos, type:varchar, use_zero"`
	RegistrationDate   time.Time `pg:"registration_date, type:date"`
	LastConnectionDate time.Time `pg:"last_connection_date, type:date"`
	Pronouns           string    `pg:"pronouns, type:varchar, use_zero"`
	PublicDisplayName  string    `pg:"public_display_name, type:varchar, use_zero"`
	PublicBio          string    `pg:"public_bio, type:varchar, use_zero"`
	PrivateDisplayName string    `pg:"private_display_name, type:varchar, use_zero"`
	PrivateBio         string    `pg:"private_bio, type:varchar, use_zero"`
	Alias              string    `pg:"alias, type:varchar, use_zero"`
}

func usernameConstraint(value interface{}) string {
	if username, ok := value.(string); ok && !IsValidUsername(username) {
		return exception.UsernameFormatMsg
	}
	return ""
}

func emailConstraint(value interface{}) string {
	if email, ok := value.(string); ok && !IsValidEmail(email) {
		return exception.EmailFormatMsg
	}
	return ""
}

func dateOfBirthConstraint(value interface{}) string {
	dateOfBirth, ok := value.(time.Time)
	if !ok {
		return ""
	}
	age := time.Since(dateOfBirth)
	if age.Hours() < MinimumAgeYears*365.25*24 {
		return exception.DateOfBirthTooYoungMsg
	}
	return ""
}

// NewUserRecord builds the validated record of a user row, fresh or hydrated.
// The column order mirrors the users table; password is expected hashed (the
// hex digest happens to satisfy the 6-64 pre-hash length rule as well).
func NewUserRecord(ent *UserEntity) (*record.Record, error) {
	return record.New(UserTable, ent.Uuid, []record.ColumnDef{
		{Name: "username", Value: ent.Username, Constraint: usernameConstraint},
		{Name: "email", Value: ent.Email, Constraint: emailConstraint},
		{Name: "password", Value: ent.Password, Constraint: record.SizeBetween(6, 64, exception.PasswordLengthMsg)},
		{Name: "date_of_birth", Value: ent.DateOfBirth, Constraint: dateOfBirthConstraint},
		{Name: "friends", Value: ent.Friends, Constraint: record.MaxSize(100*record.UuidLength, exception.TooManyFriendsMsg)},
		{Name: "relations", Value: ent.Relations, Constraint: record.MaxSize(100*record.UuidLength, exception.TooManyRelationsMsg)},
		{Name: "bamboos", Value: ent.Bamboos, Constraint: record.MaxSize(100*record.UuidLength, exception.TooManyBamboosMsg)},
		{Name: "registration_date", Value: ent.RegistrationDate},
		{Name: "last_connection_date", Value: ent.LastConnectionDate},
		{Name: "pronouns", Value: ent.Pronouns, Constraint: record.MaxSize(50, exception.PronounsTooLongMsg)},
		{Name: "public_display_name", Value: ent.PublicDisplayName, Constraint: record.MaxSize(50, exception.PublicDisplayNameTooLongMsg)},
		{Name: "public_bio", Value: ent.PublicBio, Constraint: record.MaxSize(300, exception.PublicBioTooLongMsg)},
		{Name: "private_display_name", Value: ent.PrivateDisplayName, Constraint: record.MaxSize(50, exception.PrivateDisplayNameTooLongMsg)},
		{Name: "private_bio", Value: ent.PrivateBio, Constraint: record.MaxSize(300, exception.PrivateBioTooLongMsg)},
		{Name: "alias", Value: ent.Alias},
	})
}

func MakeUserView(userEntity *UserEntity) *view.User {
	return &view.User{
		Uuid:               userEntity.Uuid,
		Username:           userEntity.Username,
		Email:              userEntity.Email,
		Alias:              userEntity.Alias,
		DateOfBirth:        utils.DateToString(userEntity.DateOfBirth),
		Pronouns:           userEntity.Pronouns,
		PublicDisplayName:  userEntity.PublicDisplayName,
		PrivateDisplayName: userEntity.PrivateDisplayName,
		PublicBio:          userEntity.PublicBio,
		PrivateBio:         userEntity.PrivateBio,
		Friends:            splitUuidChain(userEntity.Friends),
		Relations:          splitUuidChain(userEntity.Relations),
		Bamboos:            splitUuidChain(userEntity.Bamboos),
		RegistrationDate:   utils.DateToString(userEntity.RegistrationDate),
		LastConnectionDate: utils.DateToString(userEntity.LastConnectionDate),
	}
}

// MakePublicUserView strips everything a stranger should not see.
func MakePublicUserView(userEntity *UserEntity) *view.User {
	return &view.User{
		Uuid:              userEntity.Uuid,
		Username:          userEntity.Username,
		Alias:             userEntity.Alias,
		Pronouns:          userEntity.Pronouns,
		PublicDisplayName: userEntity.PublicDisplayName,
		PublicBio:         userEntity.PublicBio,
		Friends:           []string{},
		Relations:         []string{},
		Bamboos:           []string{},
	}
}

func splitUuidChain(chain string) []string {
	list, err := record.ParseUUIDList(chain)
	if err != nil {
		return []string{}
	}
	return list.Strings()
}

type UserAvatarEntity struct {
	tableName struct{} `pg:"user_avatars"`

	Uuid     string   `pg:"uuid, pk, type:varchar"`
	Avatar   []byte   `pg:"avatar, type:bytea"`
	Checksum [32]byte `pg:"checksum, type:bytea"`
}

func MakeUserAvatarEntity(avatarView *view.UserAvatar) *UserAvatarEntity {
	return &UserAvatarEntity{
		Uuid:     avatarView.Uuid,
		Avatar:   avatarView.Avatar,
		Checksum: avatarView.Checksum,
	}
}

func MakeUserAvatarView(avatarEntity *UserAvatarEntity) *view.UserAvatar {
	return &view.UserAvatar{
		Uuid:     avatarEntity.Uuid,
		Avatar:   avatarEntity.Avatar,
		Checksum: avatarEntity.Checksum,
	}
}

// MakeUserEmailKey normalizes an email for uniqueness comparison.
func MakeUserEmailKey(email string) string {
	return strings.ToLower(email)
}
