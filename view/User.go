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

package view

type User struct {
	Uuid               string   `json:"uuid"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	Alias              string   `json:"alias,omitempty"`
	DateOfBirth        string   `json:"dateOfBirth,omitempty"`
	Pronouns           string   `json:"pronouns,omitempty"`
	PublicDisplayName  string   `json:"publicDisplayName,omitempty"`
	PrivateDisplayName string   `json:"privateDisplayName,omitempty"`
	PublicBio          string   `json:"publicBio,omitempty"`
	PrivateBio         string   `json:"privateBio,omitempty"`
	Friends            []string `json:"friends"`
	Relations          []string `json:"relations"`
	Bamboos            []string `json:"bamboos"`
	RegistrationDate   string   `json:"registrationDate,omitempty"`
	LastConnectionDate string   `json:"lastConnectionDate,omitempty"`
	AvatarUrl          string   `json:"avatarUrl,omitempty"`
}

type UserRegistrationReq struct {
	Username           string `json:"username" validate:"required"`
	Email              string `json:"email" validate:"required"`
	Password           string `json:"password" validate:"required"`
	DateOfBirth        string `json:"dateOfBirth" validate:"required"`
	Pronouns           string `json:"pronouns"`
	PublicDisplayName  string `json:"publicDisplayName"`
	PrivateDisplayName string `json:"privateDisplayName"`
}

type UserLoginReq struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UserLoginResp echoes the session token for clients that cannot use the
// session cookie (websocket query parameter fallback).
type UserLoginResp struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UserProfilePatch carries a partial profile update. Nil fields are left
// untouched, everything else overwrites the stored column.
type UserProfilePatch struct {
	Email              *string `json:"email"`
	Password           *string `json:"password"`
	Pronouns           *string `json:"pronouns"`
	PublicDisplayName  *string `json:"publicDisplayName"`
	PrivateDisplayName *string `json:"privateDisplayName"`
	PublicBio          *string `json:"publicBio"`
	PrivateBio         *string `json:"privateBio"`
}

type UserAvatar struct {
	Uuid     string
	Avatar   []byte
	Checksum [32]byte
}
