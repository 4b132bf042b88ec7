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
	"github.com/pandamonium-social/pandamonium-backend/entity"
)

type UserRepository interface {
	SaveUser(ent *entity.UserEntity) error
	GetUserById(userId string) (*entity.UserEntity, error)
	GetUserByUsername(username string) (*entity.UserEntity, error)
	GetUserByEmail(email string) (*entity.UserEntity, error)
	GetUsersByIds(userIds []string) ([]entity.UserEntity, error)
	// UpdateUserColumns writes only the listed columns of the user row.
	UpdateUserColumns(ent *entity.UserEntity, columns []string) error
	GetUserAvatar(userId string) (*entity.UserAvatarEntity, error)
	SaveUserAvatar(ent *entity.UserAvatarEntity) error
}
