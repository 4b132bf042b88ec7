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

	"github.com/go-pg/pg/v10"
	"github.com/pandamonium-social/pandamonium-backend/db"
	"github.com/pandamonium-social/pandamonium-backend/entity"
	"github.com/pandamonium-social/pandamonium-backend/exception"
)

func NewUserRepositoryPG(cp db.ConnectionProvider) (UserRepository, error) {
	return &userRepositoryImpl{cp: cp}, nil
}

// errMissingFetchIdentifier flags a fetch issued with no identifying value, a
// programmer error that must fail loudly instead of reading as "not found".
func errMissingFetchIdentifier() error {
	return &exception.CustomError{
		Status:  http.StatusInternalServerError,
		Code:    exception.MissingFetchIdentifier,
		Message: exception.MissingFetchIdentifierMsg,
	}
}

type userRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (u userRepositoryImpl) SaveUser(ent *entity.UserEntity) error {
	_, err := u.cp.GetConnection().Model(ent).Insert()
	return err
}

func (u userRepositoryImpl) GetUserById(userId string) (*entity.UserEntity, error) {
	if userId == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
		Where("uuid = ?", userId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) GetUserByUsername(username string) (*entity.UserEntity, error) {
	if username == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
		Where("username = ?", username).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) GetUserByEmail(email string) (*entity.UserEntity, error) {
	if email == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
		Where("lower(email) = ?", entity.MakeUserEmailKey(email)).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) GetUsersByIds(userIds []string) ([]entity.UserEntity, error) {
	var result []entity.UserEntity
	if len(userIds) == 0 {
		return nil, nil
	}
	err := u.cp.GetConnection().Model(&result).
		Where("uuid in (?)", pg.In(userIds)).
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) UpdateUserColumns(ent *entity.UserEntity, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	_, err := u.cp.GetConnection().Model(ent).
		Column(columns...).
		Where("uuid = ?", ent.Uuid).
		Update()
	return err
}

func (u userRepositoryImpl) GetUserAvatar(userId string) (*entity.UserAvatarEntity, error) {
	if userId == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.UserAvatarEntity)
	err := u.cp.GetConnection().Model(result).
		Where("uuid = ?", userId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) SaveUserAvatar(ent *entity.UserAvatarEntity) error {
	_, err := u.cp.GetConnection().Model(ent).
		OnConflict("(\"uuid\") DO UPDATE").
		Insert()
	return err
}
