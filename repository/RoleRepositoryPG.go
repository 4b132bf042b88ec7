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
	"github.com/go-pg/pg/v10"
	"github.com/pandamonium-social/pandamonium-backend/db"
	"github.com/pandamonium-social/pandamonium-backend/entity"
)

type RoleRepository interface {
	SaveRole(ent *entity.RoleEntity) error
	GetRoleById(roleId string) (*entity.RoleEntity, error)
	// GetRolesByBambooId returns the bamboo roles, highest hierarchy first.
	GetRolesByBambooId(bambooId string) ([]entity.RoleEntity, error)
	UpdateRoleColumns(ent *entity.RoleEntity, columns []string) error
	DeleteRole(roleId string) error
}

func NewRoleRepositoryPG(cp db.ConnectionProvider) RoleRepository {
	return &roleRepositoryImpl{cp: cp}
}

type roleRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (r roleRepositoryImpl) SaveRole(ent *entity.RoleEntity) error {
	_, err := r.cp.GetConnection().Model(ent).Insert()
	return err
}

func (r roleRepositoryImpl) GetRoleById(roleId string) (*entity.RoleEntity, error) {
	if roleId == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.RoleEntity)
	err := r.cp.GetConnection().Model(result).
		Where("uuid = ?", roleId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (r roleRepositoryImpl) GetRolesByBambooId(bambooId string) ([]entity.RoleEntity, error) {
	var result []entity.RoleEntity
	err := r.cp.GetConnection().Model(&result).
		Where("bamboo_uuid = ?", bambooId).
		Order("hierarchy DESC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (r roleRepositoryImpl) UpdateRoleColumns(ent *entity.RoleEntity, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	_, err := r.cp.GetConnection().Model(ent).
		Column(columns...).
		Where("uuid = ?", ent.Uuid).
		Update()
	return err
}

func (r roleRepositoryImpl) DeleteRole(roleId string) error {
	ent := new(entity.RoleEntity)
	_, err := r.cp.GetConnection().Model(ent).
		Where("uuid = ?", roleId).
		Delete()
	return err
}
