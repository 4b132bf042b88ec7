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

type BranchRepository interface {
	SaveBranch(ent *entity.BranchEntity) error
	GetBranchById(branchId string) (*entity.BranchEntity, error)
	GetBranchesByBambooId(bambooId string) ([]entity.BranchEntity, error)
	UpdateBranchColumns(ent *entity.BranchEntity, columns []string) error
	DeleteBranch(branchId string) error
}

func NewBranchRepositoryPG(cp db.ConnectionProvider) BranchRepository {
	return &branchRepositoryImpl{cp: cp}
}

type branchRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (b branchRepositoryImpl) SaveBranch(ent *entity.BranchEntity) error {
	_, err := b.cp.GetConnection().Model(ent).Insert()
	return err
}

func (b branchRepositoryImpl) GetBranchById(branchId string) (*entity.BranchEntity, error) {
	if branchId == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.BranchEntity)
	err := b.cp.GetConnection().Model(result).
		Where("uuid = ?", branchId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (b branchRepositoryImpl) GetBranchesByBambooId(bambooId string) ([]entity.BranchEntity, error) {
	var result []entity.BranchEntity
	err := b.cp.GetConnection().Model(&result).
		Where("bamboo_uuid = ?", bambooId).
		Order("name ASC").
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (b branchRepositoryImpl) UpdateBranchColumns(ent *entity.BranchEntity, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	_, err := b.cp.GetConnection().Model(ent).
		Column(columns...).
		Where("uuid = ?", ent.Uuid).
		Update()
	return err
}

func (b branchRepositoryImpl) DeleteBranch(branchId string) error {
	ent := new(entity.BranchEntity)
	_, err := b.cp.GetConnection().Model(ent).
		Where("uuid = ?", branchId).
		Delete()
	return err
}
