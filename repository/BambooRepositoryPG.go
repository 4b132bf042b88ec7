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

type BambooRepository interface {
	SaveBamboo(ent *entity.BambooEntity) error
	GetBambooById(bambooId string) (*entity.BambooEntity, error)
	GetBamboosByIds(bambooIds []string) ([]entity.BambooEntity, error)
	UpdateBambooColumns(ent *entity.BambooEntity, columns []string) error
	DeleteBamboo(bambooId string) error
}

func NewBambooRepositoryPG(cp db.ConnectionProvider) BambooRepository {
	return &bambooRepositoryImpl{cp: cp}
}

type bambooRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (b bambooRepositoryImpl) SaveBamboo(ent *entity.BambooEntity) error {
	_, err := b.cp.GetConnection().Model(ent).Insert()
	return err
}

func (b bambooRepositoryImpl) GetBambooById(bambooId string) (*entity.BambooEntity, error) {
	if bambooId == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.BambooEntity)
	err := b.cp.GetConnection().Model(result).
		Where("uuid = ?", bambooId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (b bambooRepositoryImpl) GetBamboosByIds(bambooIds []string) ([]entity.BambooEntity, error) {
	var result []entity.BambooEntity
	if len(bambooIds) == 0 {
		return nil, nil
	}
	err := b.cp.GetConnection().Model(&result).
		Where("uuid in (?)", pg.In(bambooIds)).
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (b bambooRepositoryImpl) UpdateBambooColumns(ent *entity.BambooEntity, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	_, err := b.cp.GetConnection().Model(ent).
		Column(columns...).
		Where("uuid = ?", ent.Uuid).
		Update()
	return err
}

func (b bambooRepositoryImpl) DeleteBamboo(bambooId string) error {
	ent := new(entity.BambooEntity)
	_, err := b.cp.GetConnection().Model(ent).
		Where("uuid = ?", bambooId).
		Delete()
	return err
}
