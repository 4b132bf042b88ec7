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
	"github.com/pandamonium-social/pandamonium-backend/view"
)

type MessageRepository interface {
	SaveMessage(ent *entity.MessageEntity) error
	GetMessageById(messageId string) (*entity.MessageEntity, error)
	// GetMessagesByBranchId returns the branch history newest first.
	GetMessagesByBranchId(branchId string, listReq view.MessagesListReq) ([]entity.MessageEntity, error)
	UpdateMessageColumns(ent *entity.MessageEntity, columns []string) error
	DeleteMessage(messageId string) error
}

func NewMessageRepositoryPG(cp db.ConnectionProvider) MessageRepository {
	return &messageRepositoryImpl{cp: cp}
}

type messageRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (m messageRepositoryImpl) SaveMessage(ent *entity.MessageEntity) error {
	_, err := m.cp.GetConnection().Model(ent).Insert()
	return err
}

func (m messageRepositoryImpl) GetMessageById(messageId string) (*entity.MessageEntity, error) {
	if messageId == "" {
		return nil, errMissingFetchIdentifier()
	}
	result := new(entity.MessageEntity)
	err := m.cp.GetConnection().Model(result).
		Where("uuid = ?", messageId).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (m messageRepositoryImpl) GetMessagesByBranchId(branchId string, listReq view.MessagesListReq) ([]entity.MessageEntity, error) {
	var result []entity.MessageEntity
	err := m.cp.GetConnection().Model(&result).
		Where("branch_uuid = ?", branchId).
		Order("date_sent DESC").
		Offset(listReq.Page * listReq.Limit).
		Limit(listReq.Limit).
		Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (m messageRepositoryImpl) UpdateMessageColumns(ent *entity.MessageEntity, columns []string) error {
	if len(columns) == 0 {
		return nil
	}
	_, err := m.cp.GetConnection().Model(ent).
		Column(columns...).
		Where("uuid = ?", ent.Uuid).
		Update()
	return err
}

func (m messageRepositoryImpl) DeleteMessage(messageId string) error {
	ent := new(entity.MessageEntity)
	_, err := m.cp.GetConnection().Model(ent).
		Where("uuid = ?", messageId).
		Delete()
	return err
}
