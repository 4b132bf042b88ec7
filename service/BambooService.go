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

package service

import (
	"net/http"
	"time"

	"github.com/pandamonium-social/pandamonium-backend/entity"
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/record"
	"github.com/pandamonium-social/pandamonium-backend/repository"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
)

type BambooService interface {
	CreateBamboo(ownerId string, req view.BambooCreateReq) (*view.Bamboo, error)
	GetBamboo(bambooId string) (*view.Bamboo, error)
	JoinBamboo(bambooId string, userId string) (*view.Bamboo, error)
	RenameBamboo(bambooId string, userId string, req view.BambooRenameReq) (*view.Bamboo, error)
	GetBambooMembers(bambooId string, listReq view.BambooMembersListReq) (*view.BambooMembers, error)
	// CheckMembership fails with an error unless the user belongs to the bamboo.
	CheckMembership(bambooId string, userId string) (*entity.BambooEntity, error)
}

func NewBambooService(repo repository.BambooRepository, userService UserService) BambooService {
	return &bambooServiceImpl{repo: repo, userService: userService}
}

type bambooServiceImpl struct {
	repo        repository.BambooRepository
	userService UserService
}

func (b bambooServiceImpl) CreateBamboo(ownerId string, req view.BambooCreateReq) (*view.Bamboo, error) {
	members, err := record.NewUUIDList(ownerId)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": "ownerId", "type": "uuid"},
			Debug:   err.Error(),
		}
	}

	bambooEntity := &entity.BambooEntity{
		Name:         req.Name,
		CreationDate: time.Now(),
		Members:      members.String(),
		OwnerUuid:    ownerId,
	}
	bambooRecord, err := entity.NewBambooRecord(bambooEntity)
	if err != nil {
		return nil, err
	}
	bambooEntity.Uuid = bambooRecord.Uuid()

	if err := b.repo.SaveBamboo(bambooEntity); err != nil {
		return nil, err
	}
	if err := b.userService.TrackBambooMembership(ownerId, bambooEntity.Uuid); err != nil {
		return nil, err
	}
	return entity.MakeBambooView(bambooEntity), nil
}

func (b bambooServiceImpl) GetBamboo(bambooId string) (*view.Bamboo, error) {
	bambooEntity, err := b.getBambooEntity(bambooId)
	if err != nil {
		return nil, err
	}
	return entity.MakeBambooView(bambooEntity), nil
}

func (b bambooServiceImpl) JoinBamboo(bambooId string, userId string) (*view.Bamboo, error) {
	bambooEntity, err := b.getBambooEntity(bambooId)
	if err != nil {
		return nil, err
	}
	members, err := record.ParseUUIDList(bambooEntity.Members)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Code:    exception.MalformedUuidChain,
			Message: exception.MalformedUuidChainMsg,
			Debug:   err.Error(),
		}
	}
	if members.Contains(userId) {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.AlreadyBambooMember,
			Message: exception.AlreadyBambooMemberMsg,
		}
	}
	if err := members.Append(userId); err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": "userId", "type": "uuid"},
			Debug:   err.Error(),
		}
	}
	bambooEntity.Members = members.String()

	if err := b.repo.UpdateBambooColumns(bambooEntity, []string{"members"}); err != nil {
		return nil, err
	}
	if err := b.userService.TrackBambooMembership(userId, bambooId); err != nil {
		return nil, err
	}
	return entity.MakeBambooView(bambooEntity), nil
}

func (b bambooServiceImpl) RenameBamboo(bambooId string, userId string, req view.BambooRenameReq) (*view.Bamboo, error) {
	bambooEntity, err := b.CheckMembership(bambooId, userId)
	if err != nil {
		return nil, err
	}
	bambooRecord, err := entity.NewBambooRecord(bambooEntity)
	if err != nil {
		return nil, err
	}
	if req.Name == bambooEntity.Name {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.NoChangesToUpdate,
			Message: exception.NoChangesToUpdateMsg,
		}
	}
	if err := bambooRecord.Set("name", req.Name); err != nil {
		return nil, err
	}
	bambooEntity.Name = req.Name

	if err := b.repo.UpdateBambooColumns(bambooEntity, []string{"name"}); err != nil {
		return nil, err
	}
	return entity.MakeBambooView(bambooEntity), nil
}

func (b bambooServiceImpl) GetBambooMembers(bambooId string, listReq view.BambooMembersListReq) (*view.BambooMembers, error) {
	bambooEntity, err := b.getBambooEntity(bambooId)
	if err != nil {
		return nil, err
	}
	members, err := record.ParseUUIDList(bambooEntity.Members)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Code:    exception.MalformedUuidChain,
			Message: exception.MalformedUuidChainMsg,
			Debug:   err.Error(),
		}
	}
	memberIds := members.Strings()
	start, end := utils.PaginateList(len(memberIds), listReq.Limit, listReq.Page)
	users, err := b.userService.GetUsersByIds(memberIds[start:end])
	if err != nil {
		return nil, err
	}
	return &view.BambooMembers{Members: users}, nil
}

func (b bambooServiceImpl) CheckMembership(bambooId string, userId string) (*entity.BambooEntity, error) {
	bambooEntity, err := b.getBambooEntity(bambooId)
	if err != nil {
		return nil, err
	}
	members, err := record.ParseUUIDList(bambooEntity.Members)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Code:    exception.MalformedUuidChain,
			Message: exception.MalformedUuidChainMsg,
			Debug:   err.Error(),
		}
	}
	if !members.Contains(userId) {
		return nil, &exception.CustomError{
			Status:  http.StatusForbidden,
			Code:    exception.NotBambooMember,
			Message: exception.NotBambooMemberMsg,
		}
	}
	return bambooEntity, nil
}

func (b bambooServiceImpl) getBambooEntity(bambooId string) (*entity.BambooEntity, error) {
	bambooEntity, err := b.repo.GetBambooById(bambooId)
	if err != nil {
		return nil, err
	}
	if bambooEntity == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.BambooNotFound,
			Message: exception.BambooNotFoundMsg,
			Params:  map[string]interface{}{"bambooId": bambooId},
		}
	}
	return bambooEntity, nil
}
