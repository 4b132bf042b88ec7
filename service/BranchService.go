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

	"github.com/pandamonium-social/pandamonium-backend/entity"
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/repository"
	"github.com/pandamonium-social/pandamonium-backend/view"
)

type BranchService interface {
	CreateBranch(bambooId string, userId string, req view.BranchCreateReq) (*view.Branch, error)
	GetBranch(branchId string) (*view.Branch, error)
	GetBranches(bambooId string, userId string) (*view.Branches, error)
	DeleteBranch(branchId string, userId string) error
	// GetBranchForMember resolves the branch and checks that the user belongs
	// to its bamboo.
	GetBranchForMember(branchId string, userId string) (*entity.BranchEntity, error)
}

func NewBranchService(repo repository.BranchRepository, bambooService BambooService) BranchService {
	return &branchServiceImpl{repo: repo, bambooService: bambooService}
}

type branchServiceImpl struct {
	repo          repository.BranchRepository
	bambooService BambooService
}

func (b branchServiceImpl) CreateBranch(bambooId string, userId string, req view.BranchCreateReq) (*view.Branch, error) {
	if _, err := b.bambooService.CheckMembership(bambooId, userId); err != nil {
		return nil, err
	}

	branchEntity := &entity.BranchEntity{
		Name:       req.Name,
		BambooUuid: bambooId,
	}
	branchRecord, err := entity.NewBranchRecord(branchEntity)
	if err != nil {
		return nil, err
	}
	branchEntity.Uuid = branchRecord.Uuid()

	if err := b.repo.SaveBranch(branchEntity); err != nil {
		return nil, err
	}
	return entity.MakeBranchView(branchEntity), nil
}

func (b branchServiceImpl) GetBranch(branchId string) (*view.Branch, error) {
	branchEntity, err := b.getBranchEntity(branchId)
	if err != nil {
		return nil, err
	}
	return entity.MakeBranchView(branchEntity), nil
}

func (b branchServiceImpl) GetBranches(bambooId string, userId string) (*view.Branches, error) {
	if _, err := b.bambooService.CheckMembership(bambooId, userId); err != nil {
		return nil, err
	}
	branchEntities, err := b.repo.GetBranchesByBambooId(bambooId)
	if err != nil {
		return nil, err
	}
	branches := make([]view.Branch, 0)
	for _, branchEntity := range branchEntities {
		branches = append(branches, *entity.MakeBranchView(&branchEntity))
	}
	return &view.Branches{Branches: branches}, nil
}

func (b branchServiceImpl) DeleteBranch(branchId string, userId string) error {
	branchEntity, err := b.GetBranchForMember(branchId, userId)
	if err != nil {
		return err
	}
	return b.repo.DeleteBranch(branchEntity.Uuid)
}

func (b branchServiceImpl) GetBranchForMember(branchId string, userId string) (*entity.BranchEntity, error) {
	branchEntity, err := b.getBranchEntity(branchId)
	if err != nil {
		return nil, err
	}
	if _, err := b.bambooService.CheckMembership(branchEntity.BambooUuid, userId); err != nil {
		return nil, err
	}
	return branchEntity, nil
}

func (b branchServiceImpl) getBranchEntity(branchId string) (*entity.BranchEntity, error) {
	branchEntity, err := b.repo.GetBranchById(branchId)
	if err != nil {
		return nil, err
	}
	if branchEntity == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.BranchNotFound,
			Message: exception.BranchNotFoundMsg,
			Params:  map[string]interface{}{"branchId": branchId},
		}
	}
	return branchEntity, nil
}
