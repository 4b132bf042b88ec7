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

type RoleService interface {
	CreateRole(bambooId string, userId string, req view.RoleCreateReq) (*view.Role, error)
	GetRole(roleId string, userId string) (*view.Role, error)
	GetRoles(bambooId string, userId string) (*view.Roles, error)
	UpdateRole(roleId string, userId string, req view.RoleCreateReq) (*view.Role, error)
	DeleteRole(roleId string, userId string) error
}

func NewRoleService(repo repository.RoleRepository, bambooService BambooService) RoleService {
	return &roleServiceImpl{repo: repo, bambooService: bambooService}
}

type roleServiceImpl struct {
	repo          repository.RoleRepository
	bambooService BambooService
}

func (r roleServiceImpl) CreateRole(bambooId string, userId string, req view.RoleCreateReq) (*view.Role, error) {
	if _, err := r.bambooService.CheckMembership(bambooId, userId); err != nil {
		return nil, err
	}

	roleEntity := makeRoleEntity(bambooId, req)
	roleRecord, err := entity.NewRoleRecord(roleEntity)
	if err != nil {
		return nil, err
	}
	roleEntity.Uuid = roleRecord.Uuid()

	if err := r.repo.SaveRole(roleEntity); err != nil {
		return nil, err
	}
	return entity.MakeRoleView(roleEntity), nil
}

func (r roleServiceImpl) GetRole(roleId string, userId string) (*view.Role, error) {
	roleEntity, err := r.getRoleEntity(roleId)
	if err != nil {
		return nil, err
	}
	if _, err := r.bambooService.CheckMembership(roleEntity.BambooUuid, userId); err != nil {
		return nil, err
	}
	return entity.MakeRoleView(roleEntity), nil
}

func (r roleServiceImpl) GetRoles(bambooId string, userId string) (*view.Roles, error) {
	if _, err := r.bambooService.CheckMembership(bambooId, userId); err != nil {
		return nil, err
	}
	roleEntities, err := r.repo.GetRolesByBambooId(bambooId)
	if err != nil {
		return nil, err
	}
	roles := make([]view.Role, 0)
	for _, roleEntity := range roleEntities {
		roles = append(roles, *entity.MakeRoleView(&roleEntity))
	}
	return &view.Roles{Roles: roles}, nil
}

// UpdateRole replaces every editable column of the role with the request
// values; the whole replacement is validated before anything is written.
func (r roleServiceImpl) UpdateRole(roleId string, userId string, req view.RoleCreateReq) (*view.Role, error) {
	roleEntity, err := r.getRoleEntity(roleId)
	if err != nil {
		return nil, err
	}
	if _, err := r.bambooService.CheckMembership(roleEntity.BambooUuid, userId); err != nil {
		return nil, err
	}

	freshRecord, err := entity.NewRoleRecord(roleEntity)
	if err != nil {
		return nil, err
	}

	updated := makeRoleEntity(roleEntity.BambooUuid, req)
	updated.Uuid = roleEntity.Uuid
	updatedRecord, err := entity.NewRoleRecord(updated)
	if err != nil {
		return nil, err
	}

	changed := updatedRecord.Changed(freshRecord)
	if len(changed) == 0 {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.NoChangesToUpdate,
			Message: exception.NoChangesToUpdateMsg,
		}
	}

	if err := r.repo.UpdateRoleColumns(updated, changed); err != nil {
		return nil, err
	}
	return entity.MakeRoleView(updated), nil
}

func (r roleServiceImpl) DeleteRole(roleId string, userId string) error {
	roleEntity, err := r.getRoleEntity(roleId)
	if err != nil {
		return err
	}
	if _, err := r.bambooService.CheckMembership(roleEntity.BambooUuid, userId); err != nil {
		return err
	}
	return r.repo.DeleteRole(roleEntity.Uuid)
}

func (r roleServiceImpl) getRoleEntity(roleId string) (*entity.RoleEntity, error) {
	roleEntity, err := r.repo.GetRoleById(roleId)
	if err != nil {
		return nil, err
	}
	if roleEntity == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.RoleNotFound,
			Message: exception.RoleNotFoundMsg,
			Params:  map[string]interface{}{"roleId": roleId},
		}
	}
	return roleEntity, nil
}

func makeRoleEntity(bambooId string, req view.RoleCreateReq) *entity.RoleEntity {
	return &entity.RoleEntity{
		Name:                 req.Name,
		Color:                req.Color,
		Hierarchy:            req.Hierarchy,
		Admin:                req.Admin,
		PermManagingChannels: req.PermManagingChannels,
		PermManagingRoles:    req.PermManagingRoles,
		PermDelete:           req.PermDelete,
		PermBan:              req.PermBan,
		PermKick:             req.PermKick,
		PermMute:             req.PermMute,
		BambooUuid:           bambooId,
	}
}
