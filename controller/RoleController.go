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

package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pandamonium-social/pandamonium-backend/context"
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/service"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
)

type RoleController interface {
	CreateRole(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
	GetRoles(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)
}

func NewRoleController(roleService service.RoleService) RoleController {
	return &roleControllerImpl{roleService: roleService}
}

type roleControllerImpl struct {
	roleService service.RoleService
}

func (c roleControllerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	bambooId := getStringParam(r, "bambooId")
	createReq, customErr := decodeRoleReq(r)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}

	role, err := c.roleService.CreateRole(bambooId, ctx.GetUserId(), *createReq)
	if err != nil {
		RespondWithError(w, "Failed to create role", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, role)
}

func (c roleControllerImpl) GetRole(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	roleId := getStringParam(r, "roleId")

	role, err := c.roleService.GetRole(roleId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to get role", err)
		return
	}
	RespondWithJson(w, http.StatusOK, role)
}

func (c roleControllerImpl) GetRoles(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	bambooId := getStringParam(r, "bambooId")

	roles, err := c.roleService.GetRoles(bambooId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to list roles", err)
		return
	}
	RespondWithJson(w, http.StatusOK, roles)
}

func (c roleControllerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	roleId := getStringParam(r, "roleId")
	updateReq, customErr := decodeRoleReq(r)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}

	role, err := c.roleService.UpdateRole(roleId, ctx.GetUserId(), *updateReq)
	if err != nil {
		RespondWithError(w, "Failed to update role", err)
		return
	}
	RespondWithJson(w, http.StatusOK, role)
}

func (c roleControllerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	roleId := getStringParam(r, "roleId")

	err := c.roleService.DeleteRole(roleId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to delete role", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeRoleReq(r *http.Request) (*view.RoleCreateReq, *exception.CustomError) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		}
	}
	var roleReq view.RoleCreateReq
	err = json.Unmarshal(body, &roleReq)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		}
	}
	validationErr := utils.ValidateObject(roleReq)
	if validationErr != nil {
		if customError, ok := validationErr.(*exception.CustomError); ok {
			return nil, customError
		}
	}
	return &roleReq, nil
}
