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

type BambooController interface {
	CreateBamboo(w http.ResponseWriter, r *http.Request)
	GetBamboo(w http.ResponseWriter, r *http.Request)
	JoinBamboo(w http.ResponseWriter, r *http.Request)
	RenameBamboo(w http.ResponseWriter, r *http.Request)
	GetBambooMembers(w http.ResponseWriter, r *http.Request)
}

func NewBambooController(bambooService service.BambooService) BambooController {
	return &bambooControllerImpl{bambooService: bambooService}
}

type bambooControllerImpl struct {
	bambooService service.BambooService
}

func (b bambooControllerImpl) CreateBamboo(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	var createReq view.BambooCreateReq
	err = json.Unmarshal(body, &createReq)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	validationErr := utils.ValidateObject(createReq)
	if validationErr != nil {
		if customError, ok := validationErr.(*exception.CustomError); ok {
			RespondWithCustomError(w, customError)
			return
		}
	}

	bamboo, err := b.bambooService.CreateBamboo(ctx.GetUserId(), createReq)
	if err != nil {
		RespondWithError(w, "Failed to create bamboo", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, bamboo)
}

func (b bambooControllerImpl) GetBamboo(w http.ResponseWriter, r *http.Request) {
	bambooId := getStringParam(r, "bambooId")

	bamboo, err := b.bambooService.GetBamboo(bambooId)
	if err != nil {
		RespondWithError(w, "Failed to get bamboo", err)
		return
	}
	RespondWithJson(w, http.StatusOK, bamboo)
}

func (b bambooControllerImpl) JoinBamboo(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	bambooId := getStringParam(r, "bambooId")

	bamboo, err := b.bambooService.JoinBamboo(bambooId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to join bamboo", err)
		return
	}
	RespondWithJson(w, http.StatusOK, bamboo)
}

func (b bambooControllerImpl) RenameBamboo(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	bambooId := getStringParam(r, "bambooId")
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	var renameReq view.BambooRenameReq
	err = json.Unmarshal(body, &renameReq)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	validationErr := utils.ValidateObject(renameReq)
	if validationErr != nil {
		if customError, ok := validationErr.(*exception.CustomError); ok {
			RespondWithCustomError(w, customError)
			return
		}
	}

	bamboo, err := b.bambooService.RenameBamboo(bambooId, ctx.GetUserId(), renameReq)
	if err != nil {
		RespondWithError(w, "Failed to rename bamboo", err)
		return
	}
	RespondWithJson(w, http.StatusOK, bamboo)
}

func (b bambooControllerImpl) GetBambooMembers(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	bambooId := getStringParam(r, "bambooId")
	limit, customErr := getLimitQueryParam(r)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	page, customErr := getPageQueryParam(r)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}

	if _, err := b.bambooService.CheckMembership(bambooId, ctx.GetUserId()); err != nil {
		RespondWithError(w, "Failed to list bamboo members", err)
		return
	}
	members, err := b.bambooService.GetBambooMembers(bambooId, view.BambooMembersListReq{Limit: limit, Page: page})
	if err != nil {
		RespondWithError(w, "Failed to list bamboo members", err)
		return
	}
	RespondWithJson(w, http.StatusOK, members)
}
