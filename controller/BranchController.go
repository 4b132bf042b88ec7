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

type BranchController interface {
	CreateBranch(w http.ResponseWriter, r *http.Request)
	GetBranches(w http.ResponseWriter, r *http.Request)
	DeleteBranch(w http.ResponseWriter, r *http.Request)
}

func NewBranchController(branchService service.BranchService, wsBranchService service.WsBranchService) BranchController {
	return &branchControllerImpl{
		branchService:   branchService,
		wsBranchService: wsBranchService,
	}
}

type branchControllerImpl struct {
	branchService   service.BranchService
	wsBranchService service.WsBranchService
}

func (b branchControllerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
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
	var createReq view.BranchCreateReq
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

	branch, err := b.branchService.CreateBranch(bambooId, ctx.GetUserId(), createReq)
	if err != nil {
		RespondWithError(w, "Failed to create branch", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, branch)
}

func (b branchControllerImpl) GetBranches(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	bambooId := getStringParam(r, "bambooId")

	branches, err := b.branchService.GetBranches(bambooId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to list branches", err)
		return
	}
	RespondWithJson(w, http.StatusOK, branches)
}

func (b branchControllerImpl) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	branchId := getStringParam(r, "branchId")

	err := b.branchService.DeleteBranch(branchId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to delete branch", err)
		return
	}
	// Kick live subscribers, their branch no longer exists.
	if b.wsBranchService.HasActiveBranchSession(branchId) {
		b.wsBranchService.DisconnectClients(branchId)
	}
	w.WriteHeader(http.StatusNoContent)
}
