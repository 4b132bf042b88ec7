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
	"github.com/pandamonium-social/pandamonium-backend/view"
)

type UserController interface {
	GetUserProfile(w http.ResponseWriter, r *http.Request)
	GetCurrentUserProfile(w http.ResponseWriter, r *http.Request)
	UpdateUserProfile(w http.ResponseWriter, r *http.Request)
	AddFriend(w http.ResponseWriter, r *http.Request)
	AddRelation(w http.ResponseWriter, r *http.Request)
	GetUserAvatar(w http.ResponseWriter, r *http.Request)
	StoreUserAvatar(w http.ResponseWriter, r *http.Request)
}

func NewUserController(userService service.UserService) UserController {
	return &userControllerImpl{userService: userService}
}

type userControllerImpl struct {
	userService service.UserService
}

func (u userControllerImpl) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	userId := getStringParam(r, "userId")

	user, err := u.userService.GetUserProfile(userId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to get user profile", err)
		return
	}
	RespondWithJson(w, http.StatusOK, user)
}

func (u userControllerImpl) GetCurrentUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)

	user, err := u.userService.GetUserProfile(ctx.GetUserId(), ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to get current user profile", err)
		return
	}
	RespondWithJson(w, http.StatusOK, user)
}

func (u userControllerImpl) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
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
	var patch view.UserProfilePatch
	err = json.Unmarshal(body, &patch)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}

	user, err := u.userService.UpdateUserProfile(ctx.GetUserId(), patch)
	if err != nil {
		RespondWithError(w, "Failed to update user profile", err)
		return
	}
	RespondWithJson(w, http.StatusOK, user)
}

func (u userControllerImpl) AddFriend(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	friendId := getStringParam(r, "userId")

	user, err := u.userService.AddFriend(ctx.GetUserId(), friendId)
	if err != nil {
		RespondWithError(w, "Failed to add friend", err)
		return
	}
	RespondWithJson(w, http.StatusOK, user)
}

func (u userControllerImpl) AddRelation(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	relationId := getStringParam(r, "userId")

	user, err := u.userService.AddRelation(ctx.GetUserId(), relationId)
	if err != nil {
		RespondWithError(w, "Failed to add relation", err)
		return
	}
	RespondWithJson(w, http.StatusOK, user)
}

func (u userControllerImpl) GetUserAvatar(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")

	avatar, err := u.userService.GetUserAvatar(userId)
	if err != nil {
		RespondWithError(w, "Failed to get user avatar", err)
		return
	}
	if avatar == nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.UserAvatarNotFound,
			Message: exception.UserAvatarNotFoundMsg,
			Params:  map[string]interface{}{"userId": userId},
		})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(avatar.Avatar)
}

func (u userControllerImpl) StoreUserAvatar(w http.ResponseWriter, r *http.Request) {
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

	err = u.userService.StoreUserAvatar(ctx.GetUserId(), body)
	if err != nil {
		RespondWithError(w, "Failed to store user avatar", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
