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

type MessageController interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
	GetMessages(w http.ResponseWriter, r *http.Request)
	EditMessage(w http.ResponseWriter, r *http.Request)
	DeleteMessage(w http.ResponseWriter, r *http.Request)
}

func NewMessageController(messageService service.MessageService) MessageController {
	return &messageControllerImpl{messageService: messageService}
}

type messageControllerImpl struct {
	messageService service.MessageService
}

func (m messageControllerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	branchId := getStringParam(r, "branchId")
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
	var createReq view.MessageCreateReq
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

	message, err := m.messageService.SendMessage(branchId, ctx.GetUserId(), createReq)
	if err != nil {
		RespondWithError(w, "Failed to send message", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, message)
}

func (m messageControllerImpl) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	branchId := getStringParam(r, "branchId")
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

	messages, err := m.messageService.GetMessages(branchId, ctx.GetUserId(), view.MessagesListReq{Limit: limit, Page: page})
	if err != nil {
		RespondWithError(w, "Failed to list messages", err)
		return
	}
	RespondWithJson(w, http.StatusOK, messages)
}

func (m messageControllerImpl) EditMessage(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	messageId := getStringParam(r, "messageId")
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
	var editReq view.MessageEditReq
	err = json.Unmarshal(body, &editReq)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	validationErr := utils.ValidateObject(editReq)
	if validationErr != nil {
		if customError, ok := validationErr.(*exception.CustomError); ok {
			RespondWithCustomError(w, customError)
			return
		}
	}

	message, err := m.messageService.EditMessage(messageId, ctx.GetUserId(), editReq)
	if err != nil {
		RespondWithError(w, "Failed to edit message", err)
		return
	}
	RespondWithJson(w, http.StatusOK, message)
}

func (m messageControllerImpl) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	messageId := getStringParam(r, "messageId")

	err := m.messageService.DeleteMessage(messageId, ctx.GetUserId())
	if err != nil {
		RespondWithError(w, "Failed to delete message", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
