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

package security

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pandamonium-social/pandamonium-backend/context"
	"github.com/pandamonium-social/pandamonium-backend/controller"
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/service"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
	"github.com/pandamonium-social/pandamonium-backend/websocket"
)

type AuthController interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

func NewAuthController(userService service.UserService, eventBus service.WsEventBus) AuthController {
	return &authControllerImpl{
		userService: userService,
		eventBus:    eventBus,
	}
}

type authControllerImpl struct {
	userService service.UserService
	eventBus    service.WsEventBus
}

func (a authControllerImpl) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	var registration view.UserRegistrationReq
	err = json.Unmarshal(body, &registration)
	if err != nil {
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	validationErr := utils.ValidateObject(registration)
	if validationErr != nil {
		if customError, ok := validationErr.(*exception.CustomError); ok {
			controller.RespondWithCustomError(w, customError)
			return
		}
	}

	user, err := a.userService.RegisterUser(registration)
	if err != nil {
		controller.RespondWithError(w, "Failed to register user", err)
		return
	}
	controller.RespondWithJson(w, http.StatusCreated, user)
}

func (a authControllerImpl) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	var login view.UserLoginReq
	err = json.Unmarshal(body, &login)
	if err != nil {
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		})
		return
	}
	validationErr := utils.ValidateObject(login)
	if validationErr != nil {
		if customError, ok := validationErr.(*exception.CustomError); ok {
			controller.RespondWithCustomError(w, customError)
			return
		}
	}

	user, err := a.userService.AuthenticateUser(login.Identifier, login.Password)
	if err != nil {
		controller.RespondWithError(w, "Failed to log in", err)
		return
	}

	// A successful login replaces whatever session the caller already holds.
	DestroySession(context.GetSessionToken(r))
	sessionToken, err := CreateSession(*user)
	if err != nil {
		controller.RespondWithError(w, "Failed to create session", err)
		return
	}
	http.SetCookie(w, SessionCookie(sessionToken, systemInfoService.GetSessionTTLMinutes()*60))

	a.eventBus.PublishUserLogged(websocket.UserLoggedEvent{
		UserUuid: user.Uuid,
		Username: user.Username,
		LoggedAt: utils.TimestampToString(time.Now()),
	})

	controller.RespondWithJson(w, http.StatusOK, view.UserLoginResp{User: *user, Token: sessionToken})
}

func (a authControllerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	DestroySession(context.GetSessionToken(r))
	http.SetCookie(w, SessionCookie("", -1))
	w.WriteHeader(http.StatusNoContent)
}
