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
	"net/http"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
	"github.com/pandamonium-social/pandamonium-backend/context"
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/service"
	log "github.com/sirupsen/logrus"
)

type BranchWSController interface {
	ConnectToBranch(w http.ResponseWriter, r *http.Request)
	DebugSessionsLoadBalance(w http.ResponseWriter, r *http.Request)
}

func NewBranchWSController(branchService service.BranchService, wsBranchService service.WsBranchService, eventBus service.WsEventBus) BranchWSController {
	return &branchWSControllerImpl{
		branchService:   branchService,
		wsBranchService: wsBranchService,
		eventBus:        eventBus,
	}
}

type branchWSControllerImpl struct {
	branchService   service.BranchService
	wsBranchService service.WsBranchService
	eventBus        service.WsEventBus
}

func (c branchWSControllerImpl) ConnectToBranch(w http.ResponseWriter, r *http.Request) {
	ctx := context.Create(r)
	branchId := getStringParam(r, "branchId")

	// Membership is checked before the upgrade, an error response is still
	// possible at this point.
	if _, err := c.branchService.GetBranchForMember(branchId, ctx.GetUserId()); err != nil {
		RespondWithError(w, "Failed to connect to branch", err)
		return
	}

	var upgrader = ws.Upgrader{
		//skip origin check
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	websocket, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.ConnectionNotUpgraded,
			Message: exception.ConnectionNotUpgradedMsg,
			Debug:   err.Error(),
		})
		return
	}
	wsId := uuid.New().String()

	err = c.wsBranchService.ConnectToBranch(ctx, branchId, wsId, websocket)
	if err != nil {
		log.Error("Failed to connect to branch websocket: ", err.Error())
		//don't send error response, it doesn't work on upgraded connection
		return
	}
	//DO NOT ADD w.Write... since it's not suitable for websocket!
}

func (c branchWSControllerImpl) DebugSessionsLoadBalance(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.eventBus.ListSessions()
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to list websocket bus sessions",
			Debug:   err.Error(),
		})
		return
	}

	nodes, err := c.eventBus.ListNodes()
	if err != nil {
		RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to list websocket bus nodes",
			Debug:   err.Error(),
		})
		return
	}

	RespondWithJson(w, http.StatusOK, debugResp{Sessions: sessions, Nodes: nodes})
}

type debugResp struct {
	Sessions []service.WsBusSession
	Nodes    []string
}
