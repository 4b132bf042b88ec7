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
	"sync"

	"github.com/buraksezer/olric"
	ws "github.com/gorilla/websocket"
	"github.com/pandamonium-social/pandamonium-backend/context"
	"github.com/pandamonium-social/pandamonium-backend/metrics"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
	"github.com/pandamonium-social/pandamonium-backend/websocket"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type WsBranchService interface {
	ConnectToBranch(ctx context.SecurityContext, branchId string, wsId string, connection *ws.Conn) error
	HasActiveBranchSession(branchId string) bool
	NotifyBranchUsers(branchId string, action interface{})
	DisconnectClients(branchId string)
}

func NewWsBranchService(userService UserService, eventBus WsEventBus) WsBranchService {
	service := &wsBranchServiceImpl{
		branchSessions: make(map[string]*websocket.WsBranchSession),
		userService:    userService,
		eventBus:       eventBus,
		mutex:          sync.RWMutex{},
		keepalive:      cron.New(),
	}
	service.keepalive.Schedule(cron.Every(websocket.PingTime), cron.FuncJob(service.keepSessionsAlive))
	service.keepalive.Start()

	utils.SafeAsync(func() {
		_, err := eventBus.GetUserMessageTopic().AddListener(service.handleRemoteUserMessage)
		if err != nil {
			log.Errorf("Failed to subscribe to user_message events: %s", err.Error())
		}
	})
	utils.SafeAsync(func() {
		_, err := eventBus.GetUserLoggedTopic().AddListener(service.handleRemoteUserLogged)
		if err != nil {
			log.Errorf("Failed to subscribe to user_logged events: %s", err.Error())
		}
	})
	return service
}

type wsBranchServiceImpl struct {
	branchSessions map[string]*websocket.WsBranchSession
	userService    UserService
	eventBus       WsEventBus
	mutex          sync.RWMutex
	keepalive      *cron.Cron
}

func (w *wsBranchServiceImpl) HasActiveBranchSession(branchId string) bool {
	w.mutex.RLock()
	_, exists := w.branchSessions[branchId]
	w.mutex.RUnlock()
	if !exists {
		hasSession, err := w.eventBus.HasBranchSession(branchId)
		if err != nil {
			log.Errorf("Unable to check if branch session exists: %s", err.Error())
			return false
		}
		return hasSession
	}
	return exists
}

func (w *wsBranchServiceImpl) ConnectToBranch(ctx context.SecurityContext, branchId string, wsId string, connection *ws.Conn) error {
	user, err := w.userService.GetUserProfile(ctx.GetUserId(), ctx.GetUserId())
	if err != nil {
		return err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	branchSession, exists := w.branchSessions[branchId]
	if !exists {
		branchSession = websocket.NewWsBranchSession(branchId, nil, w, user.Uuid)
		w.branchSessions[branchId] = branchSession
		metrics.WSBranchSessionCount.WithLabelValues().Set(float64(len(w.branchSessions)))
	}

	branchSession.ConnectClient(wsId, connection, *user, nil)

	return nil
}

func (w *wsBranchServiceImpl) NotifyBranchUsers(branchId string, action interface{}) {
	w.mutex.RLock()
	branchSession, exists := w.branchSessions[branchId]
	w.mutex.RUnlock()
	if !exists {
		// Not our node's session, olric delivers it where it belongs.
		return
	}
	branchSession.NotifyAll(action)
}

func (w *wsBranchServiceImpl) HandleSessionClosed(branchSessionId string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	delete(w.branchSessions, branchSessionId)
	metrics.WSBranchSessionCount.WithLabelValues().Set(float64(len(w.branchSessions)))
}

func (w *wsBranchServiceImpl) HandleUserDisconnected(branchSessionId string, wsId string) {
}

func (w *wsBranchServiceImpl) DisconnectClients(branchId string) {
	w.mutex.RLock()
	session, exists := w.branchSessions[branchId]
	w.mutex.RUnlock()
	if !exists {
		return
	}
	session.ForceDisconnectAll()
}

func (w *wsBranchServiceImpl) keepSessionsAlive() {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	for sessId, session := range w.branchSessions {
		sessIdTmp := sessId
		sessionTmp := session
		utils.SafeAsync(func() {
			err := w.eventBus.TrackSession(sessIdTmp)
			if err != nil {
				log.Errorf("Unable to make keepalive for branch session with id = %s: %s", sessIdTmp, err.Error())
			}
		})
		utils.SafeAsync(func() {
			sessionTmp.SendPingToAllClients()
		})
	}
}

func (w *wsBranchServiceImpl) handleRemoteUserMessage(msg olric.DTopicMessage) {
	eventMap := msg.Message.(map[string]interface{})
	event := websocket.UserMessageEventFromMap(eventMap)

	w.mutex.RLock()
	branchSession, exists := w.branchSessions[event.BranchUuid]
	w.mutex.RUnlock()
	if !exists {
		return
	}
	log.Debugf("Got remote user_message event: %+v", event)

	dateSent, err := utils.TimestampFromString(event.DateSent)
	if err != nil {
		log.Errorf("Malformed dateSent in user_message event: %s", err.Error())
		return
	}
	branchSession.NotifyAll(websocket.UserMessagePatch{
		Type: websocket.UserMessageType,
		Message: view.Message{
			Uuid:                  event.MessageUuid,
			Content:               event.Content,
			DateSent:              dateSent,
			Modified:              event.Modified,
			SenderUuid:            event.SenderUuid,
			BranchUuid:            event.BranchUuid,
			ResponseToMessageUuid: event.ResponseToMessageUuid,
		},
	})
}

// handleRemoteUserLogged fans the login notification out to every local
// branch session.
func (w *wsBranchServiceImpl) handleRemoteUserLogged(msg olric.DTopicMessage) {
	eventMap := msg.Message.(map[string]interface{})
	event := websocket.UserLoggedEventFromMap(eventMap)

	patch := websocket.UserLoggedPatch{
		Type:     websocket.UserLoggedType,
		UserUuid: event.UserUuid,
		Username: event.Username,
		LoggedAt: event.LoggedAt,
	}

	w.mutex.RLock()
	defer w.mutex.RUnlock()
	for _, session := range w.branchSessions {
		session.NotifyAll(patch)
	}
}
