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
	"encoding/gob"
	"fmt"
	"sync"
	"time"

	"github.com/buraksezer/olric"
	"github.com/buraksezer/olric/query"
	"github.com/pandamonium-social/pandamonium-backend/cache"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/websocket"
	log "github.com/sirupsen/logrus"
)

// WsEventBus carries real-time events between cluster nodes: login
// notifications and branch messages go through olric topics so every node can
// push them to its own websocket subscribers. The session map tracks which
// node holds which branch session.
type WsEventBus interface {
	TrackSession(sessionId string) error
	HasBranchSession(sessionId string) (bool, error)
	ListSessions() ([]WsBusSession, error)
	ListNodes() ([]string, error)
	GetBindAddr() string
	GetUserLoggedTopic() *olric.DTopic
	GetUserMessageTopic() *olric.DTopic
	PublishUserLogged(event websocket.UserLoggedEvent)
	PublishUserMessage(event websocket.UserMessageEvent)
}

type WsBusSession struct {
	SessionId   string
	NodeAddress string
}

func NewWsEventBus(op cache.OlricProvider) (WsEventBus, error) {
	gob.Register(WsBusSession{})

	bus := &wsEventBusImpl{
		op:        op,
		isReadyWg: sync.WaitGroup{},
	}
	bus.isReadyWg.Add(1)

	utils.SafeAsync(func() {
		bus.initWhenOlricReady()
	})

	return bus, nil
}

type wsEventBusImpl struct {
	op               cache.OlricProvider
	isReadyWg        sync.WaitGroup
	olricC           *olric.Olric
	sessMap          *olric.DMap
	userLoggedTopic  *olric.DTopic
	userMessageTopic *olric.DTopic
	bindAddr         string
}

func (w *wsEventBusImpl) initWhenOlricReady() {
	var err error
	hasErrors := false

	w.olricC = w.op.Get()
	w.sessMap, err = w.olricC.NewDMap("BranchSessions")
	if err != nil {
		log.Errorf("Failed to create dmap BranchSessions: %s", err.Error())
		hasErrors = true
	}
	w.userLoggedTopic, err = w.olricC.NewDTopic("user_logged", 50, olric.UnorderedDelivery)
	if err != nil {
		log.Errorf("Failed to create user_logged topic: %s", err.Error())
		hasErrors = true
	}
	w.userMessageTopic, err = w.olricC.NewDTopic("user_message", 50, olric.UnorderedDelivery)
	if err != nil {
		log.Errorf("Failed to create user_message topic: %s", err.Error())
		hasErrors = true
	}
	w.bindAddr = w.op.GetBindAddr()

	if hasErrors {
		log.Infof("Failed to init WsEventBus, going to retry")
		time.Sleep(time.Second * 5)
		w.initWhenOlricReady()
		return
	}

	w.isReadyWg.Done()
	log.Infof("WsEventBus is ready")
}

func (w *wsEventBusImpl) GetBindAddr() string {
	w.isReadyWg.Wait()
	return w.bindAddr
}

// TrackSession refreshes the session's node binding. Entries expire on their
// own, a session is kept alive only by periodic re-tracking.
func (w *wsEventBusImpl) TrackSession(sessionId string) error {
	w.isReadyWg.Wait()

	session := WsBusSession{
		SessionId:   sessionId,
		NodeAddress: w.bindAddr,
	}
	return w.sessMap.PutEx(sessionId, session, time.Second*30)
}

func (w *wsEventBusImpl) HasBranchSession(sessionId string) (bool, error) {
	w.isReadyWg.Wait()

	_, err := w.sessMap.Get(sessionId)
	if err != nil {
		if err == olric.ErrKeyNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (w *wsEventBusImpl) ListSessions() ([]WsBusSession, error) {
	w.isReadyWg.Wait()

	var result []WsBusSession
	cursor, err := w.sessMap.Query(query.M{"$onKey": query.M{"$regexMatch": ""}})
	if err != nil {
		return nil, err
	}
	err = cursor.Range(func(key string, value interface{}) bool {
		result = append(result, value.(WsBusSession))
		return true
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (w *wsEventBusImpl) ListNodes() ([]string, error) {
	w.isReadyWg.Wait()

	stats, err := w.olricC.Stats()
	if err != nil {
		return nil, err
	}

	var result []string
	for _, v := range stats.ClusterMembers {
		result = append(result, fmt.Sprintf("%+v", v))
	}
	return result, err
}

func (w *wsEventBusImpl) GetUserLoggedTopic() *olric.DTopic {
	w.isReadyWg.Wait()
	return w.userLoggedTopic
}

func (w *wsEventBusImpl) GetUserMessageTopic() *olric.DTopic {
	w.isReadyWg.Wait()
	return w.userMessageTopic
}

func (w *wsEventBusImpl) PublishUserLogged(event websocket.UserLoggedEvent) {
	w.isReadyWg.Wait()

	if err := w.userLoggedTopic.Publish(websocket.UserLoggedEventToMap(event)); err != nil {
		log.Errorf("Unable to publish user_logged event: %s", err.Error())
	}
}

func (w *wsEventBusImpl) PublishUserMessage(event websocket.UserMessageEvent) {
	w.isReadyWg.Wait()

	if err := w.userMessageTopic.Publish(websocket.UserMessageEventToMap(event)); err != nil {
		log.Errorf("Unable to publish user_message event: %s", err.Error())
	}
}
