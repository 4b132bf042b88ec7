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

package websocket

import (
	"encoding/json"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
	log "github.com/sirupsen/logrus"
)

type WsMessageHandler interface {
	HandleMessage(data []byte, wsId string, session *WsBranchSession)
}

type SessionClosedHandler interface {
	HandleSessionClosed(branchSessionId string)
	HandleUserDisconnected(branchSessionId string, wsId string)
}

// WsBranchSession fans branch traffic out to every websocket subscriber of
// one branch. One session per branch per node.
type WsBranchSession struct {
	clients              sync.Map
	messageHandler       WsMessageHandler
	sessionClosedHandler SessionClosedHandler
	BranchSessionId      string
	registerClientsCh    chan *RegMsg
	OriginatorUserId     string
}

type RegMsg struct {
	client *WsClient
	wg     *sync.WaitGroup
}

func NewWsBranchSession(branchSessionId string, messageHandler WsMessageHandler, sessionClosedHandler SessionClosedHandler, originatorUserId string) *WsBranchSession {
	sess := &WsBranchSession{
		clients:              sync.Map{},
		messageHandler:       messageHandler,
		sessionClosedHandler: sessionClosedHandler,
		BranchSessionId:      branchSessionId,
		OriginatorUserId:     originatorUserId,
		registerClientsCh:    make(chan *RegMsg),
	}

	utils.SafeAsync(func() {
		sess.runClientRegistration()
	})
	log.Debugf("Started WS branch session with id %s", branchSessionId)
	return sess
}

func (b *WsBranchSession) ConnectClient(wsId string, conn *ws.Conn, user view.User, extWg *sync.WaitGroup) {
	conn.SetReadDeadline(time.Now().Add(PingTime * 2))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(PingTime * 2))
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)

	b.registerClientsCh <- &RegMsg{NewWsClient(conn, wsId, user), &wg}

	wg.Wait()
	if extWg != nil {
		extWg.Done()
	}

	utils.SafeAsync(func() {
		b.handleIncomingMessages(conn, wsId, user)
	})
}

func (b *WsBranchSession) GetClient(wsId string) *WsClient {
	if client, exists := b.clients.Load(wsId); exists {
		return client.(*WsClient)
	}
	return nil
}

func (b *WsBranchSession) runClientRegistration() {
	for {
		regMsg, more := <-b.registerClientsCh
		if regMsg != nil {
			client := regMsg.client
			b.clients.Store(client.SessionId, client)

			//send "user:connected" notification to all other connected users
			b.NotifyOthers(client.SessionId,
				UserConnectedPatch{
					Type:        UserConnectedType,
					SessionId:   client.SessionId,
					ConnectedAt: client.ConnectedAt,
					User:        client.User,
					UserColor:   client.UserColor,
				})

			//send "user:connected" notifications for each connected user to the current user
			b.clients.Range(func(key, value interface{}) bool {
				c := value.(*WsClient)
				// use sync send method here
				err := client.send(UserConnectedPatch{
					Type:        UserConnectedType,
					SessionId:   c.SessionId,
					ConnectedAt: c.ConnectedAt,
					User:        c.User,
					UserColor:   c.UserColor,
				})
				if err != nil {
					log.Errorf("Failed to send user:connected %v: %v", client.SessionId, err.Error())
					return false
				}
				return true
			})
			regMsg.wg.Done()
		}
		if !more {
			return
		}
	}
}

func (b *WsBranchSession) NotifyClient(wsId string, message interface{}) {
	utils.SafeAsync(func() {
		v, exists := b.clients.Load(wsId)
		if exists {
			client := v.(*WsClient)
			err := client.send(message)
			if err != nil {
				log.Errorf("Failed to notify client %v: %v", client.SessionId, err.Error())
			}
		} else {
			log.Debugf("Unable to send message '%s' since client %s not found", message, wsId)
		}
	})
}

func (b *WsBranchSession) NotifyOthers(wsId string, message interface{}) {
	utils.SafeAsync(func() {
		b.clients.Range(func(key, value interface{}) bool {
			c := value.(*WsClient)
			if c.SessionId == wsId {
				return true
			}
			err := c.send(message)
			if err != nil {
				log.Errorf("Failed to notify client %v: %v", c.SessionId, err.Error())
			}
			return true
		})
	})
}

func (b *WsBranchSession) NotifyAll(message interface{}) {
	utils.SafeAsync(func() {
		b.clients.Range(func(key, value interface{}) bool {
			c := value.(*WsClient)
			err := c.send(message)
			if err != nil {
				log.Errorf("Failed to notify client %v: %v", c.SessionId, err.Error())
			}
			return true
		})
	})
}

func (b *WsBranchSession) handleIncomingMessages(connection *ws.Conn, wsId string, user view.User) {
	defer connection.Close()
	for {
		_, data, err := connection.ReadMessage()
		if err != nil {
			log.Debugf("Connection %v closed: %v", wsId, err.Error())
			b.handleClientDisconnect(wsId)
			break
		}
		if b.messageHandler != nil {
			b.messageHandler.HandleMessage(data, wsId, b)
		}
	}
}

func (b *WsBranchSession) handleClientDisconnect(wsId string) {
	v, exists := b.clients.Load(wsId)
	if !exists {
		return
	}
	client := v.(*WsClient)

	b.clients.Delete(wsId)

	clientsCount := 0
	b.clients.Range(func(key, value interface{}) bool {
		clientsCount++
		return true
	})

	if clientsCount > 0 {
		b.NotifyAll(UserDisconnectedPatch{Type: UserDisconnectedType, SessionId: wsId, User: client.User})
		if b.sessionClosedHandler != nil {
			b.sessionClosedHandler.HandleUserDisconnected(b.BranchSessionId, wsId)
		}
	} else {
		close(b.registerClientsCh)
		if b.sessionClosedHandler != nil {
			b.sessionClosedHandler.HandleSessionClosed(b.BranchSessionId)
		}
		log.Debugf("Closed WS branch session with id %s", b.BranchSessionId)
	}
}

func (b *WsBranchSession) ForceDisconnectAll() {
	utils.SafeAsync(func() {
		b.clients.Range(func(key, value interface{}) bool {
			c := value.(*WsClient)
			c.Connection.Close()
			return true
		})
	})
}

func (b *WsBranchSession) MarshalJSON() ([]byte, error) {
	clients := map[string]*WsClient{}
	b.clients.Range(func(key, value interface{}) bool {
		clients[key.(string)] = value.(*WsClient)
		return true
	})

	return json.Marshal(&struct {
		Clients          map[string]*WsClient `json:"clients"`
		BranchSessionId  string               `json:"branchSessionId"`
		OriginatorUserId string               `json:"originatorUserId"`
	}{
		Clients:          clients,
		BranchSessionId:  b.BranchSessionId,
		OriginatorUserId: b.OriginatorUserId,
	})
}

const PingTime = time.Second * 5

func (b *WsBranchSession) SendPingToAllClients() {
	b.clients.Range(func(key, value interface{}) bool {
		client := value.(*WsClient)
		utils.SafeAsync(func() {
			if err := client.Connection.WriteControl(ws.PingMessage, []byte{}, time.Now().Add(PingTime)); err != nil {
				log.Errorf("Can't send ping for %v", client.SessionId)
				log.Debugf("Connection wsId=%v will be closed due to timeout: %v", client.SessionId, err.Error())
				b.handleClientDisconnect(client.SessionId)
				client.Connection.Close()
			}
		})
		return true
	})
}
