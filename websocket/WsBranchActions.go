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
	"time"

	"github.com/pandamonium-social/pandamonium-backend/view"
)

const (
	UserConnectedType    = "user:connected"
	UserDisconnectedType = "user:disconnected"
	UserLoggedType       = "user:logged"
	UserMessageType      = "user:message"
)

type UserConnectedPatch struct {
	Type        string    `json:"type" msgpack:"type"`
	SessionId   string    `json:"sessionId" msgpack:"sessionId"`
	ConnectedAt time.Time `json:"connectedAt" msgpack:"connectedAt"`
	User        view.User `json:"user" msgpack:"user"`
	UserColor   string    `json:"userColor" msgpack:"userColor"`
}

type UserDisconnectedPatch struct {
	Type      string    `json:"type" msgpack:"type"`
	SessionId string    `json:"sessionId" msgpack:"sessionId"`
	User      view.User `json:"user" msgpack:"user"`
}

// UserLoggedPatch is pushed to every branch subscriber when a bamboo member
// logs in.
type UserLoggedPatch struct {
	Type     string `json:"type" msgpack:"type"`
	UserUuid string `json:"userUuid" msgpack:"userUuid"`
	Username string `json:"username" msgpack:"username"`
	LoggedAt string `json:"loggedAt" msgpack:"loggedAt"`
}

// UserMessagePatch carries a sent or edited message to branch subscribers.
type UserMessagePatch struct {
	Type    string       `json:"type" msgpack:"type"`
	Message view.Message `json:"message" msgpack:"message"`
}
