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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessageEventMapRoundTrip(t *testing.T) {
	event := UserMessageEvent{
		BranchUuid:            "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb",
		MessageUuid:           "dddddddd-dddd-dddd-dddd-dddddddddddd",
		SenderUuid:            "11111111-1111-1111-1111-111111111111",
		Content:               "Bienvenue dans la bambouseraie !",
		DateSent:              "2024-01-16T10:00:00Z",
		Modified:              true,
		ResponseToMessageUuid: "",
	}
	assert.Equal(t, event, UserMessageEventFromMap(UserMessageEventToMap(event)))
}

func TestUserLoggedEventMapRoundTrip(t *testing.T) {
	event := UserLoggedEvent{
		UserUuid: "11111111-1111-1111-1111-111111111111",
		Username: "amelie",
		LoggedAt: "2024-06-01T08:30:00Z",
	}
	assert.Equal(t, event, UserLoggedEventFromMap(UserLoggedEventToMap(event)))
}
