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

// Events travelling between cluster nodes over olric topics. Payloads are
// plain maps so gob encoding works without per-type registration.

type UserLoggedEvent struct {
	UserUuid string `json:"userUuid" msgpack:"userUuid"`
	Username string `json:"username" msgpack:"username"`
	LoggedAt string `json:"loggedAt" msgpack:"loggedAt"`
}

func UserLoggedEventFromMap(m map[string]interface{}) UserLoggedEvent {
	return UserLoggedEvent{
		UserUuid: m["userUuid"].(string),
		Username: m["username"].(string),
		LoggedAt: m["loggedAt"].(string),
	}
}

func UserLoggedEventToMap(e UserLoggedEvent) map[string]interface{} {
	result := map[string]interface{}{}
	result["userUuid"] = e.UserUuid
	result["username"] = e.Username
	result["loggedAt"] = e.LoggedAt
	return result
}

type UserMessageEvent struct {
	BranchUuid            string `json:"branchUuid" msgpack:"branchUuid"`
	MessageUuid           string `json:"messageUuid" msgpack:"messageUuid"`
	SenderUuid            string `json:"senderUuid" msgpack:"senderUuid"`
	Content               string `json:"content" msgpack:"content"`
	DateSent              string `json:"dateSent" msgpack:"dateSent"`
	Modified              bool   `json:"modified" msgpack:"modified"`
	ResponseToMessageUuid string `json:"responseToMessageUuid" msgpack:"responseToMessageUuid"`
}

func UserMessageEventFromMap(m map[string]interface{}) UserMessageEvent {
	return UserMessageEvent{
		BranchUuid:            m["branchUuid"].(string),
		MessageUuid:           m["messageUuid"].(string),
		SenderUuid:            m["senderUuid"].(string),
		Content:               m["content"].(string),
		DateSent:              m["dateSent"].(string),
		Modified:              m["modified"].(bool),
		ResponseToMessageUuid: m["responseToMessageUuid"].(string),
	}
}

func UserMessageEventToMap(e UserMessageEvent) map[string]interface{} {
	result := map[string]interface{}{}
	result["branchUuid"] = e.BranchUuid
	result["messageUuid"] = e.MessageUuid
	result["senderUuid"] = e.SenderUuid
	result["content"] = e.Content
	result["dateSent"] = e.DateSent
	result["modified"] = e.Modified
	result["responseToMessageUuid"] = e.ResponseToMessageUuid
	return result
}
