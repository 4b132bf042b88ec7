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

package view

import "time"

type Message struct {
	Uuid                  string    `json:"uuid"`
	Content               string    `json:"content"`
	DateSent              time.Time `json:"dateSent"`
	Modified              bool      `json:"modified"`
	SenderUuid            string    `json:"senderUuid"`
	BranchUuid            string    `json:"branchUuid"`
	ResponseToMessageUuid string    `json:"responseToMessageUuid,omitempty"`
}

type Messages struct {
	Messages []Message `json:"messages"`
}

type MessageCreateReq struct {
	Content               string `json:"content" validate:"required"`
	ResponseToMessageUuid string `json:"responseToMessageUuid"`
}

type MessageEditReq struct {
	Content string `json:"content" validate:"required"`
}

type MessagesListReq struct {
	Limit int
	Page  int
}
