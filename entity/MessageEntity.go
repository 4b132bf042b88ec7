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

package entity

import (
	"time"

	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/record"
	"github.com/pandamonium-social/pandamonium-backend/view"
)

const MessageTable = "messages"

type MessageEntity struct {
	tableName struct{} `pg:"messages, alias:messages"`

	Uuid                  string    `pg:"uuid, pk, type:varchar"`
	Content               string    `pg:"content, type:varchar"`
	DateSent              time.Time `pg:"date_sent, type:timestamp without time zone"`
	Modified              bool      `pg:"modified, use_zero"`
	SenderUuid            string    `pg:"sender_uuid, type:varchar"`
	BranchUuid            string    `pg:"branch_uuid, type:varchar"`
	ResponseToMessageUuid string    `pg:"response_to_message_uuid, type:varchar, use_zero"`
}

func NewMessageRecord(ent *MessageEntity) (*record.Record, error) {
	return record.New(MessageTable, ent.Uuid, []record.ColumnDef{
		{Name: "content", Value: ent.Content, Constraint: record.MinSize(1, exception.MessageTooShortMsg)},
		{Name: "date_sent", Value: ent.DateSent},
		{Name: "modified", Value: ent.Modified},
		{Name: "sender_uuid", Value: ent.SenderUuid},
		{Name: "branch_uuid", Value: ent.BranchUuid},
		{Name: "response_to_message_uuid", Value: ent.ResponseToMessageUuid},
	})
}

func MakeMessageView(messageEntity *MessageEntity) *view.Message {
	return &view.Message{
		Uuid:                  messageEntity.Uuid,
		Content:               messageEntity.Content,
		DateSent:              messageEntity.DateSent,
		Modified:              messageEntity.Modified,
		SenderUuid:            messageEntity.SenderUuid,
		BranchUuid:            messageEntity.BranchUuid,
		ResponseToMessageUuid: messageEntity.ResponseToMessageUuid,
	}
}
