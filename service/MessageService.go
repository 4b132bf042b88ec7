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
	"net/http"
	"time"

	"github.com/pandamonium-social/pandamonium-backend/entity"
	"github.com/pandamonium-social/pandamonium-backend/exception"
	"github.com/pandamonium-social/pandamonium-backend/metrics"
	"github.com/pandamonium-social/pandamonium-backend/repository"
	"github.com/pandamonium-social/pandamonium-backend/utils"
	"github.com/pandamonium-social/pandamonium-backend/view"
	"github.com/pandamonium-social/pandamonium-backend/websocket"
)

type MessageService interface {
	SendMessage(branchId string, senderId string, req view.MessageCreateReq) (*view.Message, error)
	GetMessages(branchId string, userId string, listReq view.MessagesListReq) (*view.Messages, error)
	EditMessage(messageId string, userId string, req view.MessageEditReq) (*view.Message, error)
	DeleteMessage(messageId string, userId string) error
}

func NewMessageService(repo repository.MessageRepository, branchService BranchService, eventBus WsEventBus) MessageService {
	return &messageServiceImpl{
		repo:          repo,
		branchService: branchService,
		eventBus:      eventBus,
	}
}

type messageServiceImpl struct {
	repo          repository.MessageRepository
	branchService BranchService
	eventBus      WsEventBus
}

func (m messageServiceImpl) SendMessage(branchId string, senderId string, req view.MessageCreateReq) (*view.Message, error) {
	branchEntity, err := m.branchService.GetBranchForMember(branchId, senderId)
	if err != nil {
		return nil, err
	}

	if req.ResponseToMessageUuid != "" {
		parent, err := m.repo.GetMessageById(req.ResponseToMessageUuid)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.BranchUuid != branchEntity.Uuid {
			return nil, &exception.CustomError{
				Status:  http.StatusNotFound,
				Code:    exception.MessageNotFound,
				Message: exception.MessageNotFoundMsg,
				Params:  map[string]interface{}{"messageId": req.ResponseToMessageUuid},
			}
		}
	}

	messageEntity := &entity.MessageEntity{
		Content:               req.Content,
		DateSent:              time.Now(),
		Modified:              false,
		SenderUuid:            senderId,
		BranchUuid:            branchEntity.Uuid,
		ResponseToMessageUuid: req.ResponseToMessageUuid,
	}
	messageRecord, err := entity.NewMessageRecord(messageEntity)
	if err != nil {
		return nil, err
	}
	messageEntity.Uuid = messageRecord.Uuid()

	if err := m.repo.SaveMessage(messageEntity); err != nil {
		return nil, err
	}
	metrics.MessagesSentCount.WithLabelValues().Inc()

	m.publish(messageEntity)

	return entity.MakeMessageView(messageEntity), nil
}

func (m messageServiceImpl) GetMessages(branchId string, userId string, listReq view.MessagesListReq) (*view.Messages, error) {
	if _, err := m.branchService.GetBranchForMember(branchId, userId); err != nil {
		return nil, err
	}
	messageEntities, err := m.repo.GetMessagesByBranchId(branchId, listReq)
	if err != nil {
		return nil, err
	}
	messages := make([]view.Message, 0)
	for _, messageEntity := range messageEntities {
		messages = append(messages, *entity.MakeMessageView(&messageEntity))
	}
	return &view.Messages{Messages: messages}, nil
}

// EditMessage replaces the content of a message the user sent. The edit is
// flagged with modified and only the touched columns are written back.
func (m messageServiceImpl) EditMessage(messageId string, userId string, req view.MessageEditReq) (*view.Message, error) {
	messageEntity, err := m.getSenderMessage(messageId, userId)
	if err != nil {
		return nil, err
	}
	if req.Content == messageEntity.Content {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.NoChangesToUpdate,
			Message: exception.NoChangesToUpdateMsg,
		}
	}
	messageRecord, err := entity.NewMessageRecord(messageEntity)
	if err != nil {
		return nil, err
	}
	if err := messageRecord.Set("content", req.Content); err != nil {
		return nil, err
	}
	messageEntity.Content = req.Content
	messageEntity.Modified = true

	if err := m.repo.UpdateMessageColumns(messageEntity, []string{"content", "modified"}); err != nil {
		return nil, err
	}

	m.publish(messageEntity)

	return entity.MakeMessageView(messageEntity), nil
}

func (m messageServiceImpl) DeleteMessage(messageId string, userId string) error {
	messageEntity, err := m.getSenderMessage(messageId, userId)
	if err != nil {
		return err
	}
	return m.repo.DeleteMessage(messageEntity.Uuid)
}

func (m messageServiceImpl) publish(messageEntity *entity.MessageEntity) {
	m.eventBus.PublishUserMessage(websocket.UserMessageEvent{
		BranchUuid:            messageEntity.BranchUuid,
		MessageUuid:           messageEntity.Uuid,
		SenderUuid:            messageEntity.SenderUuid,
		Content:               messageEntity.Content,
		DateSent:              utils.TimestampToString(messageEntity.DateSent),
		Modified:              messageEntity.Modified,
		ResponseToMessageUuid: messageEntity.ResponseToMessageUuid,
	})
}

func (m messageServiceImpl) getSenderMessage(messageId string, userId string) (*entity.MessageEntity, error) {
	messageEntity, err := m.repo.GetMessageById(messageId)
	if err != nil {
		return nil, err
	}
	if messageEntity == nil {
		return nil, &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    exception.MessageNotFound,
			Message: exception.MessageNotFoundMsg,
			Params:  map[string]interface{}{"messageId": messageId},
		}
	}
	if messageEntity.SenderUuid != userId {
		return nil, &exception.CustomError{
			Status:  http.StatusForbidden,
			Code:    exception.NotMessageSender,
			Message: exception.NotMessageSenderMsg,
		}
	}
	return messageEntity, nil
}
