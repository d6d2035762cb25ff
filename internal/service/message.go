package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"message_board/internal/models"
	"message_board/internal/repository"
	"message_board/pkg/optional"
)

// Message 是對外輸出的留言資料，nil 欄位序列化為 null
type Message struct {
	ID        uint       `json:"id"`
	Body      *string    `json:"body"`
	Username  *string    `json:"username"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateMessageInput struct {
	Body     *string
	Username *string
}

// UpdateMessageInput 中 Body 缺席代表保留原值，出現（含 null）代表覆寫
type UpdateMessageInput struct {
	Body optional.Value[string]
}

type MessageService struct {
	messageRepo repository.MessageRepository
	now         func() time.Time
}

func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ListMessages 依建立時間升冪返回全部留言
func (s *MessageService) ListMessages(ctx context.Context) ([]Message, error) {
	records, err := s.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]Message, 0, len(records))
	for i := range records {
		out = append(out, *s.convertModelToMessage(&records[i]))
	}
	return out, nil
}

func (s *MessageService) GetMessage(ctx context.Context, id uint) (*Message, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.convertModelToMessage(record), nil
}

func (s *MessageService) CreateMessage(ctx context.Context, input CreateMessageInput) (*Message, error) {
	record := &models.Message{
		Body:     input.Body,
		Username: input.Username,
	}

	if err := s.messageRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	return s.convertModelToMessage(record), nil
}

// UpdateMessage 套用部分更新，每次呼叫都會刷新 updated_at，即使內容沒有改變
func (s *MessageService) UpdateMessage(ctx context.Context, id uint, input UpdateMessageInput) (*Message, error) {
	record, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record.Body = input.Body.Or(record.Body)
	record.UpdatedAt = &now

	if err := s.messageRepo.Update(ctx, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("update message %d: %w", id, err)
	}

	return s.convertModelToMessage(record), nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, id uint) error {
	record, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.messageRepo.Delete(ctx, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("delete message %d: %w", id, err)
	}
	return nil
}

func (s *MessageService) find(ctx context.Context, id uint) (*models.Message, error) {
	record, err := s.messageRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find message %d: %w", id, err)
	}
	return record, nil
}

func (s *MessageService) convertModelToMessage(model *models.Message) *Message {
	return &Message{
		ID:        model.ID,
		Body:      model.Body,
		Username:  model.Username,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
