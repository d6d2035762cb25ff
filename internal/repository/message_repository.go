package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"message_board/internal/models"
	"message_board/internal/storage"
)

//go:generate mockgen -source=message_repository.go -destination=mocks/message_repository_mock.go -package=mocks

// ErrNotFound 表示查詢的留言不存在
var ErrNotFound = errors.New("record not found")

type MessageRepository interface {
	FindAll(ctx context.Context) ([]models.Message, error)
	FindByID(ctx context.Context, id uint) (*models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	Update(ctx context.Context, message *models.Message) error
	Delete(ctx context.Context, message *models.Message) error
}

type messageRepository struct {
	db *storage.Database
}

func NewMessageRepository(db *storage.Database) MessageRepository {
	return &messageRepository{db: db}
}

// FindAll 依建立時間由舊到新返回所有留言
func (r *messageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.db.WithContext(ctx).Order("created_at asc").Order("id asc").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// Update 只寫入 body 與 updated_at，其他欄位保持不變
func (r *messageRepository) Update(ctx context.Context, message *models.Message) error {
	result := r.db.WithContext(ctx).Model(message).Select("Body", "UpdatedAt").Updates(message)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, message *models.Message) error {
	result := r.db.WithContext(ctx).Delete(message)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
