package repository

import "message_board/internal/storage"

type Repositories struct {
	Message MessageRepository
}

func NewRepositories(db *storage.Database) *Repositories {
	return &Repositories{
		Message: NewMessageRepository(db),
	}
}
